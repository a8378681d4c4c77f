// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/job/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job/internal/errs"
	"github.com/ecodeclub/hirebook/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

const maxPageSize = 100

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.POST("/list", ginx.B[Page](h.PubList))
	g.POST("/detail", ginx.B[IdReq](h.PubDetail))
	g.POST("/search", ginx.B[SearchReq](h.Search))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/company/jobs")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/status", ginx.BS[StatusReq](h.UpdateStatus))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/list", ginx.BS[CompanyListReq](h.List))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	j := req.Job.toDomain()
	j.CompanyId = sess.Claims().Uid
	id, err := h.svc.Save(ctx, j)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req StatusReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateStatus(ctx, sess.Claims().Uid, req.Id, domain.Status(req.Status))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req CompanyListReq, sess session.Session) (ginx.Result, error) {
	jobs, total, err := h.svc.ListByCompany(ctx, sess.Claims().Uid,
		domain.Status(req.Status), req.Offset, limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	if !j.OwnedBy(sess.Claims().Uid) {
		return forbiddenResult, nil
	}
	return ginx.Result{Data: newJob(j)}, nil
}

func (h *Handler) PubList(ctx *ginx.Context, req Page) (ginx.Result, error) {
	jobs, total, err := h.svc.ListActive(ctx, req.Offset, limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, total)}, nil
}

// PubDetail 候选人只能看到招聘中的职位
func (h *Handler) PubDetail(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	if !j.Open() {
		return jobNotFoundResult, nil
	}
	return ginx.Result{Data: newJob(j)}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	jobs, err := h.svc.Search(ctx, req.Keywords, req.Offset, limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobList(jobs, 0)}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return jobNotFoundResult, nil
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, nil
	case errors.Is(err, service.ErrInvalidJob):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}

func newJobList(jobs []domain.Job, total int64) JobList {
	return JobList{
		Total: total,
		Jobs: slice.Map(jobs, func(idx int, src domain.Job) Job {
			return newJob(src)
		}),
	}
}

func limit(l int) int {
	if l <= 0 || l > maxPageSize {
		return maxPageSize
	}
	return l
}
