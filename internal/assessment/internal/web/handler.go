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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/errs"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	// 候选人开始答题之前看到的测评，不带答案
	server.POST("/assessments/preview", ginx.B[JobIdReq](h.Preview))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/company/assessments")
	g.POST("/save", ginx.BS[SaveAssessmentReq](h.Save))
	g.POST("/detail", ginx.BS[IdReq](h.Detail))
	g.POST("/job", ginx.BS[JobIdReq](h.DetailByJob))
	g.POST("/delete", ginx.BS[IdReq](h.Delete))
	g.POST("/sections/save", ginx.BS[SaveSectionReq](h.SaveSection))
	g.POST("/sections/delete", ginx.BS[IdReq](h.DeleteSection))
	g.POST("/sections/reorder", ginx.BS[ReorderReq](h.ReorderSections))
	g.POST("/questions/save", ginx.BS[SaveQuestionReq](h.SaveQuestion))
	g.POST("/questions/delete", ginx.BS[IdReq](h.DeleteQuestion))
	g.POST("/questions/reorder", ginx.BS[ReorderReq](h.ReorderQuestions))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveAssessmentReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, sess.Claims().Uid, req.Assessment.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	if !a.OwnedBy(sess.Claims().Uid) {
		return h.errorResult(service.ErrForbidden)
	}
	return ginx.Result{Data: newAssessment(a)}, nil
}

func (h *Handler) DetailByJob(ctx *ginx.Context, req JobIdReq, sess session.Session) (ginx.Result, error) {
	a, err := h.svc.DetailByJob(ctx, req.JobId)
	if err != nil {
		return h.errorResult(err)
	}
	if !a.OwnedBy(sess.Claims().Uid) {
		return h.errorResult(service.ErrForbidden)
	}
	return ginx.Result{Data: newAssessment(a)}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveSection(ctx *ginx.Context, req SaveSectionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveSection(ctx, sess.Claims().Uid, req.Section.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) DeleteSection(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteSection(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ReorderSections(ctx *ginx.Context, req ReorderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ReorderSections(ctx, sess.Claims().Uid, req.ParentId, req.Ids)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) SaveQuestion(ctx *ginx.Context, req SaveQuestionReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.SaveQuestion(ctx, sess.Claims().Uid, req.Question.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) DeleteQuestion(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.DeleteQuestion(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) ReorderQuestions(ctx *ginx.Context, req ReorderReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.ReorderQuestions(ctx, sess.Claims().Uid, req.ParentId, req.Ids)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Preview(ctx *ginx.Context, req JobIdReq) (ginx.Result, error) {
	a, err := h.svc.DetailByJob(ctx, req.JobId)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newAssessment(a.CandidateView())}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrAssessmentNotFound):
		return assessmentNotFoundResult, nil
	case errors.Is(err, service.ErrSectionNotFound):
		return ginx.Result{Code: errs.SectionNotFound.Code, Msg: errs.SectionNotFound.Msg}, nil
	case errors.Is(err, service.ErrQuestionNotFound):
		return ginx.Result{Code: errs.QuestionNotFound.Code, Msg: errs.QuestionNotFound.Msg}, nil
	case errors.Is(err, service.ErrJobNotFound):
		return ginx.Result{Code: errs.JobNotFound.Code, Msg: errs.JobNotFound.Msg}, nil
	case errors.Is(err, service.ErrForbidden):
		return ginx.Result{Code: errs.Forbidden.Code, Msg: errs.Forbidden.Msg}, nil
	case errors.Is(err, service.ErrDuplicateAssessment):
		return ginx.Result{Code: errs.DuplicateAssessment.Code, Msg: errs.DuplicateAssessment.Msg}, nil
	case errors.Is(err, service.ErrInvalidAssessment),
		errors.Is(err, service.ErrInvalidSection),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrInvalidOrder):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}
