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
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/errs"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/service"
	"github.com/gin-gonic/gin"
)

var (
	_ ginx.Handler = &Handler{}

	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/candidate/dashboard", ginx.S(h.Candidate))
	server.GET("/company/dashboard", ginx.S(h.Company))
}

func (h *Handler) Candidate(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Candidate(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCandidateDashboard(res)}, nil
}

// Company 公司账号的 uid 就是 companyId
func (h *Handler) Company(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Company(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: CompanyDashboard(res)}, nil
}
