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
	"github.com/ecodeclub/hirebook/internal/media/internal/errs"
	"github.com/ecodeclub/hirebook/internal/media/internal/service"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/media")
	g.POST("/authorization", ginx.BS[AuthorizationReq](h.Authorization))
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) Authorization(ctx *ginx.Context, req AuthorizationReq, sess session.Session) (ginx.Result, error) {
	cred, err := h.svc.Issue(ctx, sess.Claims().Uid, req.Key, req.Type)
	switch {
	case errors.Is(err, service.ErrInvalidKey),
		errors.Is(err, service.ErrUnsupportedContent):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	case err != nil:
		return ginx.Result{Code: errs.SystemError.Code, Msg: errs.SystemError.Msg}, err
	}
	return ginx.Result{Data: Credential(cred)}, nil
}
