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
	"github.com/ecodeclub/hirebook/internal/user/internal/domain"
	"github.com/ecodeclub/hirebook/internal/user/internal/errs"
	"github.com/ecodeclub/hirebook/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleKey 和 middleware.RoleClaimKey 保持一致
const RoleKey = "role"

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
	// 开发测试环境允许只凭邮箱登录
	mockLogin bool
	logger    *elog.Component
}

func NewHandler(svc service.Service, mockLogin bool) *Handler {
	return &Handler{
		svc:       svc,
		mockLogin: mockLogin,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	u, err := h.svc.Register(ctx, domain.User{
		Email:       req.Email,
		FullName:    req.FullName,
		Role:        domain.Role(req.Role),
		CompanyName: req.CompanyName,
	})
	switch {
	case err == nil:
		return h.login(ctx, u)
	case errors.Is(err, service.ErrInvalidUser):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrUserDuplicate):
		return ginx.Result{Code: errs.UserDuplicate.Code, Msg: errs.UserDuplicate.Msg}, nil
	default:
		return systemErrorResult, err
	}
}

// Login 不校验密码，只有打开了 mockLogin 才可以用
func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if !h.mockLogin {
		return ginx.Result{Code: errs.LoginForbidden.Code, Msg: errs.LoginForbidden.Msg}, nil
	}
	u, err := h.svc.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return h.login(ctx, u)
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) login(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			RoleKey: u.Role.String(),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	switch {
	case err == nil:
		return ginx.Result{Data: newProfile(u)}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:          sess.Claims().Uid,
		FullName:    req.FullName,
		CompanyName: req.CompanyName,
	})
	switch {
	case err == nil:
		return ginx.Result{Msg: "OK"}, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	default:
		return systemErrorResult, err
	}
}
