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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/cv/internal/errs"
	"github.com/ecodeclub/hirebook/internal/cv/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	contentTypePDF  = "application/pdf"
	contentTypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/candidate/cv")
	g.POST("/save", ginx.BS[SaveReq](h.Save))
	g.POST("/detail", ginx.S(h.Detail))
	// 导出直接返回文件
	g.GET("/pdf", h.ExportPDF)
	g.GET("/docx", h.ExportDOCX)
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	cv, err := h.svc.Save(ctx, req.CV.toDomain(sess.Claims().Uid))
	switch {
	case errors.Is(err, service.ErrInvalidCV):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCV(cv)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cv, err := h.svc.Get(ctx, sess.Claims().Uid)
	switch {
	case errors.Is(err, service.ErrCVNotFound):
		return cvNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCV(cv)}, nil
}

func (h *Handler) ExportPDF(ctx *gin.Context) {
	h.export(ctx, "cv.pdf", contentTypePDF, h.svc.ExportPDF)
}

func (h *Handler) ExportDOCX(ctx *gin.Context) {
	h.export(ctx, "cv.docx", contentTypeDOCX, h.svc.ExportDOCX)
}

func (h *Handler) export(ctx *gin.Context, filename, contentType string,
	fn func(ctx context.Context, uid int64) ([]byte, error)) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid
	data, err := fn(ctx.Request.Context(), uid)
	switch {
	case errors.Is(err, service.ErrCVNotFound):
		ctx.AbortWithStatus(http.StatusNotFound)
		return
	case err != nil:
		h.logger.Error("导出简历失败", elog.FieldErr(err),
			elog.Int64("uid", uid),
			elog.String("file", filename))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Data(http.StatusOK, contentType, data)
}
