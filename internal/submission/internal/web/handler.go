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
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/errs"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service"
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

func (h *Handler) PublicRoutes(_ *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	c := server.Group("/candidate/submissions")
	c.POST("/start", ginx.BS[JobIdReq](h.Start))
	c.POST("/take", ginx.BS[IdReq](h.Take))
	c.POST("/answer", ginx.BS[SaveAnswerReq](h.SaveAnswer))
	c.POST("/submit", ginx.BS[SubmitReq](h.Submit))
	c.POST("/list", ginx.BS[Page](h.ListByCandidate))
	c.POST("/detail", ginx.BS[IdReq](h.Application))

	g := server.Group("/company/submissions")
	g.POST("/list", ginx.BS[CompanyListReq](h.ListByCompany))
	g.POST("/pending", ginx.S(h.CountPending))
	g.POST("/detail", ginx.BS[IdReq](h.Review))
	g.POST("/autoscore", ginx.BS[AutoScoreReq](h.AutoScore))
	g.POST("/autoscore_all", ginx.BS[IdReq](h.AutoScoreAll))
	g.POST("/score", ginx.BS[ManualScoreReq](h.ManualScore))
	g.POST("/decision", ginx.BS[DecisionReq](h.RecordDecision))
	g.POST("/amend", ginx.BS[DecisionReq](h.AmendDecision))
}

func (h *Handler) Start(ctx *ginx.Context, req JobIdReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.Start(ctx, sess.Claims().Uid, req.JobId)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) Take(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, a, err := h.svc.Take(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmissionDetail(sub, a)}, nil
}

func (h *Handler) SaveAnswer(ctx *ginx.Context, req SaveAnswerReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.SaveAnswer(ctx, sess.Claims().Uid, req.toDomain())
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.Submit(ctx, sess.Claims().Uid, req.Id, req.Key)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) ListByCandidate(ctx *ginx.Context, req Page, sess session.Session) (ginx.Result, error) {
	subs, total, err := h.svc.ListByCandidate(ctx, sess.Claims().Uid, req.Offset, limit(req.Limit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newSubmissionList(subs, total)}, nil
}

func (h *Handler) Application(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, a, err := h.svc.Application(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmissionDetail(sub, a)}, nil
}

func (h *Handler) ListByCompany(ctx *ginx.Context, req CompanyListReq, sess session.Session) (ginx.Result, error) {
	subs, total, err := h.svc.ListByCompany(ctx, sess.Claims().Uid, req.JobId, req.Offset, limit(req.Limit))
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmissionList(subs, total)}, nil
}

func (h *Handler) CountPending(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.CountPending(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: cnt}, nil
}

func (h *Handler) Review(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, a, err := h.svc.Review(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmissionDetail(sub, a)}, nil
}

func (h *Handler) AutoScore(ctx *ginx.Context, req AutoScoreReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.AutoScore(ctx, sess.Claims().Uid, req.Id, req.QuestionId)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) AutoScoreAll(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.AutoScoreAll(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) ManualScore(ctx *ginx.Context, req ManualScoreReq, sess session.Session) (ginx.Result, error) {
	sub, err := h.svc.ManualScore(ctx, sess.Claims().Uid, req.Id, req.QuestionId, req.Score)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Data: newSubmission(sub)}, nil
}

func (h *Handler) RecordDecision(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.RecordDecision(ctx, sess.Claims().Uid, req.Id, domain.Decision(req.Decision), req.Notes)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) AmendDecision(ctx *ginx.Context, req DecisionReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.AmendDecision(ctx, sess.Claims().Uid, req.Id, domain.Decision(req.Decision), req.Notes)
	if err != nil {
		return h.errorResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) errorResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		return submissionNotFoundResult, nil
	case errors.Is(err, service.ErrForbidden):
		return forbiddenResult, nil
	case errors.Is(err, service.ErrJobNotFound):
		return ginx.Result{Code: errs.JobNotFound.Code, Msg: errs.JobNotFound.Msg}, nil
	case errors.Is(err, service.ErrJobNotOpen):
		return ginx.Result{Code: errs.JobNotOpen.Code, Msg: errs.JobNotOpen.Msg}, nil
	case errors.Is(err, service.ErrAssessmentNotFound):
		return ginx.Result{Code: errs.AssessmentNotFound.Code, Msg: errs.AssessmentNotFound.Msg}, nil
	case errors.Is(err, service.ErrQuestionNotFound):
		return ginx.Result{Code: errs.QuestionNotFound.Code, Msg: errs.QuestionNotFound.Msg}, nil
	case errors.Is(err, service.ErrAlreadySubmitted):
		return ginx.Result{Code: errs.AlreadySubmitted.Code, Msg: errs.AlreadySubmitted.Msg}, nil
	case errors.Is(err, service.ErrStateViolation):
		return ginx.Result{Code: errs.StateViolation.Code, Msg: errs.StateViolation.Msg}, nil
	case errors.Is(err, service.ErrIncompleteSubmission):
		// 带上没有作答的题目
		return ginx.Result{Code: errs.IncompleteSubmission.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrInvalidAnswer):
		return ginx.Result{Code: errs.InvalidAnswer.Code, Msg: err.Error()}, nil
	case errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrDecisionRequired):
		return ginx.Result{Code: errs.InvalidInput.Code, Msg: err.Error()}, nil
	default:
		return systemErrorResult, err
	}
}

func newSubmissionList(subs []domain.Submission, total int64) SubmissionList {
	return SubmissionList{
		Submissions: slice.Map(subs, func(idx int, src domain.Submission) Submission {
			return newSubmission(src)
		}),
		Total: total,
	}
}

func limit(l int) int {
	if l <= 0 || l > maxPageSize {
		return maxPageSize
	}
	return l
}
