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

package repository

import (
	"context"
	"database/sql"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository/dao"
)

var (
	ErrRecordNotFound      = dao.ErrRecordNotFound
	ErrDuplicateSubmission = dao.ErrDuplicateSubmission
	ErrStatusMismatch      = dao.ErrStatusMismatch
)

type AnswerScore = dao.AnswerScore
type ScoreUpdate = dao.ScoreUpdate

//go:generate mockgen -source=./submission.go -package=repomocks -destination=mocks/submission.mock.go SubmissionRepository
type SubmissionRepository interface {
	Create(ctx context.Context, s domain.Submission) (int64, error)
	// FindById 不包含答案
	FindById(ctx context.Context, id int64) (domain.Submission, error)
	// FindWithAnswers 包含答案
	FindWithAnswers(ctx context.Context, id int64) (domain.Submission, error)
	FindByUidAndAssessment(ctx context.Context, uid, aid int64) (domain.Submission, error)
	SaveAnswer(ctx context.Context, a domain.Answer) error
	Submit(ctx context.Context, sid int64) error
	UpdateScores(ctx context.Context, update ScoreUpdate) (domain.Submission, error)
	UpdateDecision(ctx context.Context, sid int64, from domain.Status, decision domain.Decision, notes string) error

	ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error)
	CountByUid(ctx context.Context, uid int64) (int64, error)
	ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]domain.Submission, error)
	CountByCompany(ctx context.Context, companyId, jobId int64) (int64, error)
	CountPending(ctx context.Context, companyId int64) (int64, error)
	CountByStatus(ctx context.Context, companyId, uid int64) (map[domain.Status]int64, error)
	FindUngraded(ctx context.Context, before, afterId int64, limit int) ([]domain.Submission, error)
}

type submissionRepository struct {
	dao dao.SubmissionDAO
}

func NewSubmissionRepository(d dao.SubmissionDAO) SubmissionRepository {
	return &submissionRepository{dao: d}
}

func (r *submissionRepository) Create(ctx context.Context, s domain.Submission) (int64, error) {
	return r.dao.Create(ctx, r.toEntity(s))
}

func (r *submissionRepository) FindById(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.dao.FindById(ctx, id)
	return r.toDomain(s), err
}

func (r *submissionRepository) FindWithAnswers(ctx context.Context, id int64) (domain.Submission, error) {
	s, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	answers, err := r.dao.FindAnswers(ctx, id)
	if err != nil {
		return domain.Submission{}, err
	}
	res := r.toDomain(s)
	res.Answers = slice.Map(answers, func(idx int, src dao.Answer) domain.Answer {
		return r.toAnswerDomain(src)
	})
	return res, nil
}

func (r *submissionRepository) FindByUidAndAssessment(ctx context.Context, uid, aid int64) (domain.Submission, error) {
	s, err := r.dao.FindByUidAndAssessment(ctx, uid, aid)
	return r.toDomain(s), err
}

func (r *submissionRepository) SaveAnswer(ctx context.Context, a domain.Answer) error {
	return r.dao.SaveAnswer(ctx, dao.Answer{
		SubmissionId: a.SubmissionId,
		QuestionId:   a.QuestionId,
		Text:         a.Text,
		Code:         a.Code,
		Language:     a.Language,
		FileURL:      a.FileURL,
		VideoURL:     a.VideoURL,
	})
}

func (r *submissionRepository) Submit(ctx context.Context, sid int64) error {
	return r.dao.Submit(ctx, sid)
}

func (r *submissionRepository) UpdateScores(ctx context.Context, update ScoreUpdate) (domain.Submission, error) {
	s, err := r.dao.UpdateScores(ctx, update)
	return r.toDomain(s), err
}

func (r *submissionRepository) UpdateDecision(ctx context.Context, sid int64, from domain.Status, decision domain.Decision, notes string) error {
	return r.dao.UpdateDecision(ctx, sid, from.String(), decision.String(), notes)
}

func (r *submissionRepository) ListByUid(ctx context.Context, uid int64, offset, limit int) ([]domain.Submission, error) {
	res, err := r.dao.ListByUid(ctx, uid, offset, limit)
	return r.toDomains(res), err
}

func (r *submissionRepository) CountByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.CountByUid(ctx, uid)
}

func (r *submissionRepository) ListByCompany(ctx context.Context, companyId, jobId int64, offset, limit int) ([]domain.Submission, error) {
	res, err := r.dao.ListByCompany(ctx, companyId, jobId, offset, limit)
	return r.toDomains(res), err
}

func (r *submissionRepository) CountByCompany(ctx context.Context, companyId, jobId int64) (int64, error) {
	return r.dao.CountByCompany(ctx, companyId, jobId)
}

func (r *submissionRepository) CountPending(ctx context.Context, companyId int64) (int64, error) {
	return r.dao.CountPending(ctx, companyId)
}

func (r *submissionRepository) CountByStatus(ctx context.Context, companyId, uid int64) (map[domain.Status]int64, error) {
	cnts, err := r.dao.CountGroupByStatus(ctx, companyId, uid)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Status]int64, len(cnts))
	for status, cnt := range cnts {
		res[domain.Status(status)] = cnt
	}
	return res, nil
}

func (r *submissionRepository) FindUngraded(ctx context.Context, before, afterId int64, limit int) ([]domain.Submission, error) {
	res, err := r.dao.FindUngraded(ctx, before, afterId, limit)
	return r.toDomains(res), err
}

func (r *submissionRepository) toDomains(subs []dao.Submission) []domain.Submission {
	return slice.Map(subs, func(idx int, src dao.Submission) domain.Submission {
		return r.toDomain(src)
	})
}

func (r *submissionRepository) toEntity(s domain.Submission) dao.Submission {
	return dao.Submission{
		Id:           s.Id,
		Uid:          s.Uid,
		AssessmentId: s.AssessmentId,
		JobId:        s.JobId,
		CompanyId:    s.CompanyId,
		Status:       s.Status.String(),
		StartedAt:    s.StartedAt,
		SubmittedAt:  s.SubmittedAt,
		TotalScore:   nullFloat(s.TotalScore),
		MaxScore:     nullFloat(s.MaxScore),
		Decision:     s.Decision.String(),
		CompanyNotes: s.CompanyNotes,
		AutoGraded:   s.AutoGraded,
	}
}

func (r *submissionRepository) toDomain(s dao.Submission) domain.Submission {
	return domain.Submission{
		Id:           s.Id,
		Uid:          s.Uid,
		AssessmentId: s.AssessmentId,
		JobId:        s.JobId,
		CompanyId:    s.CompanyId,
		Status:       domain.Status(s.Status),
		StartedAt:    s.StartedAt,
		SubmittedAt:  s.SubmittedAt,
		TotalScore:   floatPtr(s.TotalScore),
		MaxScore:     floatPtr(s.MaxScore),
		Decision:     domain.Decision(s.Decision),
		CompanyNotes: s.CompanyNotes,
		AutoGraded:   s.AutoGraded,
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}

func (r *submissionRepository) toAnswerDomain(a dao.Answer) domain.Answer {
	res := domain.Answer{
		Id:               a.Id,
		SubmissionId:     a.SubmissionId,
		QuestionId:       a.QuestionId,
		Text:             a.Text,
		Code:             a.Code,
		Language:         a.Language,
		FileURL:          a.FileURL,
		VideoURL:         a.VideoURL,
		Score:            floatPtr(a.Score),
		MaxScore:         floatPtr(a.MaxScore),
		IsManuallyScored: a.IsManuallyScored,
		Ctime:            a.Ctime,
		Utime:            a.Utime,
	}
	if a.IsCorrect.Valid {
		correct := a.IsCorrect.Bool
		res.IsCorrect = &correct
	}
	return res
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
