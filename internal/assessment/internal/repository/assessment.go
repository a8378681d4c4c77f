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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrRecordNotFound      = dao.ErrRecordNotFound
	ErrDuplicateAssessment = dao.ErrDuplicateAssessment
	ErrOrderMismatch       = dao.ErrOrderMismatch
)

// AssessmentRepository 所有的修改操作都会让测评树的缓存失效
//
//go:generate mockgen -source=./assessment.go -package=repomocks -destination=mocks/assessment.mock.go AssessmentRepository
type AssessmentRepository interface {
	CreateAssessment(ctx context.Context, a domain.Assessment) (int64, error)
	UpdateAssessment(ctx context.Context, a domain.Assessment) error
	DeleteAssessment(ctx context.Context, id int64) error
	// FindById 不包含 section 和 question
	FindById(ctx context.Context, id int64) (domain.Assessment, error)
	FindByJobId(ctx context.Context, jobId int64) (domain.Assessment, error)
	// Tree 完整的测评，section 和 question 都按照顺序排好
	Tree(ctx context.Context, id int64) (domain.Assessment, error)

	CreateSection(ctx context.Context, s domain.Section) (int64, error)
	UpdateSection(ctx context.Context, s domain.Section) error
	DeleteSection(ctx context.Context, aid, id int64) error
	FindSectionById(ctx context.Context, id int64) (domain.Section, error)
	ReorderSections(ctx context.Context, aid int64, ids []int64) error

	CreateQuestion(ctx context.Context, q domain.Question) (int64, error)
	UpdateQuestion(ctx context.Context, q domain.Question) error
	DeleteQuestion(ctx context.Context, aid, id int64) error
	FindQuestionById(ctx context.Context, id int64) (domain.Question, error)
	ReorderQuestions(ctx context.Context, aid, sid int64, ids []int64) error
}

type CachedAssessmentRepository struct {
	dao    dao.AssessmentDAO
	cache  cache.AssessmentCache
	logger *elog.Component
}

func NewCachedAssessmentRepository(d dao.AssessmentDAO, c cache.AssessmentCache) AssessmentRepository {
	return &CachedAssessmentRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedAssessmentRepository) CreateAssessment(ctx context.Context, a domain.Assessment) (int64, error) {
	return r.dao.CreateAssessment(ctx, r.toAssessmentEntity(a))
}

func (r *CachedAssessmentRepository) UpdateAssessment(ctx context.Context, a domain.Assessment) error {
	err := r.dao.UpdateAssessment(ctx, r.toAssessmentEntity(a))
	r.invalidate(ctx, a.Id)
	return err
}

func (r *CachedAssessmentRepository) DeleteAssessment(ctx context.Context, id int64) error {
	err := r.dao.DeleteAssessment(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *CachedAssessmentRepository) FindById(ctx context.Context, id int64) (domain.Assessment, error) {
	a, err := r.dao.FindAssessmentById(ctx, id)
	return r.toAssessmentDomain(a), err
}

func (r *CachedAssessmentRepository) FindByJobId(ctx context.Context, jobId int64) (domain.Assessment, error) {
	a, err := r.dao.FindAssessmentByJobId(ctx, jobId)
	return r.toAssessmentDomain(a), err
}

func (r *CachedAssessmentRepository) Tree(ctx context.Context, id int64) (domain.Assessment, error) {
	a, err := r.cache.GetTree(ctx, id)
	if err == nil {
		return a, nil
	}
	a, err = r.loadTree(ctx, id)
	if err != nil {
		return domain.Assessment{}, err
	}
	if err = r.cache.SetTree(ctx, a); err != nil {
		r.logger.Warn("回写测评缓存失败", elog.FieldErr(err), elog.Int64("aid", id))
	}
	return a, nil
}

func (r *CachedAssessmentRepository) loadTree(ctx context.Context, id int64) (domain.Assessment, error) {
	var (
		eg        errgroup.Group
		entity    dao.Assessment
		sections  []dao.Section
		questions []dao.Question
	)
	eg.Go(func() error {
		var err error
		entity, err = r.dao.FindAssessmentById(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		sections, err = r.dao.FindSectionsByAssessmentId(ctx, id)
		return err
	})
	eg.Go(func() error {
		var err error
		questions, err = r.dao.FindQuestionsByAssessmentId(ctx, id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Assessment{}, err
	}
	// questions 已经按照 section_id, order_idx 排好序
	qs := make(map[int64][]domain.Question, len(sections))
	for _, q := range questions {
		qs[q.SectionId] = append(qs[q.SectionId], r.toQuestionDomain(q))
	}
	a := r.toAssessmentDomain(entity)
	a.Sections = slice.Map(sections, func(idx int, src dao.Section) domain.Section {
		s := r.toSectionDomain(src)
		s.Questions = qs[s.Id]
		return s
	})
	return a, nil
}

func (r *CachedAssessmentRepository) CreateSection(ctx context.Context, s domain.Section) (int64, error) {
	id, err := r.dao.CreateSection(ctx, r.toSectionEntity(s))
	r.invalidate(ctx, s.AssessmentId)
	return id, err
}

func (r *CachedAssessmentRepository) UpdateSection(ctx context.Context, s domain.Section) error {
	err := r.dao.UpdateSection(ctx, r.toSectionEntity(s))
	r.invalidate(ctx, s.AssessmentId)
	return err
}

func (r *CachedAssessmentRepository) DeleteSection(ctx context.Context, aid, id int64) error {
	err := r.dao.DeleteSection(ctx, id)
	r.invalidate(ctx, aid)
	return err
}

func (r *CachedAssessmentRepository) FindSectionById(ctx context.Context, id int64) (domain.Section, error) {
	s, err := r.dao.FindSectionById(ctx, id)
	return r.toSectionDomain(s), err
}

func (r *CachedAssessmentRepository) ReorderSections(ctx context.Context, aid int64, ids []int64) error {
	err := r.dao.ReorderSections(ctx, aid, ids)
	r.invalidate(ctx, aid)
	return err
}

func (r *CachedAssessmentRepository) CreateQuestion(ctx context.Context, q domain.Question) (int64, error) {
	id, err := r.dao.CreateQuestion(ctx, r.toQuestionEntity(q))
	r.invalidate(ctx, q.AssessmentId)
	return id, err
}

func (r *CachedAssessmentRepository) UpdateQuestion(ctx context.Context, q domain.Question) error {
	err := r.dao.UpdateQuestion(ctx, r.toQuestionEntity(q))
	r.invalidate(ctx, q.AssessmentId)
	return err
}

func (r *CachedAssessmentRepository) DeleteQuestion(ctx context.Context, aid, id int64) error {
	err := r.dao.DeleteQuestion(ctx, id)
	r.invalidate(ctx, aid)
	return err
}

func (r *CachedAssessmentRepository) FindQuestionById(ctx context.Context, id int64) (domain.Question, error) {
	q, err := r.dao.FindQuestionById(ctx, id)
	return r.toQuestionDomain(q), err
}

func (r *CachedAssessmentRepository) ReorderQuestions(ctx context.Context, aid, sid int64, ids []int64) error {
	err := r.dao.ReorderQuestions(ctx, sid, ids)
	r.invalidate(ctx, aid)
	return err
}

// invalidate 不管写库成功与否都删缓存
func (r *CachedAssessmentRepository) invalidate(ctx context.Context, aid int64) {
	if err := r.cache.DelTree(ctx, aid); err != nil {
		r.logger.Error("删除测评缓存失败", elog.FieldErr(err), elog.Int64("aid", aid))
	}
}

func (r *CachedAssessmentRepository) toAssessmentEntity(a domain.Assessment) dao.Assessment {
	return dao.Assessment{
		Id:           a.Id,
		JobId:        a.JobId,
		CompanyId:    a.CompanyId,
		Title:        a.Title,
		Description:  a.Description,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
	}
}

func (r *CachedAssessmentRepository) toAssessmentDomain(a dao.Assessment) domain.Assessment {
	return domain.Assessment{
		Id:           a.Id,
		JobId:        a.JobId,
		CompanyId:    a.CompanyId,
		Title:        a.Title,
		Description:  a.Description,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
		Ctime:        a.Ctime,
		Utime:        a.Utime,
	}
}

func (r *CachedAssessmentRepository) toSectionEntity(s domain.Section) dao.Section {
	return dao.Section{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		Title:        s.Title,
		Description:  s.Description,
		Type:         s.Type.String(),
		TimeLimit:    s.TimeLimit,
	}
}

func (r *CachedAssessmentRepository) toSectionDomain(s dao.Section) domain.Section {
	return domain.Section{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		Title:        s.Title,
		Description:  s.Description,
		Type:         domain.QuestionType(s.Type),
		OrderIdx:     s.OrderIdx,
		TimeLimit:    s.TimeLimit,
		Ctime:        s.Ctime,
		Utime:        s.Utime,
	}
}

func (r *CachedAssessmentRepository) toQuestionEntity(q domain.Question) dao.Question {
	options := slice.Map(q.Options, func(idx int, src domain.Option) dao.Option {
		return dao.Option{Text: src.Text, Correct: src.Correct}
	})
	testCases := slice.Map(q.TestCases, func(idx int, src domain.TestCase) dao.TestCase {
		return dao.TestCase{Input: src.Input, ExpectedOutput: src.ExpectedOutput}
	})
	return dao.Question{
		Id:           q.Id,
		SectionId:    q.SectionId,
		AssessmentId: q.AssessmentId,
		Text:         q.Text,
		Type:         q.Type.String(),
		Points:       q.Points,
		Options:      sqlx.JsonColumn[[]dao.Option]{Val: options, Valid: len(options) > 0},
		TestCases:    sqlx.JsonColumn[[]dao.TestCase]{Val: testCases, Valid: len(testCases) > 0},
	}
}

func (r *CachedAssessmentRepository) toQuestionDomain(q dao.Question) domain.Question {
	return domain.Question{
		Id:           q.Id,
		SectionId:    q.SectionId,
		AssessmentId: q.AssessmentId,
		Text:         q.Text,
		Type:         domain.QuestionType(q.Type),
		OrderIdx:     q.OrderIdx,
		Points:       q.Points,
		Options: slice.Map(q.Options.Val, func(idx int, src dao.Option) domain.Option {
			return domain.Option{Text: src.Text, Correct: src.Correct}
		}),
		TestCases: slice.Map(q.TestCases.Val, func(idx int, src dao.TestCase) domain.TestCase {
			return domain.TestCase{Input: src.Input, ExpectedOutput: src.ExpectedOutput}
		}),
		Ctime: q.Ctime,
		Utime: q.Utime,
	}
}
