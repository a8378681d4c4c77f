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

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository"
	"github.com/ecodeclub/hirebook/internal/job"
)

var (
	ErrAssessmentNotFound  = errors.New("测评不存在")
	ErrSectionNotFound     = errors.New("测评分区不存在")
	ErrQuestionNotFound    = errors.New("题目不存在")
	ErrJobNotFound         = errors.New("职位不存在")
	ErrForbidden           = errors.New("无权操作该测评")
	ErrDuplicateAssessment = errors.New("该职位已经有测评了")
	ErrInvalidAssessment   = errors.New("测评信息不合法")
	ErrInvalidSection      = errors.New("测评分区不合法")
	ErrInvalidQuestion     = errors.New("题目不合法")
	ErrInvalidOrder        = errors.New("排序不合法")
)

//go:generate mockgen -source=./assessment.go -package=svcmocks -destination=mocks/assessment.mock.go Service
type Service interface {
	// Save 新建或者更新测评，companyId 必须是职位的所有者
	Save(ctx context.Context, companyId int64, a domain.Assessment) (int64, error)
	Delete(ctx context.Context, companyId, id int64) error
	// DeleteByJob 职位删除之后级联删除，没有测评的时候什么也不做
	DeleteByJob(ctx context.Context, jobId int64) error

	SaveSection(ctx context.Context, companyId int64, s domain.Section) (int64, error)
	DeleteSection(ctx context.Context, companyId, id int64) error
	ReorderSections(ctx context.Context, companyId, aid int64, ids []int64) error

	SaveQuestion(ctx context.Context, companyId int64, q domain.Question) (int64, error)
	DeleteQuestion(ctx context.Context, companyId, id int64) error
	ReorderQuestions(ctx context.Context, companyId, sid int64, ids []int64) error

	// Detail 完整的测评树，包含正确答案
	Detail(ctx context.Context, id int64) (domain.Assessment, error)
	DetailByJob(ctx context.Context, jobId int64) (domain.Assessment, error)
}

type assessmentService struct {
	repo   repository.AssessmentRepository
	jobSvc job.Service
}

func NewService(repo repository.AssessmentRepository, jobSvc job.Service) Service {
	return &assessmentService{
		repo:   repo,
		jobSvc: jobSvc,
	}
}

func (s *assessmentService) Save(ctx context.Context, companyId int64, a domain.Assessment) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidAssessment, err)
	}
	if a.Id > 0 {
		old, err := s.assessmentOf(ctx, companyId, a.Id)
		if err != nil {
			return 0, err
		}
		a.JobId = old.JobId
		a.CompanyId = old.CompanyId
		return a.Id, s.repo.UpdateAssessment(ctx, a)
	}
	j, err := s.jobSvc.Detail(ctx, a.JobId)
	switch {
	case errors.Is(err, job.ErrJobNotFound):
		return 0, fmt.Errorf("%w: jid %d", ErrJobNotFound, a.JobId)
	case err != nil:
		return 0, err
	}
	if !j.OwnedBy(companyId) {
		return 0, fmt.Errorf("%w: uid %d, jid %d", ErrForbidden, companyId, a.JobId)
	}
	a.CompanyId = companyId
	id, err := s.repo.CreateAssessment(ctx, a)
	if errors.Is(err, repository.ErrDuplicateAssessment) {
		return 0, fmt.Errorf("%w: jid %d", ErrDuplicateAssessment, a.JobId)
	}
	return id, err
}

func (s *assessmentService) Delete(ctx context.Context, companyId, id int64) error {
	_, err := s.assessmentOf(ctx, companyId, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteAssessment(ctx, id)
}

func (s *assessmentService) DeleteByJob(ctx context.Context, jobId int64) error {
	a, err := s.repo.FindByJobId(ctx, jobId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return nil
	case err != nil:
		return err
	}
	err = s.repo.DeleteAssessment(ctx, a.Id)
	// 并发删除的时候别人已经删掉了
	if errors.Is(err, repository.ErrRecordNotFound) {
		return nil
	}
	return err
}

func (s *assessmentService) SaveSection(ctx context.Context, companyId int64, sec domain.Section) (int64, error) {
	if sec.Id > 0 {
		old, err := s.sectionOf(ctx, companyId, sec.Id)
		if err != nil {
			return 0, err
		}
		// 题目类型跟着 section 走，所以 section 的类型不允许修改
		if sec.Type != "" && sec.Type != old.Type {
			return 0, fmt.Errorf("%w: 不能修改分区类型", ErrInvalidSection)
		}
		sec.Type = old.Type
		sec.AssessmentId = old.AssessmentId
		if err = sec.Validate(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidSection, err)
		}
		return sec.Id, s.repo.UpdateSection(ctx, sec)
	}
	if err := sec.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSection, err)
	}
	if _, err := s.assessmentOf(ctx, companyId, sec.AssessmentId); err != nil {
		return 0, err
	}
	id, err := s.repo.CreateSection(ctx, sec)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: aid %d", ErrAssessmentNotFound, sec.AssessmentId)
	}
	return id, err
}

func (s *assessmentService) DeleteSection(ctx context.Context, companyId, id int64) error {
	sec, err := s.sectionOf(ctx, companyId, id)
	if err != nil {
		return err
	}
	return s.repo.DeleteSection(ctx, sec.AssessmentId, id)
}

func (s *assessmentService) ReorderSections(ctx context.Context, companyId, aid int64, ids []int64) error {
	if _, err := s.assessmentOf(ctx, companyId, aid); err != nil {
		return err
	}
	err := s.repo.ReorderSections(ctx, aid, ids)
	if errors.Is(err, repository.ErrOrderMismatch) {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return err
}

func (s *assessmentService) SaveQuestion(ctx context.Context, companyId int64, q domain.Question) (int64, error) {
	if q.Id > 0 {
		old, err := s.repo.FindQuestionById(ctx, q.Id)
		switch {
		case errors.Is(err, repository.ErrRecordNotFound):
			return 0, fmt.Errorf("%w: qid %d", ErrQuestionNotFound, q.Id)
		case err != nil:
			return 0, err
		}
		// 题目不能挪到别的分区
		q.SectionId = old.SectionId
	}
	sec, err := s.sectionOf(ctx, companyId, q.SectionId)
	if err != nil {
		return 0, err
	}
	if q.Type == "" {
		q.Type = sec.Type
	}
	if q.Type != sec.Type {
		return 0, fmt.Errorf("%w: 题型 %s 和分区类型 %s 不一致", ErrInvalidQuestion, q.Type, sec.Type)
	}
	if err = q.Validate(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}
	q.AssessmentId = sec.AssessmentId
	if q.Id > 0 {
		return q.Id, s.repo.UpdateQuestion(ctx, q)
	}
	id, err := s.repo.CreateQuestion(ctx, q)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return 0, fmt.Errorf("%w: sid %d", ErrSectionNotFound, q.SectionId)
	}
	return id, err
}

func (s *assessmentService) DeleteQuestion(ctx context.Context, companyId, id int64) error {
	q, err := s.repo.FindQuestionById(ctx, id)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return fmt.Errorf("%w: qid %d", ErrQuestionNotFound, id)
	case err != nil:
		return err
	}
	if _, err = s.assessmentOf(ctx, companyId, q.AssessmentId); err != nil {
		return err
	}
	return s.repo.DeleteQuestion(ctx, q.AssessmentId, id)
}

func (s *assessmentService) ReorderQuestions(ctx context.Context, companyId, sid int64, ids []int64) error {
	sec, err := s.sectionOf(ctx, companyId, sid)
	if err != nil {
		return err
	}
	err = s.repo.ReorderQuestions(ctx, sec.AssessmentId, sid, ids)
	if errors.Is(err, repository.ErrOrderMismatch) {
		return fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}
	return err
}

func (s *assessmentService) Detail(ctx context.Context, id int64) (domain.Assessment, error) {
	a, err := s.repo.Tree(ctx, id)
	if errors.Is(err, repository.ErrRecordNotFound) {
		return domain.Assessment{}, fmt.Errorf("%w: aid %d", ErrAssessmentNotFound, id)
	}
	return a, err
}

func (s *assessmentService) DetailByJob(ctx context.Context, jobId int64) (domain.Assessment, error) {
	a, err := s.repo.FindByJobId(ctx, jobId)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Assessment{}, fmt.Errorf("%w: jid %d", ErrAssessmentNotFound, jobId)
	case err != nil:
		return domain.Assessment{}, err
	}
	return s.Detail(ctx, a.Id)
}

func (s *assessmentService) assessmentOf(ctx context.Context, companyId, id int64) (domain.Assessment, error) {
	a, err := s.repo.FindById(ctx, id)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Assessment{}, fmt.Errorf("%w: aid %d", ErrAssessmentNotFound, id)
	case err != nil:
		return domain.Assessment{}, err
	}
	if !a.OwnedBy(companyId) {
		return domain.Assessment{}, fmt.Errorf("%w: uid %d, aid %d", ErrForbidden, companyId, id)
	}
	return a, nil
}

func (s *assessmentService) sectionOf(ctx context.Context, companyId, id int64) (domain.Section, error) {
	sec, err := s.repo.FindSectionById(ctx, id)
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return domain.Section{}, fmt.Errorf("%w: sid %d", ErrSectionNotFound, id)
	case err != nil:
		return domain.Section{}, err
	}
	if _, err = s.assessmentOf(ctx, companyId, sec.AssessmentId); err != nil {
		return domain.Section{}, err
	}
	return sec, nil
}
