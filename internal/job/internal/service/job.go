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
	"strings"

	"github.com/ecodeclub/hirebook/internal/job/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job/internal/event"
	"github.com/ecodeclub/hirebook/internal/job/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound = repository.ErrJobNotFound
	ErrForbidden   = errors.New("无权操作该职位")
	ErrInvalidJob  = errors.New("职位信息不合法")
)

//go:generate mockgen -source=./job.go -package=svcmocks -destination=mocks/job.mock.go Service
type Service interface {
	// Save 新建或者更新职位，更新的时候只能改自己公司的
	Save(ctx context.Context, j domain.Job) (int64, error)
	UpdateStatus(ctx context.Context, companyId, id int64, status domain.Status) error
	Delete(ctx context.Context, companyId, id int64) error
	Detail(ctx context.Context, id int64) (domain.Job, error)
	// ListByCompany status 为空的时候不过滤
	ListByCompany(ctx context.Context, companyId int64, status domain.Status, offset, limit int) ([]domain.Job, int64, error)
	ListActive(ctx context.Context, offset, limit int) ([]domain.Job, int64, error)
	Search(ctx context.Context, keywords string, offset, limit int) ([]domain.Job, error)
	// CountByStatus companyId 为 0 的时候统计全部
	CountByStatus(ctx context.Context, companyId int64) (map[domain.Status]int64, error)
}

type jobService struct {
	repo       repository.JobRepository
	searchRepo repository.SearchRepository
	producer   event.JobEventProducer
	logger     *elog.Component
}

func NewService(repo repository.JobRepository,
	searchRepo repository.SearchRepository,
	producer event.JobEventProducer) Service {
	return &jobService{
		repo:       repo,
		searchRepo: searchRepo,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *jobService) Save(ctx context.Context, j domain.Job) (int64, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" {
		return 0, fmt.Errorf("%w: 标题不能为空", ErrInvalidJob)
	}
	if j.Status == "" {
		j.Status = domain.StatusDraft
	}
	if !j.Status.Valid() {
		return 0, fmt.Errorf("%w: 未知状态 %s", ErrInvalidJob, j.Status)
	}
	if j.Id == 0 {
		id, err := s.repo.Create(ctx, j)
		if err != nil {
			return 0, err
		}
		s.notifySaved(ctx, id)
		return id, nil
	}
	if err := s.checkOwner(ctx, j.CompanyId, j.Id); err != nil {
		return 0, err
	}
	if err := s.repo.Update(ctx, j); err != nil {
		return 0, err
	}
	s.notifySaved(ctx, j.Id)
	return j.Id, nil
}

func (s *jobService) UpdateStatus(ctx context.Context, companyId, id int64, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("%w: 未知状态 %s", ErrInvalidJob, status)
	}
	if err := s.checkOwner(ctx, companyId, id); err != nil {
		return err
	}
	if err := s.repo.UpdateStatus(ctx, id, companyId, status); err != nil {
		return err
	}
	s.notifySaved(ctx, id)
	return nil
}

func (s *jobService) Delete(ctx context.Context, companyId, id int64) error {
	if err := s.checkOwner(ctx, companyId, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id, companyId); err != nil {
		return err
	}
	// 测评等下游依赖这个消息做级联删除
	err := s.producer.Produce(ctx, event.NewJobEvent(event.ActionDeleted, domain.Job{
		Id:        id,
		CompanyId: companyId,
	}))
	if err != nil {
		s.logger.Error("发送职位删除事件失败", elog.FieldErr(err), elog.Int64("jid", id))
	}
	return nil
}

func (s *jobService) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindById(ctx, id)
}

func (s *jobService) ListByCompany(ctx context.Context, companyId int64, status domain.Status, offset, limit int) ([]domain.Job, int64, error) {
	return s.list(ctx, companyId, status, offset, limit)
}

func (s *jobService) ListActive(ctx context.Context, offset, limit int) ([]domain.Job, int64, error) {
	return s.list(ctx, 0, domain.StatusActive, offset, limit)
}

func (s *jobService) list(ctx context.Context, companyId int64, status domain.Status, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, companyId, status, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, companyId, status)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *jobService) Search(ctx context.Context, keywords string, offset, limit int) ([]domain.Job, error) {
	keywords = strings.TrimSpace(keywords)
	if keywords == "" {
		jobs, _, err := s.ListActive(ctx, offset, limit)
		return jobs, err
	}
	return s.searchRepo.SearchActive(ctx, keywords, offset, limit)
}

func (s *jobService) CountByStatus(ctx context.Context, companyId int64) (map[domain.Status]int64, error) {
	return s.repo.CountByStatus(ctx, companyId)
}

func (s *jobService) checkOwner(ctx context.Context, companyId, id int64) error {
	old, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if !old.OwnedBy(companyId) {
		return fmt.Errorf("%w: uid %d, jid %d", ErrForbidden, companyId, id)
	}
	return nil
}

// notifySaved 重新读一遍，保证发出去的是库里的最新数据
func (s *jobService) notifySaved(ctx context.Context, id int64) {
	j, err := s.repo.FindById(ctx, id)
	if err == nil {
		err = s.producer.Produce(ctx, event.NewJobEvent(event.ActionSaved, j))
	}
	if err != nil {
		s.logger.Error("发送职位保存事件失败", elog.FieldErr(err), elog.Int64("jid", id))
	}
}
