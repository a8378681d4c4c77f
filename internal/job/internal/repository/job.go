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
	"github.com/ecodeclub/hirebook/internal/job/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job/internal/repository/dao"
)

var ErrJobNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./job.go -package=repomocks -destination=mocks/job.mock.go JobRepository
type JobRepository interface {
	Create(ctx context.Context, j domain.Job) (int64, error)
	Update(ctx context.Context, j domain.Job) error
	UpdateStatus(ctx context.Context, id, companyId int64, status domain.Status) error
	Delete(ctx context.Context, id, companyId int64) error
	FindById(ctx context.Context, id int64) (domain.Job, error)
	List(ctx context.Context, companyId int64, status domain.Status, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context, companyId int64, status domain.Status) (int64, error)
	CountByStatus(ctx context.Context, companyId int64) (map[domain.Status]int64, error)
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Create(ctx context.Context, j domain.Job) (int64, error) {
	return r.dao.Create(ctx, toEntity(j))
}

func (r *jobRepository) Update(ctx context.Context, j domain.Job) error {
	return r.dao.Update(ctx, toEntity(j))
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id, companyId int64, status domain.Status) error {
	return r.dao.UpdateStatus(ctx, id, companyId, status.String())
}

func (r *jobRepository) Delete(ctx context.Context, id, companyId int64) error {
	return r.dao.Delete(ctx, id, companyId)
}

func (r *jobRepository) FindById(ctx context.Context, id int64) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	return toDomain(j), err
}

func (r *jobRepository) List(ctx context.Context, companyId int64, status domain.Status, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, companyId, status.String(), offset, limit)
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return toDomain(src)
	}), err
}

func (r *jobRepository) Count(ctx context.Context, companyId int64, status domain.Status) (int64, error) {
	return r.dao.Count(ctx, companyId, status.String())
}

func (r *jobRepository) CountByStatus(ctx context.Context, companyId int64) (map[domain.Status]int64, error) {
	cnts, err := r.dao.CountGroupByStatus(ctx, companyId)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Status]int64, len(cnts))
	for status, cnt := range cnts {
		res[domain.Status(status)] = cnt
	}
	return res, nil
}

func toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:           j.Id,
		CompanyId:    j.CompanyId,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       j.Status.String(),
	}
}

func toDomain(j dao.Job) domain.Job {
	return domain.Job{
		Id:           j.Id,
		CompanyId:    j.CompanyId,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       domain.Status(j.Status),
		Ctime:        j.Ctime,
		Utime:        j.Utime,
	}
}
