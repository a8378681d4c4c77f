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

//go:generate mockgen -source=./search.go -package=repomocks -destination=mocks/search.mock.go SearchRepository
type SearchRepository interface {
	Index(ctx context.Context, j domain.Job) error
	Delete(ctx context.Context, id int64) error
	SearchActive(ctx context.Context, keywords string, offset, limit int) ([]domain.Job, error)
}

type searchRepository struct {
	dao dao.JobSearchDAO
}

func NewSearchRepository(d dao.JobSearchDAO) SearchRepository {
	return &searchRepository{dao: d}
}

func (r *searchRepository) Index(ctx context.Context, j domain.Job) error {
	return r.dao.Index(ctx, dao.JobDoc{
		Id:           j.Id,
		CompanyId:    j.CompanyId,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       j.Status.String(),
		Ctime:        j.Ctime,
		Utime:        j.Utime,
	})
}

func (r *searchRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *searchRepository) SearchActive(ctx context.Context, keywords string, offset, limit int) ([]domain.Job, error) {
	docs, err := r.dao.Search(ctx, keywords, domain.StatusActive.String(), offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(docs, func(idx int, src dao.JobDoc) domain.Job {
		return domain.Job{
			Id:           src.Id,
			CompanyId:    src.CompanyId,
			Title:        src.Title,
			Description:  src.Description,
			Requirements: src.Requirements,
			Location:     src.Location,
			Type:         src.Type,
			Salary:       src.Salary,
			Status:       domain.Status(src.Status),
			Ctime:        src.Ctime,
			Utime:        src.Utime,
		}
	}), nil
}
