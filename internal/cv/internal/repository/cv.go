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
	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
	"github.com/ecodeclub/hirebook/internal/cv/internal/repository/dao"
)

var ErrCVNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./cv.go -package=repomocks -destination=mocks/cv.mock.go CVRepository
type CVRepository interface {
	Save(ctx context.Context, cv domain.CV) error
	FindByUid(ctx context.Context, uid int64) (domain.CV, error)
}

type cvRepository struct {
	dao dao.CVDAO
}

func NewCVRepository(d dao.CVDAO) CVRepository {
	return &cvRepository{dao: d}
}

func (r *cvRepository) Save(ctx context.Context, cv domain.CV) error {
	return r.dao.Upsert(ctx, r.toEntity(cv))
}

func (r *cvRepository) FindByUid(ctx context.Context, uid int64) (domain.CV, error) {
	cv, err := r.dao.FindByUid(ctx, uid)
	if err != nil {
		return domain.CV{}, err
	}
	return r.toDomain(cv), nil
}

func (r *cvRepository) toEntity(cv domain.CV) dao.CV {
	return dao.CV{
		Id:       cv.Id,
		Uid:      cv.Uid,
		FullName: cv.Personal.FullName,
		Email:    cv.Personal.Email,
		Phone:    cv.Personal.Phone,
		Address:  cv.Personal.Address,
		Summary:  cv.Personal.Summary,
		Education: jsonColumn(slice.Map(cv.Education, func(idx int, src domain.Education) dao.Education {
			return dao.Education(src)
		})),
		Experience: jsonColumn(slice.Map(cv.Experience, func(idx int, src domain.Experience) dao.Experience {
			return dao.Experience(src)
		})),
		Skills: jsonColumn(cv.Skills),
		Languages: jsonColumn(slice.Map(cv.Languages, func(idx int, src domain.Language) dao.Language {
			return dao.Language(src)
		})),
		Certifications: jsonColumn(slice.Map(cv.Certifications, func(idx int, src domain.Certification) dao.Certification {
			return dao.Certification(src)
		})),
	}
}

func (r *cvRepository) toDomain(cv dao.CV) domain.CV {
	return domain.CV{
		Id:  cv.Id,
		Uid: cv.Uid,
		Personal: domain.PersonalInfo{
			FullName: cv.FullName,
			Email:    cv.Email,
			Phone:    cv.Phone,
			Address:  cv.Address,
			Summary:  cv.Summary,
		},
		Education: slice.Map(cv.Education.Val, func(idx int, src dao.Education) domain.Education {
			return domain.Education(src)
		}),
		Experience: slice.Map(cv.Experience.Val, func(idx int, src dao.Experience) domain.Experience {
			return domain.Experience(src)
		}),
		Skills: cv.Skills.Val,
		Languages: slice.Map(cv.Languages.Val, func(idx int, src dao.Language) domain.Language {
			return domain.Language(src)
		}),
		Certifications: slice.Map(cv.Certifications.Val, func(idx int, src dao.Certification) domain.Certification {
			return domain.Certification(src)
		}),
		Ctime: cv.Ctime,
		Utime: cv.Utime,
	}
}

func jsonColumn[T any](val []T) sqlx.JsonColumn[[]T] {
	return sqlx.JsonColumn[[]T]{Val: val, Valid: true}
}
