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
	"github.com/ecodeclub/hirebook/internal/user/internal/domain"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository/dao"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	// Update 更新数据，只有非 0 值才会更新
	Update(ctx context.Context, u domain.User) error
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error)
	Count(ctx context.Context, role domain.Role) (int64, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}

type CachedUserRepository struct {
	dao   dao.UserDAO
	cache cache.UserCache
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:   d,
		cache: c,
	}
}

func (ur *CachedUserRepository) Update(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateNonZeroFields(ctx, ur.toEntity(u))
	if err != nil {
		return err
	}
	return ur.cache.Delete(ctx, u.Id)
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.toEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context,
	id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.toDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.toDomain(u), err
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), err
}

func (ur *CachedUserRepository) List(ctx context.Context, role domain.Role, offset, limit int) ([]domain.User, error) {
	us, err := ur.dao.List(ctx, role.String(), offset, limit)
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.toDomain(src)
	}), err
}

func (ur *CachedUserRepository) Count(ctx context.Context, role domain.Role) (int64, error) {
	return ur.dao.Count(ctx, role.String())
}

func (ur *CachedUserRepository) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	cnts, err := ur.dao.CountGroupByRole(ctx)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Role]int64, len(cnts))
	for role, cnt := range cnts {
		res[domain.Role(role)] = cnt
	}
	return res, nil
}

func (ur *CachedUserRepository) toEntity(u domain.User) dao.User {
	return dao.User{
		Id:          u.Id,
		Email:       u.Email,
		FullName:    u.FullName,
		Role:        u.Role.String(),
		CompanyName: u.CompanyName,
	}
}

func (ur *CachedUserRepository) toDomain(ue dao.User) domain.User {
	return domain.User{
		Id:          ue.Id,
		Email:       ue.Email,
		FullName:    ue.FullName,
		Role:        domain.Role(ue.Role),
		CompanyName: ue.CompanyName,
		Ctime:       ue.Ctime,
	}
}
