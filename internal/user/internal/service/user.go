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

	"github.com/ecodeclub/hirebook/internal/user/internal/domain"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUserNotFound  = repository.ErrUserNotFound
	ErrUserDuplicate = repository.ErrUserDuplicate
	ErrInvalidUser   = errors.New("用户信息不合法")
)

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go Service
type Service interface {
	// Register 注册新用户，邮箱不能重复
	Register(ctx context.Context, u domain.User) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	BatchProfile(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	// UpdateNonSensitiveInfo 不允许修改邮箱和角色
	UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error
	List(ctx context.Context, role domain.Role, offset, limit int) (int64, []domain.User, error)
	CountByRole(ctx context.Context) (map[domain.Role]int64, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *elog.Component
}

func NewUserService(repo repository.UserRepository) Service {
	return &userService{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return domain.User{}, fmt.Errorf("%w: 邮箱格式错误", ErrInvalidUser)
	}
	if !u.Role.Valid() {
		return domain.User{}, fmt.Errorf("%w: 未知角色 %s", ErrInvalidUser, u.Role)
	}
	if u.Role == domain.RoleCompany && strings.TrimSpace(u.CompanyName) == "" {
		return domain.User{}, fmt.Errorf("%w: 公司名称不能为空", ErrInvalidUser)
	}
	if u.Role != domain.RoleCompany {
		u.CompanyName = ""
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	svc.logger.Info("用户注册",
		elog.Int64("uid", id),
		elog.String("role", u.Role.String()))
	return u, nil
}

func (svc *userService) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	return svc.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) BatchProfile(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	if len(ids) == 0 {
		return map[int64]domain.User{}, nil
	}
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		res[u.Id] = u
	}
	return res, nil
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, u domain.User) error {
	u.Email = ""
	u.Role = ""
	return svc.repo.Update(ctx, u)
}

func (svc *userService) List(ctx context.Context, role domain.Role, offset, limit int) (int64, []domain.User, error) {
	var (
		eg    errgroup.Group
		total int64
		users []domain.User
	)
	eg.Go(func() error {
		var err error
		users, err = svc.repo.List(ctx, role, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = svc.repo.Count(ctx, role)
		return err
	})
	return total, users, eg.Wait()
}

func (svc *userService) CountByRole(ctx context.Context) (map[domain.Role]int64, error) {
	return svc.repo.CountByRole(ctx)
}
