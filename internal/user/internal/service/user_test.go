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
	"testing"

	"github.com/ecodeclub/hirebook/internal/user/internal/domain"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository"
	repomocks "github.com/ecodeclub/hirebook/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestUserService_Register(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		user     domain.User
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "注册候选人",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), domain.User{
					Email:    "alice@example.com",
					FullName: "Alice",
					Role:     domain.RoleCandidate,
				}).Return(int64(11), nil)
				return repo
			},
			user: domain.User{
				Email:       " Alice@Example.com ",
				FullName:    "Alice",
				Role:        domain.RoleCandidate,
				CompanyName: "不应该保存",
			},
			wantUser: domain.User{
				Id:       11,
				Email:    "alice@example.com",
				FullName: "Alice",
				Role:     domain.RoleCandidate,
			},
		},
		{
			name: "注册公司",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(12), nil)
				return repo
			},
			user: domain.User{
				Email:       "hr@acme.com",
				FullName:    "HR",
				Role:        domain.RoleCompany,
				CompanyName: "Acme",
			},
			wantUser: domain.User{
				Id:          12,
				Email:       "hr@acme.com",
				FullName:    "HR",
				Role:        domain.RoleCompany,
				CompanyName: "Acme",
			},
		},
		{
			name: "公司缺少名称",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			user: domain.User{
				Email: "hr@acme.com",
				Role:  domain.RoleCompany,
			},
			wantErr: ErrInvalidUser,
		},
		{
			name: "未知角色",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			user: domain.User{
				Email: "x@acme.com",
				Role:  domain.Role("hacker"),
			},
			wantErr: ErrInvalidUser,
		},
		{
			name: "邮箱不合法",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				return repomocks.NewMockUserRepository(ctrl)
			},
			user: domain.User{
				Email: "not-an-email",
				Role:  domain.RoleCandidate,
			},
			wantErr: ErrInvalidUser,
		},
		{
			name: "邮箱重复",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), repository.ErrUserDuplicate)
				return repo
			},
			user: domain.User{
				Email: "dup@acme.com",
				Role:  domain.RoleCandidate,
			},
			wantErr: ErrUserDuplicate,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.Register(context.Background(), tc.user)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestUserService_UpdateNonSensitiveInfo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockUserRepository(ctrl)
	// 邮箱和角色都会被清掉
	repo.EXPECT().Update(gomock.Any(), domain.User{
		Id:       1,
		FullName: "new name",
	}).Return(nil)
	svc := NewUserService(repo)
	err := svc.UpdateNonSensitiveInfo(context.Background(), domain.User{
		Id:       1,
		Email:    "changed@acme.com",
		Role:     domain.RoleAdmin,
		FullName: "new name",
	})
	assert.NoError(t, err)
}

func TestUserService_List(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.UserRepository
		wantTotal int64
		wantUsers []domain.User
		wantErr   error
	}{
		{
			name: "查询成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), domain.RoleCompany, 0, 2).
					Return([]domain.User{{Id: 2}, {Id: 1}}, nil)
				repo.EXPECT().Count(gomock.Any(), domain.RoleCompany).Return(int64(5), nil)
				return repo
			},
			wantTotal: 5,
			wantUsers: []domain.User{{Id: 2}, {Id: 1}},
		},
		{
			name: "计数失败",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().List(gomock.Any(), domain.RoleCompany, 0, 2).
					Return([]domain.User{}, nil)
				repo.EXPECT().Count(gomock.Any(), domain.RoleCompany).Return(int64(0), errors.New("mock db error"))
				return repo
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			total, users, err := svc.List(context.Background(), domain.RoleCompany, 0, 2)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantTotal, total)
			assert.Equal(t, tc.wantUsers, users)
		})
	}
}
