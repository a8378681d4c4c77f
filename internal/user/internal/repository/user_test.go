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
	"errors"
	"testing"

	"github.com/ecodeclub/hirebook/internal/user/internal/domain"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository/cache"
	cachemocks "github.com/ecodeclub/hirebook/internal/user/internal/repository/cache/mocks"
	"github.com/ecodeclub/hirebook/internal/user/internal/repository/dao"
	daomocks "github.com/ecodeclub/hirebook/internal/user/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCachedUserRepository_FindById(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache)
		id       int64
		wantUser domain.User
		wantErr  error
	}{
		{
			name: "缓存命中",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(1)).Return(domain.User{Id: 1, Email: "a@b.c"}, nil)
				return daomocks.NewMockUserDAO(ctrl), c
			},
			id:       1,
			wantUser: domain.User{Id: 1, Email: "a@b.c"},
		},
		{
			name: "缓存未命中，回写缓存",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(2)).Return(domain.User{}, errors.New("key not found"))
				d := daomocks.NewMockUserDAO(ctrl)
				d.EXPECT().FindById(gomock.Any(), int64(2)).Return(dao.User{
					Id:          2,
					Email:       "hr@acme.com",
					Role:        "company",
					CompanyName: "Acme",
					Ctime:       100,
				}, nil)
				c.EXPECT().Set(gomock.Any(), domain.User{
					Id:          2,
					Email:       "hr@acme.com",
					Role:        domain.RoleCompany,
					CompanyName: "Acme",
					Ctime:       100,
				}).Return(nil)
				return d, c
			},
			id: 2,
			wantUser: domain.User{
				Id:          2,
				Email:       "hr@acme.com",
				Role:        domain.RoleCompany,
				CompanyName: "Acme",
				Ctime:       100,
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) (dao.UserDAO, cache.UserCache) {
				c := cachemocks.NewMockUserCache(ctrl)
				c.EXPECT().Get(gomock.Any(), int64(3)).Return(domain.User{}, errors.New("key not found"))
				d := daomocks.NewMockUserDAO(ctrl)
				d.EXPECT().FindById(gomock.Any(), int64(3)).Return(dao.User{}, dao.ErrDataNotFound)
				return d, c
			},
			id:      3,
			wantErr: ErrUserNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := NewCachedUserRepository(tc.mock(ctrl))
			u, err := repo.FindById(context.Background(), tc.id)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.wantUser, u)
		})
	}
}

func TestCachedUserRepository_CountByRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockUserDAO(ctrl)
	d.EXPECT().CountGroupByRole(gomock.Any()).Return(map[string]int64{
		"company":   2,
		"candidate": 7,
	}, nil)
	repo := NewCachedUserRepository(d, cachemocks.NewMockUserCache(ctrl))
	cnts, err := repo.CountByRole(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, map[domain.Role]int64{
		domain.RoleCompany:   2,
		domain.RoleCandidate: 7,
	}, cnts)
}
