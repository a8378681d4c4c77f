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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/cache"
	cachemocks "github.com/ecodeclub/hirebook/internal/assessment/internal/repository/cache/mocks"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/dao"
	daomocks "github.com/ecodeclub/hirebook/internal/assessment/internal/repository/dao/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedAssessmentRepository_Tree(t *testing.T) {
	cached := domain.Assessment{Id: 1, Title: "缓存里面的"}
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (dao.AssessmentDAO, cache.AssessmentCache)
		want    domain.Assessment
		wantErr error
	}{
		{
			name: "命中缓存",
			mock: func(ctrl *gomock.Controller) (dao.AssessmentDAO, cache.AssessmentCache) {
				c := cachemocks.NewMockAssessmentCache(ctrl)
				c.EXPECT().GetTree(gomock.Any(), int64(1)).Return(cached, nil)
				return daomocks.NewMockAssessmentDAO(ctrl), c
			},
			want: cached,
		},
		{
			name: "未命中缓存，按顺序组装",
			mock: func(ctrl *gomock.Controller) (dao.AssessmentDAO, cache.AssessmentCache) {
				c := cachemocks.NewMockAssessmentCache(ctrl)
				d := daomocks.NewMockAssessmentDAO(ctrl)
				c.EXPECT().GetTree(gomock.Any(), int64(1)).Return(domain.Assessment{}, cache.ErrKeyNotFound)
				d.EXPECT().FindAssessmentById(gomock.Any(), int64(1)).
					Return(dao.Assessment{Id: 1, JobId: 2, CompanyId: 3, Title: "测评"}, nil)
				d.EXPECT().FindSectionsByAssessmentId(gomock.Any(), int64(1)).
					Return([]dao.Section{
						{Id: 11, AssessmentId: 1, Type: "mcq", OrderIdx: 0},
						{Id: 12, AssessmentId: 1, Type: "video", OrderIdx: 1},
					}, nil)
				d.EXPECT().FindQuestionsByAssessmentId(gomock.Any(), int64(1)).
					Return([]dao.Question{
						{Id: 21, SectionId: 11, AssessmentId: 1, Type: "mcq", OrderIdx: 0, Points: 10,
							Options: sqlx.JsonColumn[[]dao.Option]{
								Val:   []dao.Option{{Text: "props", Correct: true}, {Text: "state"}},
								Valid: true,
							}},
						{Id: 22, SectionId: 11, AssessmentId: 1, Type: "mcq", OrderIdx: 1, Points: 5},
					}, nil)
				c.EXPECT().SetTree(gomock.Any(), gomock.Any()).Return(errors.New("redis 挂了"))
				return d, c
			},
			want: domain.Assessment{
				Id: 1, JobId: 2, CompanyId: 3, Title: "测评",
				Sections: []domain.Section{
					{
						Id: 11, AssessmentId: 1, Type: domain.TypeMCQ, OrderIdx: 0,
						Questions: []domain.Question{
							{Id: 21, SectionId: 11, AssessmentId: 1, Type: domain.TypeMCQ, OrderIdx: 0, Points: 10,
								Options:   []domain.Option{{Text: "props", Correct: true}, {Text: "state"}},
								TestCases: []domain.TestCase{}},
							{Id: 22, SectionId: 11, AssessmentId: 1, Type: domain.TypeMCQ, OrderIdx: 1, Points: 5,
								Options: []domain.Option{}, TestCases: []domain.TestCase{}},
						},
					},
					{Id: 12, AssessmentId: 1, Type: domain.TypeVideo, OrderIdx: 1},
				},
			},
		},
		{
			name: "测评不存在",
			mock: func(ctrl *gomock.Controller) (dao.AssessmentDAO, cache.AssessmentCache) {
				c := cachemocks.NewMockAssessmentCache(ctrl)
				d := daomocks.NewMockAssessmentDAO(ctrl)
				c.EXPECT().GetTree(gomock.Any(), int64(1)).Return(domain.Assessment{}, cache.ErrKeyNotFound)
				d.EXPECT().FindAssessmentById(gomock.Any(), int64(1)).
					Return(dao.Assessment{}, ErrRecordNotFound)
				d.EXPECT().FindSectionsByAssessmentId(gomock.Any(), int64(1)).Return(nil, nil)
				d.EXPECT().FindQuestionsByAssessmentId(gomock.Any(), int64(1)).Return(nil, nil)
				return d, c
			},
			wantErr: ErrRecordNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			d, c := tc.mock(ctrl)
			repo := NewCachedAssessmentRepository(d, c)
			a, err := repo.Tree(context.Background(), 1)
			require.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			assert.Equal(t, tc.want, a)
		})
	}
}

func TestCachedAssessmentRepository_Invalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	d := daomocks.NewMockAssessmentDAO(ctrl)
	c := cachemocks.NewMockAssessmentCache(ctrl)
	d.EXPECT().DeleteSection(gomock.Any(), int64(11)).Return(nil)
	c.EXPECT().DelTree(gomock.Any(), int64(1)).Return(nil)
	d.EXPECT().CreateQuestion(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("db 错误"))
	// 写库失败也要删缓存
	c.EXPECT().DelTree(gomock.Any(), int64(1)).Return(nil)

	repo := NewCachedAssessmentRepository(d, c)
	err := repo.DeleteSection(context.Background(), 1, 11)
	assert.NoError(t, err)
	_, err = repo.CreateQuestion(context.Background(), domain.Question{AssessmentId: 1, SectionId: 11})
	assert.Error(t, err)
}
