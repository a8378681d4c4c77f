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
	"strings"
	"testing"

	"github.com/ecodeclub/hirebook/internal/cv/internal/domain"
	"github.com/ecodeclub/hirebook/internal/cv/internal/repository"
	repomocks "github.com/ecodeclub/hirebook/internal/cv/internal/repository/mocks"
	"github.com/ecodeclub/hirebook/internal/pkg/pdf"
	pdfmocks "github.com/ecodeclub/hirebook/internal/pkg/pdf/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCVService_Save(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.CVRepository
		cv      domain.CV
		wantErr error
	}{
		{
			name: "保存成功",
			mock: func(ctrl *gomock.Controller) repository.CVRepository {
				repo := repomocks.NewMockCVRepository(ctrl)
				repo.EXPECT().Save(gomock.Any(), domain.CV{
					Uid:      1,
					Personal: domain.PersonalInfo{FullName: "张三"},
					Skills:   []string{"Go"},
				}).Return(nil)
				repo.EXPECT().FindByUid(gomock.Any(), int64(1)).
					Return(domain.CV{Id: 2, Uid: 1, Personal: domain.PersonalInfo{FullName: "张三"}}, nil)
				return repo
			},
			cv: domain.CV{
				Uid:      1,
				Personal: domain.PersonalInfo{FullName: " 张三 "},
				Skills:   []string{"Go", ""},
			},
		},
		{
			name: "没有姓名",
			mock: func(ctrl *gomock.Controller) repository.CVRepository {
				return repomocks.NewMockCVRepository(ctrl)
			},
			cv:      domain.CV{Uid: 1},
			wantErr: ErrInvalidCV,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), pdfmocks.NewMockConverter(ctrl))
			_, err := svc.Save(context.Background(), tc.cv)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCVService_ExportPDF(t *testing.T) {
	errChrome := errors.New("mock chrome error")
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.CVRepository, pdf.Converter)
		want    []byte
		wantErr error
	}{
		{
			name: "导出成功",
			mock: func(ctrl *gomock.Controller) (repository.CVRepository, pdf.Converter) {
				repo := repomocks.NewMockCVRepository(ctrl)
				repo.EXPECT().FindByUid(gomock.Any(), int64(1)).
					Return(domain.CV{Uid: 1, Personal: domain.PersonalInfo{FullName: "张三"}}, nil)
				converter := pdfmocks.NewMockConverter(ctrl)
				converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, html string, opts ...pdf.Option) ([]byte, error) {
						assert.True(t, strings.Contains(html, "张三"))
						return []byte("%PDF"), nil
					})
				return repo, converter
			},
			want: []byte("%PDF"),
		},
		{
			name: "没有简历",
			mock: func(ctrl *gomock.Controller) (repository.CVRepository, pdf.Converter) {
				repo := repomocks.NewMockCVRepository(ctrl)
				repo.EXPECT().FindByUid(gomock.Any(), int64(1)).
					Return(domain.CV{}, repository.ErrCVNotFound)
				return repo, pdfmocks.NewMockConverter(ctrl)
			},
			wantErr: ErrCVNotFound,
		},
		{
			name: "转换失败",
			mock: func(ctrl *gomock.Controller) (repository.CVRepository, pdf.Converter) {
				repo := repomocks.NewMockCVRepository(ctrl)
				repo.EXPECT().FindByUid(gomock.Any(), int64(1)).
					Return(domain.CV{Uid: 1, Personal: domain.PersonalInfo{FullName: "张三"}}, nil)
				converter := pdfmocks.NewMockConverter(ctrl)
				converter.EXPECT().ConvertHTMLToPDF(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errChrome)
				return repo, converter
			},
			wantErr: errChrome,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, converter := tc.mock(ctrl)
			data, err := NewService(repo, converter).ExportPDF(context.Background(), 1)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, data)
		})
	}
}

func TestCVService_ExportDOCX(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockCVRepository(ctrl)
	repo.EXPECT().FindByUid(gomock.Any(), int64(1)).
		Return(domain.CV{Uid: 1, Personal: domain.PersonalInfo{FullName: "张三"}}, nil)
	data, err := NewService(repo, pdfmocks.NewMockConverter(ctrl)).ExportDOCX(context.Background(), 1)
	require.NoError(t, err)
	// docx 就是一个 zip 文件
	assert.Equal(t, "PK", string(data[:2]))
}
