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

package job

import (
	"context"
	"errors"
	"testing"
	"time"

	svcmocks "github.com/ecodeclub/hirebook/internal/submission/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAutoGradeJob_Run(t *testing.T) {
	testCases := []struct {
		name       string
		mock       func(svc *svcmocks.MockService)
		wantErr    bool
		wantCursor int64
	}{
		{
			name: "成功",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(0), 20).
					DoAndReturn(func(ctx context.Context, before, cursor int64, limit int) (int64, int, error) {
						assert.True(t, before <= time.Now().Add(-time.Minute).UnixMilli())
						return 0, 3, nil
					})
			},
		},
		{
			name: "还没有扫完",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(0), 20).
					Return(int64(120), 20, nil)
			},
			wantCursor: 120,
		},
		{
			name: "查询失败",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(0), 20).
					Return(int64(0), 0, errors.New("mock db error"))
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)
			j := NewAutoGradeJob(svc, time.Minute, 20)
			err := j.Run(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.wantCursor, j.cursor.Load())
			assert.Equal(t, "AutoGradeJob", j.Name())
		})
	}
}

// 上一轮停在哪里，下一轮就从哪里接着扫，扫到头之后从头开始
func TestAutoGradeJob_RunResumesFromCursor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	gomock.InOrder(
		svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(0), 2).
			Return(int64(12), 0, nil),
		svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(12), 2).
			Return(int64(0), 1, nil),
		svc.EXPECT().GradePending(gomock.Any(), gomock.Any(), int64(0), 2).
			Return(int64(0), 0, nil),
	)
	j := NewAutoGradeJob(svc, time.Minute, 2)
	for i := 0; i < 3; i++ {
		require.NoError(t, j.Run(context.Background()))
	}
}
