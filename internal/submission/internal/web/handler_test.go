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

package web

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/errs"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service"
	svcmocks "github.com/ecodeclub/hirebook/internal/submission/internal/service/mocks"
	"github.com/ecodeclub/hirebook/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Submit(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *svcmocks.MockService)
		wantCode int
		wantId   int64
	}{
		{
			name: "提交成功",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Submit(gomock.Any(), int64(7), int64(1), "k1").
					Return(domain.Submission{Id: 1, Uid: 7, Status: domain.StatusSubmitted}, nil)
			},
			wantId: 1,
		},
		{
			name: "还有题目没有作答",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Submit(gomock.Any(), int64(7), int64(1), "k1").
					Return(domain.Submission{}, fmt.Errorf("%w: [31]", service.ErrIncompleteSubmission))
			},
			wantCode: errs.IncompleteSubmission.Code,
		},
		{
			name: "状态不对",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Submit(gomock.Any(), int64(7), int64(1), "k1").
					Return(domain.Submission{}, service.ErrStateViolation)
			},
			wantCode: errs.StateViolation.Code,
		},
		{
			name: "别人的答卷",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Submit(gomock.Any(), int64(7), int64(1), "k1").
					Return(domain.Submission{}, service.ErrForbidden)
			},
			wantCode: errs.Forbidden.Code,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := svcmocks.NewMockService(ctrl)
			tc.mock(svc)

			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: 7}))
			})
			NewHandler(svc).PrivateRoutes(server)

			req, err := test.NewJSONRequest(http.MethodPost, "/candidate/submissions/submit",
				SubmitReq{Id: 1, Key: "k1"})
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[Submission]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			res := recorder.MustScan()
			assert.Equal(t, tc.wantCode, res.Code)
			assert.Equal(t, tc.wantId, res.Data.Id)
		})
	}
}

func TestNewSubmission(t *testing.T) {
	total, maxScore := 12.0, 15.0
	sub := domain.Submission{
		Id:         1,
		Status:     domain.StatusSubmitted,
		TotalScore: &total,
		MaxScore:   &maxScore,
	}
	vo := newSubmission(sub)
	require.NotNil(t, vo.Percentage)
	assert.Equal(t, 80.0, *vo.Percentage)
	assert.Equal(t, "pending", vo.Decision)
}
