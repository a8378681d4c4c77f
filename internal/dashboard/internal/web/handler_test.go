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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/domain"
	svcmocks "github.com/ecodeclub/hirebook/internal/dashboard/internal/service/mocks"
	"github.com/ecodeclub/hirebook/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Candidate(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(svc *svcmocks.MockService)
		wantCode int
		wantResp test.Result[CandidateDashboard]
	}{
		{
			name: "查询成功",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Candidate(gomock.Any(), int64(7)).Return(domain.CandidateDashboard{
					InProgress: 1,
					Submitted:  1,
					Recent: []domain.Application{
						{SubmissionId: 1, JobId: 2, JobTitle: "前端工程师", Status: "submitted", Decision: "pending", SubmittedAt: 10, Utime: 10},
					},
				}, nil)
			},
			wantCode: http.StatusOK,
			wantResp: test.Result[CandidateDashboard]{
				Data: CandidateDashboard{
					InProgress: 1,
					Submitted:  1,
					Recent: []Application{
						{SubmissionId: 1, JobId: 2, JobTitle: "前端工程师", Status: "submitted", Decision: "pending", SubmittedAt: 10, Utime: 10},
					},
				},
			},
		},
		{
			name: "系统错误",
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().Candidate(gomock.Any(), int64(7)).
					Return(domain.CandidateDashboard{}, errors.New("mock db error"))
			},
			wantCode: http.StatusInternalServerError,
			wantResp: test.Result[CandidateDashboard]{
				Code: systemErrorResult.Code,
				Msg:  systemErrorResult.Msg,
			},
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
			req := httptest.NewRequest(http.MethodGet, "/candidate/dashboard", nil)
			recorder := test.NewJSONResponseRecorder[CandidateDashboard]()
			server.ServeHTTP(recorder, req)
			require.Equal(t, tc.wantCode, recorder.Code)
			assert.Equal(t, tc.wantResp, recorder.MustScan())
		})
	}
}

func TestAdminHandler_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := svcmocks.NewMockService(ctrl)
	svc.EXPECT().Admin(gomock.Any()).Return(domain.AdminDashboard{
		Users:       map[string]int64{"candidate": 3},
		TotalJobs:   2,
		ActiveJobs:  1,
		Submissions: map[string]int64{"submitted": 4},
	}, nil)

	server := gin.New()
	NewAdminHandler(svc).PrivateRoutes(server)
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	recorder := test.NewJSONResponseRecorder[AdminDashboard]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, test.Result[AdminDashboard]{
		Data: AdminDashboard{
			Users:       map[string]int64{"candidate": 3},
			TotalJobs:   2,
			ActiveJobs:  1,
			Submissions: map[string]int64{"submitted": 4},
		},
	}, recorder.MustScan())
}
