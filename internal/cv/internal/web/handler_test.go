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
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/cv/internal/service"
	svcmocks "github.com/ecodeclub/hirebook/internal/cv/internal/service/mocks"
	"github.com/ecodeclub/hirebook/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_ExportPDF(t *testing.T) {
	testCases := []struct {
		name     string
		login    bool
		mock     func(svc *svcmocks.MockService)
		wantCode int
		wantBody string
	}{
		{
			name:  "导出成功",
			login: true,
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().ExportPDF(gomock.Any(), int64(1)).Return([]byte("%PDF-1.4"), nil)
			},
			wantCode: http.StatusOK,
			wantBody: "%PDF-1.4",
		},
		{
			name:  "没有简历",
			login: true,
			mock: func(svc *svcmocks.MockService) {
				svc.EXPECT().ExportPDF(gomock.Any(), int64(1)).Return(nil, service.ErrCVNotFound)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name:     "未登录",
			mock:     func(svc *svcmocks.MockService) {},
			wantCode: http.StatusUnauthorized,
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
				if tc.login {
					ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: 1}))
				}
			})
			NewHandler(svc).PrivateRoutes(server)
			req := httptest.NewRequest(http.MethodGet, "/candidate/cv/pdf", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
			if tc.wantCode != http.StatusOK {
				return
			}
			assert.Equal(t, contentTypePDF, recorder.Header().Get("Content-Type"))
			assert.Equal(t, tc.wantBody, recorder.Body.String())
		})
	}
}
