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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckRoleMiddlewareBuilder(t *testing.T) {
	testCases := []struct {
		name     string
		path     string
		sess     session.Session
		wantCode int
	}{
		{
			name:     "未登录",
			path:     "/company/jobs/list",
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "公司访问公司接口",
			path: "/company/jobs/list",
			sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{RoleClaimKey: "company"},
			}),
			wantCode: http.StatusOK,
		},
		{
			name: "候选人访问公司接口",
			path: "/company/jobs/list",
			sess: session.NewMemorySession(session.Claims{
				Uid:  2,
				Data: map[string]string{RoleClaimKey: "candidate"},
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name: "没有角色",
			path: "/candidate/submissions/list",
			sess: session.NewMemorySession(session.Claims{
				Uid: 3,
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name: "管理员可以访问公司接口",
			path: "/company/jobs/list",
			sess: session.NewMemorySession(session.Claims{
				Uid:  4,
				Data: map[string]string{RoleClaimKey: "admin"},
			}),
			wantCode: http.StatusOK,
		},
		{
			name:     "不受限制的路径",
			path:     "/jobs/list",
			wantCode: http.StatusOK,
		},
		{
			name: "最长前缀优先",
			path: "/company/dashboard/admin",
			sess: session.NewMemorySession(session.Claims{
				Uid:  5,
				Data: map[string]string{RoleClaimKey: "company"},
			}),
			wantCode: http.StatusForbidden,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				if tc.sess != nil {
					ctx.Set("_session", tc.sess)
				}
			})
			server.Use(NewCheckRoleMiddlewareBuilder(&test.SessionProvider{}).
				Prefix("/company", "company", "admin").
				Prefix("/company/dashboard/admin", "admin").
				Prefix("/candidate", "candidate").
				Build())
			server.Any("/*path", func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodPost, tc.path, nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
