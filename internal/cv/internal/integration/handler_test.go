//go:build e2e

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
package integration

import (
	"context"
	"net/http"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/hirebook/internal/cv/internal/errs"
	"github.com/ecodeclub/hirebook/internal/cv/internal/integration/startup"
	"github.com/ecodeclub/hirebook/internal/cv/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/cv/internal/web"
	"github.com/ecodeclub/hirebook/internal/test"
	testioc "github.com/ecodeclub/hirebook/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

type CVHandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *CVHandlerTestSuite) SetupSuite() {
	module := startup.InitModule()
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: uid}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
	s.db = testioc.InitDB()
}

func (s *CVHandlerTestSuite) TearDownTest() {
	require.NoError(s.T(), s.db.Exec("TRUNCATE TABLE `cvs`").Error)
}

func (s *CVHandlerTestSuite) TestSave() {
	testCases := []struct {
		name     string
		req      web.SaveReq
		after    func(t *testing.T)
		wantCode int
	}{
		{
			name: "新建简历",
			req: web.SaveReq{CV: web.CV{
				Personal: web.PersonalInfo{FullName: " 张三 ", Email: "zhangsan@example.com"},
				Education: []web.Education{
					{Degree: "本科", Institution: "某大学", StartDate: "2015-09", EndDate: "2019-06"},
				},
				Skills: []string{"Go", " ", "MySQL"},
			}},
			after: func(t *testing.T) {
				var got dao.CV
				err := s.db.Where("uid = ?", uid).First(&got).Error
				require.NoError(t, err)
				assert.Equal(t, "张三", got.FullName)
				assert.Equal(t, []string{"Go", "MySQL"}, got.Skills.Val)
				assert.Len(t, got.Education.Val, 1)
			},
		},
		{
			name: "再次保存是覆盖",
			req: web.SaveReq{CV: web.CV{
				Personal: web.PersonalInfo{FullName: "李四"},
			}},
			after: func(t *testing.T) {
				var cnt int64
				err := s.db.Model(&dao.CV{}).Where("uid = ?", uid).Count(&cnt).Error
				require.NoError(t, err)
				assert.Equal(t, int64(1), cnt)
				var got dao.CV
				err = s.db.Where("uid = ?", uid).First(&got).Error
				require.NoError(t, err)
				assert.Equal(t, "李四", got.FullName)
			},
		},
		{
			name: "缺少姓名",
			req:  web.SaveReq{CV: web.CV{}},
			after: func(t *testing.T) {
			},
			wantCode: errs.InvalidInput.Code,
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			req, err := test.NewJSONRequest(http.MethodPost, "/candidate/cv/save", tc.req)
			require.NoError(t, err)
			recorder := test.NewJSONResponseRecorder[web.CV]()
			s.server.ServeHTTP(recorder, req)
			require.Equal(t, http.StatusOK, recorder.Code)
			assert.Equal(t, tc.wantCode, recorder.MustScan().Code)
			tc.after(t)
		})
	}
}

func (s *CVHandlerTestSuite) TestDetail() {
	t := s.T()
	req, err := test.NewJSONRequest(http.MethodPost, "/candidate/cv/detail", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.CV]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, errs.CVNotFound.Code, recorder.MustScan().Code)

	err = dao.NewGORMCVDAO(s.db).Upsert(context.Background(), dao.CV{Uid: uid, FullName: "王五"})
	require.NoError(t, err)
	recorder = test.NewJSONResponseRecorder[web.CV]()
	req, err = test.NewJSONRequest(http.MethodPost, "/candidate/cv/detail", nil)
	require.NoError(t, err)
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "王五", recorder.MustScan().Data.Personal.FullName)
}

func TestCVHandler(t *testing.T) {
	suite.Run(t, new(CVHandlerTestSuite))
}
