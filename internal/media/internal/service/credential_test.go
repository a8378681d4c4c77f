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
	"time"

	"github.com/ecodeclub/hirebook/internal/media/internal/domain"
	svcmocks "github.com/ecodeclub/hirebook/internal/media/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
	"go.uber.org/mock/gomock"
)

func testConfig() Config {
	return Config{
		AppID:    "1250000000",
		Bucket:   "hirebook",
		Region:   "ap-nanjing",
		Duration: 30 * time.Minute,
	}
}

func TestCredentialService_Issue(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(ctrl *gomock.Controller) STSClient
		key         string
		contentType string
		want        domain.Credential
		wantErr     error
	}{
		{
			name: "签发成功",
			mock: func(ctrl *gomock.Controller) STSClient {
				client := svcmocks.NewMockSTSClient(ctrl)
				client.EXPECT().GetCredential(gomock.Any()).
					DoAndReturn(func(opt *sts.CredentialOptions) (*sts.CredentialResult, error) {
						assert.Equal(t, int64(1800), opt.DurationSeconds)
						stmt := opt.Policy.Statement[0]
						assert.Equal(t, []string{
							"qcs::cos:ap-nanjing:uid/1250000000:hirebook-1250000000/answers/7/q1/video.mp4",
						}, stmt.Resource)
						assert.Equal(t, "video/mp4", stmt.Condition["string_equal"]["cos:content-type"])
						return &sts.CredentialResult{
							Credentials: &sts.Credentials{
								TmpSecretID:  "id",
								TmpSecretKey: "key",
								SessionToken: "token",
							},
						}, nil
					})
				return client
			},
			key:         "q1/video.mp4",
			contentType: "video/mp4",
			want: domain.Credential{
				SecretId:     "id",
				SecretKey:    "key",
				SessionToken: "token",
				Bucket:       "hirebook-1250000000",
				Region:       "ap-nanjing",
				Key:          "answers/7/q1/video.mp4",
				URL:          "https://hirebook-1250000000.cos.ap-nanjing.myqcloud.com/answers/7/q1/video.mp4",
			},
		},
		{
			name: "跳出目录",
			mock: func(ctrl *gomock.Controller) STSClient {
				return svcmocks.NewMockSTSClient(ctrl)
			},
			key:         "../8/video.mp4",
			contentType: "video/mp4",
			wantErr:     ErrInvalidKey,
		},
		{
			name: "绝对路径",
			mock: func(ctrl *gomock.Controller) STSClient {
				return svcmocks.NewMockSTSClient(ctrl)
			},
			key:         "/video.mp4",
			contentType: "video/mp4",
			wantErr:     ErrInvalidKey,
		},
		{
			name: "不支持的类型",
			mock: func(ctrl *gomock.Controller) STSClient {
				return svcmocks.NewMockSTSClient(ctrl)
			},
			key:         "a.exe",
			contentType: "application/x-msdownload",
			wantErr:     ErrUnsupportedContent,
		},
		{
			name: "只有前缀的类型",
			mock: func(ctrl *gomock.Controller) STSClient {
				return svcmocks.NewMockSTSClient(ctrl)
			},
			key:         "a.mp4",
			contentType: "video/",
			wantErr:     ErrUnsupportedContent,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewService(tc.mock(ctrl), testConfig())
			cred, err := svc.Issue(context.Background(), 7, tc.key, tc.contentType)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, cred)
		})
	}
}

func TestCredentialService_IssueFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := svcmocks.NewMockSTSClient(ctrl)
	client.EXPECT().GetCredential(gomock.Any()).Return(nil, errors.New("mock sts error"))
	_, err := NewService(client, testConfig()).
		Issue(context.Background(), 7, "report.xlsx",
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	require.Error(t, err)
}
