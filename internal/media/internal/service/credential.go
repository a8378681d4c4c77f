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
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/ecodeclub/hirebook/internal/media/internal/domain"
	sts "github.com/tencentyun/qcloud-cos-sts-sdk/go"
)

var (
	ErrInvalidKey         = errors.New("文件名不合法")
	ErrUnsupportedContent = errors.New("不支持的文件类型")
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._\-/]{0,255}$`)

// 视频题、上传文件题和 Excel 题允许的类型，以 / 结尾的是前缀
var allowedContentTypes = []string{
	"video/",
	"image/",
	"application/pdf",
	"application/zip",
	"text/plain",
	"text/csv",
	"application/msword",
	"application/vnd.ms-excel",
	"application/vnd.openxmlformats-officedocument.",
}

// STSClient sts.Client 实现了这个接口
//
//go:generate mockgen -source=./credential.go -package=svcmocks -destination=mocks/credential.mock.go STSClient Service
type STSClient interface {
	GetCredential(opt *sts.CredentialOptions) (*sts.CredentialResult, error)
}

type Service interface {
	// Issue 签发只能上传 answers/<uid>/<key> 的临时密钥
	Issue(ctx context.Context, uid int64, key, contentType string) (domain.Credential, error)
}

type Config struct {
	SecretID  string        `yaml:"secretID"`
	SecretKey string        `yaml:"secretKey"`
	AppID     string        `yaml:"appID"`
	Bucket    string        `yaml:"bucket"`
	Region    string        `yaml:"region"`
	Duration  time.Duration `yaml:"duration"`
}

type credentialService struct {
	client STSClient
	cfg    Config
	// 临时密钥的权限
	actions []string
}

func NewService(client STSClient, cfg Config) Service {
	if cfg.Duration <= 0 {
		cfg.Duration = time.Hour
	}
	return &credentialService{
		client: client,
		cfg:    cfg,
		actions: []string{
			// 简单上传
			"name/cos:PostObject",
			"name/cos:PutObject",
			// 分片上传，视频一般比较大
			"name/cos:InitiateMultipartUpload",
			"name/cos:ListMultipartUploads",
			"name/cos:ListParts",
			"name/cos:UploadPart",
			"name/cos:CompleteMultipartUpload",
		},
	}
}

func (s *credentialService) Issue(ctx context.Context, uid int64, key, contentType string) (domain.Credential, error) {
	if !validKey(key) {
		return domain.Credential{}, fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	if !allowed(contentType) {
		return domain.Credential{}, fmt.Errorf("%w: %q", ErrUnsupportedContent, contentType)
	}
	objectKey := fmt.Sprintf("answers/%d/%s", uid, key)
	// 存储桶的命名格式为 BucketName-APPID
	bucket := fmt.Sprintf("%s-%s", s.cfg.Bucket, s.cfg.AppID)
	resource := fmt.Sprintf("qcs::cos:%s:uid/%s:%s/%s",
		s.cfg.Region, s.cfg.AppID, bucket, objectKey)
	opt := &sts.CredentialOptions{
		DurationSeconds: int64(s.cfg.Duration.Seconds()),
		Region:          s.cfg.Region,
		Policy: &sts.CredentialPolicy{
			Statement: []sts.CredentialPolicyStatement{
				{
					Action:   s.actions,
					Effect:   "allow",
					Resource: []string{resource},
					Condition: map[string]map[string]interface{}{
						"string_equal": {
							"cos:content-type": contentType,
						},
					},
				},
			},
		},
	}
	res, err := s.client.GetCredential(opt)
	if err != nil {
		return domain.Credential{}, fmt.Errorf("申请临时密钥失败: %w", err)
	}
	return domain.Credential{
		SecretId:     res.Credentials.TmpSecretID,
		SecretKey:    res.Credentials.TmpSecretKey,
		SessionToken: res.Credentials.SessionToken,
		StartTime:    int64(res.StartTime),
		ExpiredTime:  int64(res.ExpiredTime),
		Bucket:       bucket,
		Region:       s.cfg.Region,
		Key:          objectKey,
		URL:          fmt.Sprintf("https://%s.cos.%s.myqcloud.com/%s", bucket, s.cfg.Region, objectKey),
	}, nil
}

// validKey 不允许跳出自己的目录
func validKey(key string) bool {
	if !keyPattern.MatchString(key) {
		return false
	}
	return path.Clean(key) == key && !strings.Contains(key, "..")
}

func allowed(contentType string) bool {
	for _, t := range allowedContentTypes {
		if strings.HasSuffix(t, "/") || strings.HasSuffix(t, ".") {
			if strings.HasPrefix(contentType, t) && len(contentType) > len(t) {
				return true
			}
			continue
		}
		if contentType == t {
			return true
		}
	}
	return false
}
