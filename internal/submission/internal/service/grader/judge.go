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

package grader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/lithammer/shortuuid/v4"
)

// Judge 在沙箱里面执行候选人的代码
//
//go:generate mockgen -source=./judge.go -package=gradermocks -destination=mocks/judge.mock.go Judge
type Judge interface {
	Run(ctx context.Context, req RunRequest) (RunResult, error)
}

type RunRequest struct {
	Language string
	Code     string
	Stdin    string
}

type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Accepted 退出码为 0 并且输出和期望输出一致，忽略首尾空白
func (r RunResult) Accepted(expected string) bool {
	return r.ExitCode == 0 && strings.TrimSpace(r.Stdout) == strings.TrimSpace(expected)
}

type JudgeConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
	// 没有指定语言的时候用这个
	DefaultLanguage string `yaml:"defaultLanguage"`
}

// HTTPJudge 通过 HTTP 调用代码执行服务
type HTTPJudge struct {
	client          *resty.Client
	defaultLanguage string
}

func NewHTTPJudge(cfg JudgeConfig) *HTTPJudge {
	client := resty.New().
		SetBaseURL(cfg.Endpoint).
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json")
	return &HTTPJudge{
		client:          client,
		defaultLanguage: cfg.DefaultLanguage,
	}
}

type runReq struct {
	Language string `json:"language"`
	Code     string `json:"code"`
	Stdin    string `json:"stdin"`
}

type runResp struct {
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	ExitCode int    `json:"exitCode"`
}

func (j *HTTPJudge) Run(ctx context.Context, req RunRequest) (RunResult, error) {
	lang := req.Language
	if lang == "" {
		lang = j.defaultLanguage
	}
	if lang == "" {
		return RunResult{}, errors.New("没有指定编程语言")
	}
	var resp runResp
	res, err := j.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", shortuuid.New()).
		SetBody(runReq{Language: lang, Code: req.Code, Stdin: req.Stdin}).
		SetResult(&resp).
		Post("/run")
	if err != nil {
		return RunResult{}, fmt.Errorf("调用代码执行服务失败: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return RunResult{}, fmt.Errorf("代码执行服务返回异常状态码 %d: %s", res.StatusCode(), res.String())
	}
	return RunResult{
		Stdout:   resp.Stdout,
		Stderr:   resp.Stderr,
		ExitCode: resp.ExitCode,
	}, nil
}
