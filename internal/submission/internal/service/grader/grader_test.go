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

package grader_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	. "github.com/ecodeclub/hirebook/internal/submission/internal/service/grader"
	gradermocks "github.com/ecodeclub/hirebook/internal/submission/internal/service/grader/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGrader_MCQ(t *testing.T) {
	q := assessment.Question{
		Id:     1,
		Type:   assessment.TypeMCQ,
		Points: 10,
		Options: []assessment.Option{
			{Text: "state"},
			{Text: "props", Correct: true},
			{Text: "context"},
		},
	}
	testCases := []struct {
		name   string
		answer string
		want   Result
	}{
		{
			name:   "答错",
			answer: "state",
			want:   Result{Graded: true, Score: 0, MaxScore: 10, IsCorrect: false},
		},
		{
			name:   "答对",
			answer: "props",
			want:   Result{Graded: true, Score: 10, MaxScore: 10, IsCorrect: true},
		},
		{
			name:   "大小写不同也算错",
			answer: "Props",
			want:   Result{Graded: true, Score: 0, MaxScore: 10},
		},
		{
			name:   "没有作答",
			answer: "",
			want:   Result{Graded: true, Score: 0, MaxScore: 10},
		},
	}
	g := NewGrader(nil)
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := g.Grade(context.Background(), q, domain.Answer{QuestionId: 1, Text: tc.answer})
			require.NoError(t, err)
			assert.Equal(t, tc.want, res)
			// 正确与否和得分始终一致
			assert.Equal(t, res.IsCorrect, tc.answer == q.CorrectAnswer())
		})
	}
}

func TestGrader_Coding(t *testing.T) {
	q := assessment.Question{
		Id:     2,
		Type:   assessment.TypeCoding,
		Points: 25,
		TestCases: []assessment.TestCase{
			{Input: "1 2", ExpectedOutput: "3"},
			{Input: "2 2", ExpectedOutput: "4"},
		},
	}
	testCases := []struct {
		name    string
		judge   func(ctrl *gomock.Controller) Judge
		q       assessment.Question
		answer  domain.Answer
		want    Result
		wantErr bool
	}{
		{
			name: "空代码需要人工评分",
			judge: func(ctrl *gomock.Controller) Judge {
				return gradermocks.NewMockJudge(ctrl)
			},
			q:      q,
			answer: domain.Answer{Code: "  \n"},
			want:   Result{},
		},
		{
			name: "没有配置执行服务",
			judge: func(ctrl *gomock.Controller) Judge {
				return nil
			},
			q:      q,
			answer: domain.Answer{Code: "print(sum(map(int, input().split())))"},
			want:   Result{},
		},
		{
			name: "没有测试用例",
			judge: func(ctrl *gomock.Controller) Judge {
				return gradermocks.NewMockJudge(ctrl)
			},
			q:      assessment.Question{Id: 3, Type: assessment.TypeCoding, Points: 25},
			answer: domain.Answer{Code: "print(1)"},
			want:   Result{},
		},
		{
			name: "全部通过",
			judge: func(ctrl *gomock.Controller) Judge {
				j := gradermocks.NewMockJudge(ctrl)
				j.EXPECT().Run(gomock.Any(), RunRequest{Language: "python", Code: "code", Stdin: "1 2"}).
					Return(RunResult{Stdout: "3\n"}, nil)
				j.EXPECT().Run(gomock.Any(), RunRequest{Language: "python", Code: "code", Stdin: "2 2"}).
					Return(RunResult{Stdout: "4"}, nil)
				return j
			},
			q:      q,
			answer: domain.Answer{Code: "code", Language: "python"},
			want:   Result{Graded: true, Score: 25, MaxScore: 25, IsCorrect: true},
		},
		{
			name: "通过一半",
			judge: func(ctrl *gomock.Controller) Judge {
				j := gradermocks.NewMockJudge(ctrl)
				j.EXPECT().Run(gomock.Any(), RunRequest{Code: "code", Stdin: "1 2"}).
					Return(RunResult{Stdout: "3"}, nil)
				j.EXPECT().Run(gomock.Any(), RunRequest{Code: "code", Stdin: "2 2"}).
					Return(RunResult{Stdout: "4", ExitCode: 1}, nil)
				return j
			},
			q:      q,
			answer: domain.Answer{Code: "code"},
			want:   Result{Graded: true, Score: 12.5, MaxScore: 25},
		},
		{
			name: "三分之一保留两位小数",
			judge: func(ctrl *gomock.Controller) Judge {
				j := gradermocks.NewMockJudge(ctrl)
				j.EXPECT().Run(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, req RunRequest) (RunResult, error) {
						if req.Stdin == "a" {
							return RunResult{Stdout: "ok"}, nil
						}
						return RunResult{Stdout: "wrong"}, nil
					}).Times(3)
				return j
			},
			q: assessment.Question{Id: 4, Type: assessment.TypeCoding, Points: 10,
				TestCases: []assessment.TestCase{
					{Input: "a", ExpectedOutput: "ok"},
					{Input: "b", ExpectedOutput: "ok"},
					{Input: "c", ExpectedOutput: "ok"},
				}},
			answer: domain.Answer{Code: "code"},
			want:   Result{Graded: true, Score: 3.33, MaxScore: 10},
		},
		{
			name: "执行服务出错",
			judge: func(ctrl *gomock.Controller) Judge {
				j := gradermocks.NewMockJudge(ctrl)
				j.EXPECT().Run(gomock.Any(), gomock.Any()).
					Return(RunResult{}, errors.New("sandbox 超时")).AnyTimes()
				return j
			},
			q:       q,
			answer:  domain.Answer{Code: "code"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			g := NewGrader(tc.judge(ctrl))
			res, err := g.Grade(context.Background(), tc.q, tc.answer)
			assert.Equal(t, tc.wantErr, err != nil)
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestGrader_ManualOnlyTypes(t *testing.T) {
	g := NewGrader(nil)
	for _, typ := range []assessment.QuestionType{
		assessment.TypeShortAnswer,
		assessment.TypeLongAnswer,
		assessment.TypeVideo,
		assessment.TypeFileUpload,
		assessment.TypeExcel,
	} {
		t.Run(typ.String(), func(t *testing.T) {
			res, err := g.Grade(context.Background(),
				assessment.Question{Type: typ, Points: 5},
				domain.Answer{Text: "回答", FileURL: "https://cos/a.xlsx"})
			require.NoError(t, err)
			assert.False(t, res.Graded)
			assert.False(t, AutoGradable(typ))
		})
	}
}

func TestManual(t *testing.T) {
	q := assessment.Question{Type: assessment.TypeLongAnswer, Points: 20}
	testCases := []struct {
		name    string
		score   float64
		want    Result
		wantErr error
	}{
		{name: "满分", score: 20, want: Result{Graded: true, Score: 20, MaxScore: 20, IsCorrect: true}},
		{name: "部分得分", score: 15, want: Result{Graded: true, Score: 15, MaxScore: 20}},
		{name: "零分", score: 0, want: Result{Graded: true, Score: 0, MaxScore: 20}},
		{name: "负分", score: -1, wantErr: ErrInvalidScore},
		{name: "超过满分", score: 20.5, wantErr: ErrInvalidScore},
		{name: "NaN", score: math.NaN(), wantErr: ErrInvalidScore},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Manual(q, tc.score)
			assert.ErrorIs(t, err, tc.wantErr)
			assert.Equal(t, tc.want, res)
		})
	}
}
