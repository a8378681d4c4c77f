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
	"math"
	"strings"

	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"golang.org/x/sync/errgroup"
)

var ErrInvalidScore = errors.New("分数必须在 0 到题目满分之间")

// Result 一道题的评分结果，Graded 为 false 的时候表示需要人工评分
type Result struct {
	Graded    bool
	Score     float64
	MaxScore  float64
	IsCorrect bool
}

type Grader struct {
	// 可以为 nil，这时候编程题全部走人工评分
	judge Judge
	// 同时执行的测试用例数量
	concurrency int
}

func NewGrader(judge Judge) *Grader {
	return &Grader{
		judge:       judge,
		concurrency: 4,
	}
}

// AutoGradable 只有选择题和编程题可以自动评分
func AutoGradable(t assessment.QuestionType) bool {
	return t == assessment.TypeMCQ || t == assessment.TypeCoding
}

// Grade judge 出错的时候直接返回，不会给出部分结果
func (g *Grader) Grade(ctx context.Context, q assessment.Question, a domain.Answer) (Result, error) {
	switch q.Type {
	case assessment.TypeMCQ:
		return g.gradeMCQ(q, a), nil
	case assessment.TypeCoding:
		return g.gradeCoding(ctx, q, a)
	default:
		return Result{}, nil
	}
}

func (g *Grader) gradeMCQ(q assessment.Question, a domain.Answer) Result {
	points := float64(q.Points)
	correct := a.Text == q.CorrectAnswer()
	res := Result{
		Graded:    true,
		MaxScore:  points,
		IsCorrect: correct,
	}
	if correct {
		res.Score = points
	}
	return res
}

func (g *Grader) gradeCoding(ctx context.Context, q assessment.Question, a domain.Answer) (Result, error) {
	if g.judge == nil || len(q.TestCases) == 0 || strings.TrimSpace(a.Code) == "" {
		return Result{}, nil
	}
	passed := make([]bool, len(q.TestCases))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.concurrency)
	for i, tc := range q.TestCases {
		eg.Go(func() error {
			res, err := g.judge.Run(ctx, RunRequest{
				Language: a.Language,
				Code:     a.Code,
				Stdin:    tc.Input,
			})
			if err != nil {
				return fmt.Errorf("执行第 %d 个测试用例失败: %w", i+1, err)
			}
			passed[i] = res.Accepted(tc.ExpectedOutput)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Result{}, err
	}
	cnt := 0
	for _, p := range passed {
		if p {
			cnt++
		}
	}
	points := float64(q.Points)
	return Result{
		Graded:    true,
		Score:     domain.Round(points * float64(cnt) / float64(len(passed))),
		MaxScore:  points,
		IsCorrect: cnt == len(passed),
	}, nil
}

// Manual 人工评分，任何题型都可以
func Manual(q assessment.Question, score float64) (Result, error) {
	points := float64(q.Points)
	if math.IsNaN(score) || score < 0 || score > points {
		return Result{}, fmt.Errorf("%w: 分数 %v, 满分 %d", ErrInvalidScore, score, q.Points)
	}
	return Result{
		Graded:    true,
		Score:     domain.Round(score),
		MaxScore:  points,
		IsCorrect: score == points,
	}, nil
}
