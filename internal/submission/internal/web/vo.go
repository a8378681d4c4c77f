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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
)

type Submission struct {
	Id           int64    `json:"id"`
	JobId        int64    `json:"jobId"`
	Uid          int64    `json:"uid"`
	AssessmentId int64    `json:"assessmentId"`
	Status       string   `json:"status"`
	StartedAt    int64    `json:"startedAt"`
	SubmittedAt  int64    `json:"submittedAt,omitempty"`
	TotalScore   *float64 `json:"totalScore,omitempty"`
	MaxScore     *float64 `json:"maxScore,omitempty"`
	// 百分比，没有分数的时候不返回
	Percentage   *float64 `json:"percentage,omitempty"`
	Passed       *bool    `json:"passed,omitempty"`
	Decision     string   `json:"decision"`
	CompanyNotes string   `json:"companyNotes,omitempty"`
	AutoGraded   bool     `json:"autoGraded"`
	// 答题截止时间，0 表示不限时
	Deadline int64    `json:"deadline,omitempty"`
	Answers  []Answer `json:"answers,omitempty"`
	Utime    int64    `json:"utime"`
}

type Answer struct {
	QuestionId       int64    `json:"questionId"`
	Text             string   `json:"text,omitempty"`
	Code             string   `json:"code,omitempty"`
	Language         string   `json:"language,omitempty"`
	FileURL          string   `json:"fileURL,omitempty"`
	VideoURL         string   `json:"videoURL,omitempty"`
	Score            *float64 `json:"score,omitempty"`
	MaxScore         *float64 `json:"maxScore,omitempty"`
	IsCorrect        *bool    `json:"isCorrect,omitempty"`
	IsManuallyScored bool     `json:"isManuallyScored"`
}

func newSubmission(s domain.Submission) Submission {
	res := Submission{
		Id:           s.Id,
		JobId:        s.JobId,
		Uid:          s.Uid,
		AssessmentId: s.AssessmentId,
		Status:       s.Status.String(),
		StartedAt:    s.StartedAt,
		SubmittedAt:  s.SubmittedAt,
		TotalScore:   s.TotalScore,
		MaxScore:     s.MaxScore,
		Decision:     s.EffectiveDecision().String(),
		CompanyNotes: s.CompanyNotes,
		AutoGraded:   s.AutoGraded,
		Answers:      slice.Map(s.Answers, func(idx int, src domain.Answer) Answer { return newAnswer(src) }),
		Utime:        s.Utime,
	}
	if p, ok := s.Percentage(); ok {
		res.Percentage = &p
	}
	return res
}

// withAssessment 补充依赖测评的字段
func (s Submission) withAssessment(sub domain.Submission, a assessment.Assessment) Submission {
	s.Deadline = sub.Deadline(a.TimeLimit)
	if passed, ok := sub.Passed(a.PassingScore); ok {
		s.Passed = &passed
	}
	return s
}

func newAnswer(a domain.Answer) Answer {
	return Answer{
		QuestionId:       a.QuestionId,
		Text:             a.Text,
		Code:             a.Code,
		Language:         a.Language,
		FileURL:          a.FileURL,
		VideoURL:         a.VideoURL,
		Score:            a.Score,
		MaxScore:         a.MaxScore,
		IsCorrect:        a.IsCorrect,
		IsManuallyScored: a.IsManuallyScored,
	}
}

type Assessment struct {
	Id           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TimeLimit    int       `json:"timeLimit"`
	PassingScore int       `json:"passingScore"`
	TotalPoints  int       `json:"totalPoints"`
	Sections     []Section `json:"sections"`
}

type Section struct {
	Id          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Type        string     `json:"type"`
	TimeLimit   int        `json:"timeLimit"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	Id        int64      `json:"id"`
	Text      string     `json:"text"`
	Type      string     `json:"type"`
	Points    int        `json:"points"`
	Options   []Option   `json:"options,omitempty"`
	TestCases []TestCase `json:"testCases,omitempty"`
}

type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct,omitempty"`
}

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput,omitempty"`
}

// newAssessment 给候选人的时候调用方需要先去掉答案
func newAssessment(a assessment.Assessment) Assessment {
	return Assessment{
		Id:           a.Id,
		Title:        a.Title,
		Description:  a.Description,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
		TotalPoints:  a.TotalPoints(),
		Sections: slice.Map(a.Sections, func(idx int, s assessment.Section) Section {
			return Section{
				Id:          s.Id,
				Title:       s.Title,
				Description: s.Description,
				Type:        s.Type.String(),
				TimeLimit:   s.TimeLimit,
				Questions:   slice.Map(s.Questions, func(idx int, q assessment.Question) Question { return newQuestion(q) }),
			}
		}),
	}
}

func newQuestion(q assessment.Question) Question {
	return Question{
		Id:     q.Id,
		Text:   q.Text,
		Type:   q.Type.String(),
		Points: q.Points,
		Options: slice.Map(q.Options, func(idx int, src assessment.Option) Option {
			return Option{Text: src.Text, Correct: src.Correct}
		}),
		TestCases: slice.Map(q.TestCases, func(idx int, src assessment.TestCase) TestCase {
			return TestCase{Input: src.Input, ExpectedOutput: src.ExpectedOutput}
		}),
	}
}

// SubmissionDetail 答卷和对应的测评
type SubmissionDetail struct {
	Submission Submission `json:"submission"`
	Assessment Assessment `json:"assessment"`
}

func newSubmissionDetail(sub domain.Submission, a assessment.Assessment) SubmissionDetail {
	return SubmissionDetail{
		Submission: newSubmission(sub).withAssessment(sub, a),
		Assessment: newAssessment(a),
	}
}

type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Total       int64        `json:"total"`
}

type JobIdReq struct {
	JobId int64 `json:"jobId"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type SaveAnswerReq struct {
	SubmissionId int64  `json:"submissionId"`
	Answer       Answer `json:"answer"`
}

func (r SaveAnswerReq) toDomain() domain.Answer {
	return domain.Answer{
		SubmissionId: r.SubmissionId,
		QuestionId:   r.Answer.QuestionId,
		Text:         r.Answer.Text,
		Code:         r.Answer.Code,
		Language:     r.Answer.Language,
		FileURL:      r.Answer.FileURL,
		VideoURL:     r.Answer.VideoURL,
	}
}

type SubmitReq struct {
	Id int64 `json:"id"`
	// 幂等键，前端每次点击提交生成一个
	Key string `json:"key"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type CompanyListReq struct {
	// 0 表示所有职位
	JobId  int64 `json:"jobId"`
	Offset int   `json:"offset"`
	Limit  int   `json:"limit"`
}

type AutoScoreReq struct {
	Id         int64 `json:"id"`
	QuestionId int64 `json:"questionId"`
}

type ManualScoreReq struct {
	Id         int64   `json:"id"`
	QuestionId int64   `json:"questionId"`
	Score      float64 `json:"score"`
}

type DecisionReq struct {
	Id       int64  `json:"id"`
	Decision string `json:"decision"`
	Notes    string `json:"notes"`
}
