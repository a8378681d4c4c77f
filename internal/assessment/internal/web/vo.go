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
	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
)

type Assessment struct {
	Id           int64     `json:"id,omitempty"`
	JobId        int64     `json:"jobId"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	TimeLimit    int       `json:"timeLimit"`
	PassingScore int       `json:"passingScore"`
	TotalPoints  int       `json:"totalPoints,omitempty"`
	Sections     []Section `json:"sections,omitempty"`
	Utime        int64     `json:"utime,omitempty"`
}

type Section struct {
	Id           int64      `json:"id,omitempty"`
	AssessmentId int64      `json:"assessmentId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Type         string     `json:"type"`
	OrderIdx     int        `json:"orderIdx"`
	TimeLimit    int        `json:"timeLimit"`
	Questions    []Question `json:"questions,omitempty"`
}

type Question struct {
	Id        int64      `json:"id,omitempty"`
	SectionId int64      `json:"sectionId"`
	Text      string     `json:"text"`
	Type      string     `json:"type"`
	OrderIdx  int        `json:"orderIdx"`
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

func newAssessment(a domain.Assessment) Assessment {
	return Assessment{
		Id:           a.Id,
		JobId:        a.JobId,
		Title:        a.Title,
		Description:  a.Description,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
		TotalPoints:  a.TotalPoints(),
		Sections:     slice.Map(a.Sections, func(idx int, src domain.Section) Section { return newSection(src) }),
		Utime:        a.Utime,
	}
}

func newSection(s domain.Section) Section {
	return Section{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		Title:        s.Title,
		Description:  s.Description,
		Type:         s.Type.String(),
		OrderIdx:     s.OrderIdx,
		TimeLimit:    s.TimeLimit,
		Questions:    slice.Map(s.Questions, func(idx int, src domain.Question) Question { return newQuestion(src) }),
	}
}

func newQuestion(q domain.Question) Question {
	return Question{
		Id:        q.Id,
		SectionId: q.SectionId,
		Text:      q.Text,
		Type:      q.Type.String(),
		OrderIdx:  q.OrderIdx,
		Points:    q.Points,
		Options: slice.Map(q.Options, func(idx int, src domain.Option) Option {
			return Option{Text: src.Text, Correct: src.Correct}
		}),
		TestCases: slice.Map(q.TestCases, func(idx int, src domain.TestCase) TestCase {
			return TestCase{Input: src.Input, ExpectedOutput: src.ExpectedOutput}
		}),
	}
}

func (a Assessment) toDomain() domain.Assessment {
	return domain.Assessment{
		Id:           a.Id,
		JobId:        a.JobId,
		Title:        a.Title,
		Description:  a.Description,
		TimeLimit:    a.TimeLimit,
		PassingScore: a.PassingScore,
	}
}

func (s Section) toDomain() domain.Section {
	return domain.Section{
		Id:           s.Id,
		AssessmentId: s.AssessmentId,
		Title:        s.Title,
		Description:  s.Description,
		Type:         domain.QuestionType(s.Type),
		TimeLimit:    s.TimeLimit,
	}
}

func (q Question) toDomain() domain.Question {
	return domain.Question{
		Id:        q.Id,
		SectionId: q.SectionId,
		Text:      q.Text,
		Type:      domain.QuestionType(q.Type),
		Points:    q.Points,
		Options: slice.Map(q.Options, func(idx int, src Option) domain.Option {
			return domain.Option{Text: src.Text, Correct: src.Correct}
		}),
		TestCases: slice.Map(q.TestCases, func(idx int, src TestCase) domain.TestCase {
			return domain.TestCase{Input: src.Input, ExpectedOutput: src.ExpectedOutput}
		}),
	}
}

type SaveAssessmentReq struct {
	Assessment Assessment `json:"assessment"`
}

type SaveSectionReq struct {
	Section Section `json:"section"`
}

type SaveQuestionReq struct {
	Question Question `json:"question"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type JobIdReq struct {
	JobId int64 `json:"jobId"`
}

type ReorderReq struct {
	// 父节点，重排 section 的时候是测评 id，重排题目的时候是分区 id
	ParentId int64   `json:"parentId"`
	Ids      []int64 `json:"ids"`
}
