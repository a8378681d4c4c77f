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

package domain

import (
	"errors"
	"fmt"
	"strings"
)

type QuestionType string

const (
	TypeMCQ         QuestionType = "mcq"
	TypeCoding      QuestionType = "coding"
	TypeShortAnswer QuestionType = "short_answer"
	TypeLongAnswer  QuestionType = "long_answer"
	TypeVideo       QuestionType = "video"
	TypeFileUpload  QuestionType = "file_upload"
	TypeExcel       QuestionType = "excel"
)

func (t QuestionType) String() string {
	return string(t)
}

func (t QuestionType) Valid() bool {
	switch t {
	case TypeMCQ, TypeCoding, TypeShortAnswer, TypeLongAnswer,
		TypeVideo, TypeFileUpload, TypeExcel:
		return true
	default:
		return false
	}
}

// Assessment 一个职位只有一份测评
type Assessment struct {
	Id    int64
	JobId int64
	// 冗余职位所属的公司，方便做权限校验
	CompanyId   int64
	Title       string
	Description string
	// 分钟，0 表示不限时
	TimeLimit int
	// 百分比，0 表示没有及格线
	PassingScore int
	Sections     []Section
	Ctime        int64
	Utime        int64
}

func (a Assessment) OwnedBy(companyId int64) bool {
	return a.CompanyId == companyId
}

// Questions 按照 section 和 question 的顺序展开
func (a Assessment) Questions() []Question {
	var res []Question
	for _, s := range a.Sections {
		res = append(res, s.Questions...)
	}
	return res
}

func (a Assessment) FindQuestion(id int64) (Question, bool) {
	for _, s := range a.Sections {
		for _, q := range s.Questions {
			if q.Id == id {
				return q, true
			}
		}
	}
	return Question{}, false
}

// TotalPoints 所有题目的满分之和
func (a Assessment) TotalPoints() int {
	total := 0
	for _, q := range a.Questions() {
		total += q.Points
	}
	return total
}

// CandidateView 去掉了正确选项和测试用例的期望输出
func (a Assessment) CandidateView() Assessment {
	res := a
	res.Sections = make([]Section, len(a.Sections))
	for i, s := range a.Sections {
		s.Questions = make([]Question, len(a.Sections[i].Questions))
		for j, q := range a.Sections[i].Questions {
			s.Questions[j] = q.candidateView()
		}
		res.Sections[i] = s
	}
	return res
}

func (a Assessment) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return errors.New("标题不能为空")
	}
	if a.TimeLimit < 0 {
		return fmt.Errorf("时长不能为负数 %d", a.TimeLimit)
	}
	if a.PassingScore < 0 || a.PassingScore > 100 {
		return fmt.Errorf("及格线必须在 0 到 100 之间 %d", a.PassingScore)
	}
	return nil
}

type Section struct {
	Id           int64
	AssessmentId int64
	Title        string
	Description  string
	// 创建之后就不能修改，题目的类型和它保持一致
	Type QuestionType
	// 在测评里面的顺序，从 0 开始
	OrderIdx int
	// 分钟，0 表示不限时
	TimeLimit int
	Questions []Question
	Ctime     int64
	Utime     int64
}

func (s Section) Validate() error {
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("标题不能为空")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("未知的题型 %s", s.Type)
	}
	if s.TimeLimit < 0 {
		return fmt.Errorf("时长不能为负数 %d", s.TimeLimit)
	}
	return nil
}

type Question struct {
	Id           int64
	SectionId    int64
	AssessmentId int64
	Text         string
	Type         QuestionType
	OrderIdx     int
	// 这道题的满分
	Points    int
	Options   []Option
	TestCases []TestCase
	Ctime     int64
	Utime     int64
}

type Option struct {
	Text    string
	Correct bool
}

type TestCase struct {
	Input          string
	ExpectedOutput string
}

// CorrectAnswer 选择题的正确选项，其余题型返回空字符串
func (q Question) CorrectAnswer() string {
	for _, o := range q.Options {
		if o.Correct {
			return o.Text
		}
	}
	return ""
}

// HasOption 选择题的答案必须是其中一个选项
func (q Question) HasOption(text string) bool {
	for _, o := range q.Options {
		if o.Text == text {
			return true
		}
	}
	return false
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("题干不能为空")
	}
	if !q.Type.Valid() {
		return fmt.Errorf("未知的题型 %s", q.Type)
	}
	if q.Points <= 0 {
		return fmt.Errorf("分值必须是正数 %d", q.Points)
	}
	switch q.Type {
	case TypeMCQ:
		return q.validateOptions()
	case TypeCoding:
		for i, tc := range q.TestCases {
			if tc.ExpectedOutput == "" {
				return fmt.Errorf("第 %d 个测试用例缺少期望输出", i+1)
			}
		}
	default:
		if len(q.Options) > 0 || len(q.TestCases) > 0 {
			return fmt.Errorf("%s 类型的题目不能有选项或者测试用例", q.Type)
		}
	}
	return nil
}

func (q Question) validateOptions() error {
	if len(q.Options) < 2 {
		return errors.New("选择题至少需要两个选项")
	}
	seen := make(map[string]struct{}, len(q.Options))
	correct := 0
	for _, o := range q.Options {
		if strings.TrimSpace(o.Text) == "" {
			return errors.New("选项不能为空")
		}
		if _, ok := seen[o.Text]; ok {
			return fmt.Errorf("选项重复 %s", o.Text)
		}
		seen[o.Text] = struct{}{}
		if o.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("选择题必须有且只有一个正确选项，实际 %d 个", correct)
	}
	return nil
}

func (q Question) candidateView() Question {
	res := q
	if len(q.Options) > 0 {
		res.Options = make([]Option, len(q.Options))
		for i, o := range q.Options {
			res.Options[i] = Option{Text: o.Text}
		}
	}
	if len(q.TestCases) > 0 {
		res.TestCases = make([]TestCase, len(q.TestCases))
		for i, tc := range q.TestCases {
			res.TestCases[i] = TestCase{Input: tc.Input}
		}
	}
	return res
}
