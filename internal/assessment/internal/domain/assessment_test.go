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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_Validate(t *testing.T) {
	testCases := []struct {
		name    string
		q       Question
		wantErr bool
	}{
		{
			name: "合法的选择题",
			q: Question{Text: "React 组件之间怎么传值", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "props", Correct: true}, {Text: "state"}}},
		},
		{
			name: "选择题只有一个选项",
			q: Question{Text: "q", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "props", Correct: true}}},
			wantErr: true,
		},
		{
			name: "选择题没有正确选项",
			q: Question{Text: "q", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "a"}, {Text: "b"}}},
			wantErr: true,
		},
		{
			name: "选择题两个正确选项",
			q: Question{Text: "q", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "a", Correct: true}, {Text: "b", Correct: true}}},
			wantErr: true,
		},
		{
			name: "选项重复",
			q: Question{Text: "q", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "a", Correct: true}, {Text: "a"}}},
			wantErr: true,
		},
		{
			name: "空选项",
			q: Question{Text: "q", Type: TypeMCQ, Points: 10,
				Options: []Option{{Text: "a", Correct: true}, {Text: " "}}},
			wantErr: true,
		},
		{
			name:    "分值为 0",
			q:       Question{Text: "q", Type: TypeShortAnswer},
			wantErr: true,
		},
		{
			name: "编程题没有测试用例",
			q:    Question{Text: "q", Type: TypeCoding, Points: 25},
		},
		{
			name: "测试用例缺少期望输出",
			q: Question{Text: "q", Type: TypeCoding, Points: 25,
				TestCases: []TestCase{{Input: "1 2", ExpectedOutput: "3"}, {Input: "2 2"}}},
			wantErr: true,
		},
		{
			name: "简答题带了选项",
			q: Question{Text: "q", Type: TypeLongAnswer, Points: 5,
				Options: []Option{{Text: "a", Correct: true}, {Text: "b"}}},
			wantErr: true,
		},
		{
			name:    "未知题型",
			q:       Question{Text: "q", Type: "essay", Points: 5},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.q.Validate()
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestAssessment_CandidateView(t *testing.T) {
	a := Assessment{
		Id: 1,
		Sections: []Section{
			{
				Id:   2,
				Type: TypeMCQ,
				Questions: []Question{
					{Id: 3, Type: TypeMCQ, Points: 10,
						Options: []Option{{Text: "props", Correct: true}, {Text: "state"}}},
				},
			},
			{
				Id:   4,
				Type: TypeCoding,
				Questions: []Question{
					{Id: 5, Type: TypeCoding, Points: 25,
						TestCases: []TestCase{{Input: "1 2", ExpectedOutput: "3"}}},
				},
			},
		},
	}
	view := a.CandidateView()
	assert.Equal(t, []Option{{Text: "props"}, {Text: "state"}}, view.Sections[0].Questions[0].Options)
	assert.Equal(t, []TestCase{{Input: "1 2"}}, view.Sections[1].Questions[0].TestCases)
	// 原始数据不受影响
	assert.Equal(t, "props", a.Sections[0].Questions[0].CorrectAnswer())
	assert.Equal(t, "3", a.Sections[1].Questions[0].TestCases[0].ExpectedOutput)
	assert.Equal(t, 35, view.TotalPoints())

	q, ok := a.FindQuestion(5)
	assert.True(t, ok)
	assert.Equal(t, TypeCoding, q.Type)
	_, ok = a.FindQuestion(6)
	assert.False(t, ok)
}
