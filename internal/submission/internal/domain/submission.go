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
	"math"
	"time"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusSubmitted  Status = "submitted"
	StatusReviewed   Status = "reviewed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusSubmitted, StatusReviewed:
		return true
	default:
		return false
	}
}

// Decision 公司给出的结论。没有记录结论的时候就是 pending
type Decision string

const (
	DecisionPending     Decision = "pending"
	DecisionAccepted    Decision = "accepted"
	DecisionRejected    Decision = "rejected"
	DecisionShortlisted Decision = "shortlisted"
)

func (d Decision) String() string {
	return string(d)
}

// Recordable 只有这三种结论可以被记录下来
func (d Decision) Recordable() bool {
	switch d {
	case DecisionAccepted, DecisionRejected, DecisionShortlisted:
		return true
	default:
		return false
	}
}

type Submission struct {
	Id           int64
	JobId        int64
	CompanyId    int64
	Uid          int64
	AssessmentId int64
	Status       Status
	StartedAt    int64
	// 0 表示还没有提交
	SubmittedAt int64
	// 还没有任何一道题被打分的时候都是 nil
	TotalScore *float64
	MaxScore   *float64
	// 空字符串表示还没有结论
	Decision     Decision
	CompanyNotes string
	// 自动评分已经跑过了
	AutoGraded bool
	Answers    []Answer
	Ctime      int64
	Utime      int64
}

func (s Submission) OwnedBy(uid int64) bool {
	return s.Uid == uid
}

func (s Submission) Editable() bool {
	return s.Status == StatusInProgress
}

// Scorable 提交之后才可以打分
func (s Submission) Scorable() bool {
	return s.Status == StatusSubmitted || s.Status == StatusReviewed
}

func (s Submission) EffectiveDecision() Decision {
	if s.Decision == "" {
		return DecisionPending
	}
	return s.Decision
}

// Percentage 只用于展示
func (s Submission) Percentage() (float64, bool) {
	if s.TotalScore == nil || s.MaxScore == nil || *s.MaxScore <= 0 {
		return 0, false
	}
	return Round(*s.TotalScore / *s.MaxScore * 100), true
}

// Passed passingScore 是百分比，0 表示没有及格线
func (s Submission) Passed(passingScore int) (bool, bool) {
	if passingScore <= 0 {
		return false, false
	}
	p, ok := s.Percentage()
	if !ok {
		return false, false
	}
	return p >= float64(passingScore), true
}

// Deadline timeLimit 是分钟，0 表示不限时，返回 0
func (s Submission) Deadline(timeLimit int) int64 {
	if timeLimit <= 0 {
		return 0
	}
	return s.StartedAt + (time.Duration(timeLimit) * time.Minute).Milliseconds()
}

func (s Submission) FindAnswer(qid int64) (Answer, bool) {
	for _, a := range s.Answers {
		if a.QuestionId == qid {
			return a, true
		}
	}
	return Answer{}, false
}

type Answer struct {
	Id           int64
	SubmissionId int64
	QuestionId   int64
	// 选择题的选项，简答题和论述题的回答
	Text     string
	Code     string
	Language string
	FileURL  string
	VideoURL string

	Score            *float64
	MaxScore         *float64
	IsCorrect        *bool
	IsManuallyScored bool
	Ctime            int64
	Utime            int64
}

func (a Answer) Scored() bool {
	return a.Score != nil
}

// Round 保留两位小数
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
