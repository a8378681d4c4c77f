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

package dao

import "database/sql"

type Submission struct {
	Id           int64  `gorm:"primaryKey"`
	Uid          int64  `gorm:"uniqueIndex:uniq_uid_assessment;index:idx_uid_utime,priority:1"`
	AssessmentId int64  `gorm:"uniqueIndex:uniq_uid_assessment"`
	JobId        int64  `gorm:"index"`
	CompanyId    int64  `gorm:"index:idx_company_status,priority:1"`
	Status       string `gorm:"type:varchar(32);index:idx_company_status,priority:2"`
	StartedAt    int64
	SubmittedAt  int64
	TotalScore   sql.NullFloat64
	MaxScore     sql.NullFloat64
	Decision     string `gorm:"type:varchar(32)"`
	CompanyNotes string `gorm:"type:text"`
	AutoGraded   bool
	Ctime        int64
	Utime        int64 `gorm:"index:idx_uid_utime,priority:2"`
}

type Answer struct {
	Id               int64  `gorm:"primaryKey"`
	SubmissionId     int64  `gorm:"uniqueIndex:uniq_submission_question"`
	QuestionId       int64  `gorm:"uniqueIndex:uniq_submission_question"`
	Text             string `gorm:"type:text"`
	Code             string `gorm:"type:mediumtext"`
	Language         string `gorm:"type:varchar(32)"`
	FileURL          string `gorm:"type:varchar(1024)"`
	VideoURL         string `gorm:"type:varchar(1024)"`
	Score            sql.NullFloat64
	MaxScore         sql.NullFloat64
	IsCorrect        sql.NullBool
	IsManuallyScored bool
	Ctime            int64
	Utime            int64
}

// AnswerScore 一道题的评分结果
type AnswerScore struct {
	QuestionId int64
	Score      float64
	MaxScore   float64
	IsCorrect  bool
	Manual     bool
}

// ScoreUpdate 一次评分，在同一个事务里面写答案并且重新计算总分
type ScoreUpdate struct {
	SubmissionId int64
	Scores       []AnswerScore
	// 自动评分不能覆盖人工评分
	SkipManual bool
	// 标记为自动评分已经完成
	MarkAutoGraded bool
}
