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

import "github.com/ecodeclub/ekit/sqlx"

type Assessment struct {
	Id           int64  `gorm:"primaryKey"`
	JobId        int64  `gorm:"uniqueIndex"`
	CompanyId    int64  `gorm:"index"`
	Title        string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:text"`
	TimeLimit    int
	PassingScore int
	Ctime        int64
	Utime        int64
}

type Section struct {
	Id           int64  `gorm:"primaryKey"`
	AssessmentId int64  `gorm:"index:idx_assessment_order,priority:1"`
	Title        string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:text"`
	Type         string `gorm:"type:varchar(32)"`
	OrderIdx     int    `gorm:"index:idx_assessment_order,priority:2"`
	TimeLimit    int
	Ctime        int64
	Utime        int64
}

type Question struct {
	Id           int64  `gorm:"primaryKey"`
	SectionId    int64  `gorm:"index:idx_section_order,priority:1"`
	AssessmentId int64  `gorm:"index"`
	Text         string `gorm:"type:text"`
	Type         string `gorm:"type:varchar(32)"`
	OrderIdx     int    `gorm:"index:idx_section_order,priority:2"`
	Points       int
	Options      sqlx.JsonColumn[[]Option]   `gorm:"type:json"`
	TestCases    sqlx.JsonColumn[[]TestCase] `gorm:"type:json"`
	Ctime        int64
	Utime        int64
}

type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

type TestCase struct {
	Input          string `json:"input"`
	ExpectedOutput string `json:"expectedOutput"`
}
