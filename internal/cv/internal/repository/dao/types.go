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

type CV struct {
	Id             int64                            `gorm:"primaryKey"`
	Uid            int64                            `gorm:"uniqueIndex"`
	FullName       string                           `gorm:"type:varchar(256)"`
	Email          string                           `gorm:"type:varchar(256)"`
	Phone          string                           `gorm:"type:varchar(64)"`
	Address        string                           `gorm:"type:varchar(512)"`
	Summary        string                           `gorm:"type:text"`
	Education      sqlx.JsonColumn[[]Education]     `gorm:"type:json"`
	Experience     sqlx.JsonColumn[[]Experience]    `gorm:"type:json"`
	Skills         sqlx.JsonColumn[[]string]        `gorm:"type:json"`
	Languages      sqlx.JsonColumn[[]Language]      `gorm:"type:json"`
	Certifications sqlx.JsonColumn[[]Certification] `gorm:"type:json"`
	Ctime          int64
	Utime          int64
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

type Language struct {
	Language string `json:"language"`
	Level    string `json:"level"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}
