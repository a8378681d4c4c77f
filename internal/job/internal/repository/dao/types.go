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

type Job struct {
	Id           int64  `gorm:"primaryKey,autoIncrement"`
	CompanyId    int64  `gorm:"index"`
	Title        string `gorm:"type:varchar(256)"`
	Description  string `gorm:"type:text"`
	Requirements string `gorm:"type:text"`
	Location     string `gorm:"type:varchar(256)"`
	Type         string `gorm:"type:varchar(64)"`
	Salary       string `gorm:"type:varchar(128)"`
	Status       string `gorm:"type:varchar(16);index"`
	Ctime        int64
	Utime        int64
}

// JobDoc 索引里面的职位
type JobDoc struct {
	Id           int64  `json:"id"`
	CompanyId    int64  `json:"company_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	Status       string `json:"status"`
	Ctime        int64  `json:"ctime"`
	Utime        int64  `json:"utime"`
}
