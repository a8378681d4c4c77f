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

type Status string

const (
	StatusDraft  Status = "draft"
	StatusActive Status = "active"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed:
		return true
	default:
		return false
	}
}

type Job struct {
	Id int64
	// 发布职位的公司账号
	CompanyId    int64
	Title        string
	Description  string
	Requirements string
	Location     string
	// 全职、兼职、实习之类的，不做限制
	Type   string
	Salary string
	Status Status
	Ctime  int64
	Utime  int64
}

// Open 只有招聘中的职位才能开始测评
func (j Job) Open() bool {
	return j.Status == StatusActive
}

func (j Job) OwnedBy(companyId int64) bool {
	return j.CompanyId == companyId
}
