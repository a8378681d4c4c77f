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

import "github.com/ecodeclub/hirebook/internal/job/internal/domain"

type Job struct {
	Id           int64  `json:"id,omitempty"`
	CompanyId    int64  `json:"companyId,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Requirements string `json:"requirements"`
	Location     string `json:"location"`
	Type         string `json:"type"`
	Salary       string `json:"salary"`
	Status       string `json:"status"`
	Ctime        int64  `json:"ctime,omitempty"`
	Utime        int64  `json:"utime,omitempty"`
}

func newJob(j domain.Job) Job {
	return Job{
		Id:           j.Id,
		CompanyId:    j.CompanyId,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       j.Status.String(),
		Ctime:        j.Ctime,
		Utime:        j.Utime,
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Id:           j.Id,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       domain.Status(j.Status),
	}
}

type SaveReq struct {
	Job Job `json:"job"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type StatusReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

type CompanyListReq struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

type SearchReq struct {
	Keywords string `json:"keywords"`
	Offset   int    `json:"offset"`
	Limit    int    `json:"limit"`
}

type JobList struct {
	Total int64 `json:"total,omitempty"`
	Jobs  []Job `json:"jobs"`
}
