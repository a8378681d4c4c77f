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

package event

import "github.com/ecodeclub/hirebook/internal/job/internal/domain"

const JobEventTopic = "job_events"

const (
	ActionSaved   = "saved"
	ActionDeleted = "deleted"
)

// JobEvent 职位变更。删除的时候 Job 里面只有 Id 和 CompanyId 是可靠的
type JobEvent struct {
	Action string `json:"action"`
	Job    Job    `json:"job"`
}

type Job struct {
	Id           int64  `json:"id"`
	CompanyId    int64  `json:"companyId"`
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

func NewJobEvent(action string, j domain.Job) JobEvent {
	return JobEvent{
		Action: action,
		Job: Job{
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
		},
	}
}

func (j Job) toDomain() domain.Job {
	return domain.Job{
		Id:           j.Id,
		CompanyId:    j.CompanyId,
		Title:        j.Title,
		Description:  j.Description,
		Requirements: j.Requirements,
		Location:     j.Location,
		Type:         j.Type,
		Salary:       j.Salary,
		Status:       domain.Status(j.Status),
		Ctime:        j.Ctime,
		Utime:        j.Utime,
	}
}
