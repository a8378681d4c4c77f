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

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/domain"
)

type CandidateDashboard struct {
	InProgress int64         `json:"inProgress"`
	Submitted  int64         `json:"submitted"`
	Reviewed   int64         `json:"reviewed"`
	Recent     []Application `json:"recent"`
}

type Application struct {
	SubmissionId int64  `json:"submissionId"`
	JobId        int64  `json:"jobId"`
	JobTitle     string `json:"jobTitle"`
	Status       string `json:"status"`
	Decision     string `json:"decision"`
	SubmittedAt  int64  `json:"submittedAt,omitempty"`
	Utime        int64  `json:"utime"`
}

func newCandidateDashboard(d domain.CandidateDashboard) CandidateDashboard {
	return CandidateDashboard{
		InProgress: d.InProgress,
		Submitted:  d.Submitted,
		Reviewed:   d.Reviewed,
		Recent: slice.Map(d.Recent, func(idx int, src domain.Application) Application {
			return Application(src)
		}),
	}
}

type CompanyDashboard struct {
	Jobs             map[string]int64 `json:"jobs"`
	TotalSubmissions int64            `json:"totalSubmissions"`
	PendingReviews   int64            `json:"pendingReviews"`
}

type AdminDashboard struct {
	Users       map[string]int64 `json:"users"`
	TotalJobs   int64            `json:"totalJobs"`
	ActiveJobs  int64            `json:"activeJobs"`
	Submissions map[string]int64 `json:"submissions"`
}
