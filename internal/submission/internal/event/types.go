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

const SubmissionEventTopic = "submission_events"

const (
	ActionSubmitted = "submitted"
	ActionReviewed  = "reviewed"
)

type SubmissionEvent struct {
	Action       string `json:"action"`
	SubmissionId int64  `json:"submissionId"`
	Uid          int64  `json:"uid"`
	JobId        int64  `json:"jobId"`
	CompanyId    int64  `json:"companyId"`
	// 只有 reviewed 事件有
	Decision string `json:"decision,omitempty"`
}
