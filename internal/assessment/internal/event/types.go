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

const jobEventTopic = "job_events"

const actionDeleted = "deleted"

// JobEvent 只关心职位删除
type JobEvent struct {
	Action string `json:"action"`
	Job    Job    `json:"job"`
}

type Job struct {
	Id int64 `json:"id"`
}
