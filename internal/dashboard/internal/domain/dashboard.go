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

// CandidateDashboard 候选人首页
type CandidateDashboard struct {
	InProgress int64
	Submitted  int64
	Reviewed   int64
	// 最近的申请，按照更新时间倒序
	Recent []Application
}

type Application struct {
	SubmissionId int64
	JobId        int64
	// 职位被删除之后就是空字符串
	JobTitle    string
	Status      string
	Decision    string
	SubmittedAt int64
	Utime       int64
}

type CompanyDashboard struct {
	// 职位状态 => 数量
	Jobs             map[string]int64
	TotalSubmissions int64
	// 已经提交但是还没有给出结论的
	PendingReviews int64
}

type AdminDashboard struct {
	// 角色 => 数量
	Users       map[string]int64
	TotalJobs   int64
	ActiveJobs  int64
	Submissions map[string]int64
}

// Sum 把各个状态的数量加起来
func Sum(counts map[string]int64) int64 {
	var total int64
	for _, cnt := range counts {
		total += cnt
	}
	return total
}
