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

package errs

var (
	SystemError         = ErrorCode{Code: 503001, Msg: "系统错误"}
	InvalidInput        = ErrorCode{Code: 503400, Msg: "测评信息不合法"}
	Forbidden           = ErrorCode{Code: 503403, Msg: "无权操作该测评"}
	AssessmentNotFound  = ErrorCode{Code: 503404, Msg: "测评不存在"}
	SectionNotFound     = ErrorCode{Code: 503414, Msg: "测评分区不存在"}
	QuestionNotFound    = ErrorCode{Code: 503424, Msg: "题目不存在"}
	JobNotFound         = ErrorCode{Code: 503434, Msg: "职位不存在"}
	DuplicateAssessment = ErrorCode{Code: 503409, Msg: "该职位已经有测评了"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
