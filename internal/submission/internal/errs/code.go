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
	SystemError          = ErrorCode{Code: 504001, Msg: "系统错误"}
	InvalidInput         = ErrorCode{Code: 504400, Msg: "输入不合法"}
	InvalidAnswer        = ErrorCode{Code: 504401, Msg: "答案不合法"}
	IncompleteSubmission = ErrorCode{Code: 504402, Msg: "还有题目没有作答"}
	Forbidden            = ErrorCode{Code: 504403, Msg: "无权访问该答卷"}
	SubmissionNotFound   = ErrorCode{Code: 504404, Msg: "答卷不存在"}
	JobNotFound          = ErrorCode{Code: 504414, Msg: "职位不存在"}
	AssessmentNotFound   = ErrorCode{Code: 504424, Msg: "该职位没有测评"}
	QuestionNotFound     = ErrorCode{Code: 504434, Msg: "题目不存在"}
	AlreadySubmitted     = ErrorCode{Code: 504409, Msg: "答卷已经提交"}
	JobNotOpen           = ErrorCode{Code: 504410, Msg: "职位已经停止招聘"}
	StateViolation       = ErrorCode{Code: 504419, Msg: "答卷当前状态不允许该操作"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
