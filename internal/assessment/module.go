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

package assessment

import (
	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/event"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/service"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/web"
)

//go:generate mockgen -source=./internal/service/assessment.go -package=assessmentmocks -destination=./mocks/assessment.mock.go Service

type Module struct {
	Svc                Service
	Hdl                *Handler
	JobDeletedConsumer *JobDeletedConsumer
}

type Service = service.Service
type Handler = web.Handler
type JobDeletedConsumer = event.JobDeletedConsumer

type Assessment = domain.Assessment
type Section = domain.Section
type Question = domain.Question
type QuestionType = domain.QuestionType
type Option = domain.Option
type TestCase = domain.TestCase

const (
	TypeMCQ         = domain.TypeMCQ
	TypeCoding      = domain.TypeCoding
	TypeShortAnswer = domain.TypeShortAnswer
	TypeLongAnswer  = domain.TypeLongAnswer
	TypeVideo       = domain.TypeVideo
	TypeFileUpload  = domain.TypeFileUpload
	TypeExcel       = domain.TypeExcel
)

var ErrAssessmentNotFound = service.ErrAssessmentNotFound
