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

package submission

import (
	"github.com/ecodeclub/hirebook/internal/submission/internal/domain"
	"github.com/ecodeclub/hirebook/internal/submission/internal/event"
	"github.com/ecodeclub/hirebook/internal/submission/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service"
	"github.com/ecodeclub/hirebook/internal/submission/internal/web"
)

//go:generate mockgen -source=./internal/service/submission.go -package=submissionmocks -destination=./mocks/submission.mock.go Service

type Module struct {
	Svc               Service
	Hdl               *Handler
	AutoGradeConsumer *AutoGradeConsumer
	AutoGradeJob      *AutoGradeJob
}

type Service = service.Service
type Handler = web.Handler
type AutoGradeConsumer = event.AutoGradeConsumer
type AutoGradeJob = job.AutoGradeJob

type Submission = domain.Submission
type Answer = domain.Answer
type Status = domain.Status
type Decision = domain.Decision

const (
	StatusInProgress = domain.StatusInProgress
	StatusSubmitted  = domain.StatusSubmitted
	StatusReviewed   = domain.StatusReviewed
)
