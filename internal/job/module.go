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

package job

import (
	"github.com/ecodeclub/hirebook/internal/job/internal/domain"
	"github.com/ecodeclub/hirebook/internal/job/internal/event"
	"github.com/ecodeclub/hirebook/internal/job/internal/service"
	"github.com/ecodeclub/hirebook/internal/job/internal/web"
)

//go:generate mockgen -source=./internal/service/job.go -package=jobmocks -destination=./mocks/job.mock.go Service

type Module struct {
	Svc          Service
	Hdl          *Handler
	SyncConsumer *SyncConsumer
}

type Service = service.Service
type Handler = web.Handler
type SyncConsumer = event.SyncConsumer
type Job = domain.Job
type Status = domain.Status

const (
	StatusDraft  = domain.StatusDraft
	StatusActive = domain.StatusActive
	StatusClosed = domain.StatusClosed
)

var ErrJobNotFound = service.ErrJobNotFound
