//go:build wireinject

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
package dashboard

import (
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/service"
	"github.com/ecodeclub/hirebook/internal/dashboard/internal/web"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission"
	"github.com/ecodeclub/hirebook/internal/user"
	"github.com/google/wire"
)

func InitModule(userModule *user.Module,
	jobModule *job.Module,
	submissionModule *submission.Module) *Module {
	wire.Build(
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*submission.Module), "Svc"),
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
