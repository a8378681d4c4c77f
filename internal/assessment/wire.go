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

package assessment

import (
	"context"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/event"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/service"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/web"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	initAssessmentDAO,
	cache.NewAssessmentECache,
	repository.NewCachedAssessmentRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, jobModule *job.Module) *Module {
	wire.Build(ProviderSet,
		wire.FieldsOf(new(*job.Module), "Svc"),
		initJobDeletedConsumer,
		wire.Struct(new(Module), "*"))
	return new(Module)
}

func initAssessmentDAO(db *egorm.Component) dao.AssessmentDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMAssessmentDAO(db)
}

func initJobDeletedConsumer(svc service.Service, q mq.MQ) *event.JobDeletedConsumer {
	c, err := event.NewJobDeletedConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
