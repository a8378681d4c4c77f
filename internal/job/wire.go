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

package job

import (
	"context"

	"github.com/ecodeclub/hirebook/internal/job/internal/event"
	"github.com/ecodeclub/hirebook/internal/job/internal/repository"
	"github.com/ecodeclub/hirebook/internal/job/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/job/internal/service"
	"github.com/ecodeclub/hirebook/internal/job/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/olivere/elastic/v7"
)

var ProviderSet = wire.NewSet(
	initJobDAO,
	initSearchDAO,
	repository.NewJobRepository,
	repository.NewSearchRepository,
	event.NewJobEventProducer,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component, q mq.MQ, es *elastic.Client) (*Module, error) {
	wire.Build(ProviderSet,
		initSyncConsumer,
		wire.Struct(new(Module), "*"))
	return new(Module), nil
}

func initJobDAO(db *egorm.Component) dao.JobDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMJobDAO(db)
}

func initSearchDAO(es *elastic.Client) dao.JobSearchDAO {
	err := dao.InitES(es)
	if err != nil {
		panic(err)
	}
	return dao.NewJobElasticDAO(es)
}

func initSyncConsumer(repo repository.SearchRepository, q mq.MQ) *event.SyncConsumer {
	c, err := event.NewSyncConsumer(repo, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
