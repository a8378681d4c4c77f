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

package submission

import (
	"context"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission/internal/event"
	subjob "github.com/ecodeclub/hirebook/internal/submission/internal/job"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository/cache"
	"github.com/ecodeclub/hirebook/internal/submission/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service"
	"github.com/ecodeclub/hirebook/internal/submission/internal/service/grader"
	"github.com/ecodeclub/hirebook/internal/submission/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	initSubmissionDAO,
	cache.NewIdempotencyECache,
	repository.NewSubmissionRepository,
	initGrader,
	initProducer,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	jobModule *job.Module,
	assessmentModule *assessment.Module) *Module {
	wire.Build(ProviderSet,
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*assessment.Module), "Svc"),
		initAutoGradeConsumer,
		initAutoGradeJob,
		wire.Struct(new(Module), "*"))
	return new(Module)
}

func initSubmissionDAO(db *egorm.Component) dao.SubmissionDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMSubmissionDAO(db)
}

// initGrader 没有配置判题服务的时候，编程题只能人工评分
func initGrader() *grader.Grader {
	var cfg grader.JudgeConfig
	err := econf.UnmarshalKey("judge", &cfg)
	if err != nil {
		panic(err)
	}
	if cfg.Endpoint == "" {
		return grader.NewGrader(nil)
	}
	return grader.NewGrader(grader.NewHTTPJudge(cfg))
}

func initProducer(q mq.MQ) event.SubmissionEventProducer {
	p, err := event.NewSubmissionEventProducer(q)
	if err != nil {
		panic(err)
	}
	return p
}

func initAutoGradeConsumer(svc service.Service, q mq.MQ) *event.AutoGradeConsumer {
	c, err := event.NewAutoGradeConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}

func initAutoGradeJob(svc service.Service) *subjob.AutoGradeJob {
	type Config struct {
		Delay time.Duration `yaml:"delay"`
		Limit int           `yaml:"limit"`
	}
	cfg := Config{Delay: time.Minute, Limit: 100}
	err := econf.UnmarshalKey("cron.autograde", &cfg)
	if err != nil {
		panic(err)
	}
	return subjob.NewAutoGradeJob(svc, cfg.Delay, cfg.Limit)
}
