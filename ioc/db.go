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
package ioc

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/hirebook/internal/pkg/database"
	"github.com/ecodeclub/hirebook/internal/pkg/snowflake"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

func InitDB() *egorm.Component {
	WaitForDBSetup(econf.GetString("mysql.dsn"))
	db := egorm.Load("mysql").Build()
	if err := InitDBPlugins(db); err != nil {
		panic(err)
	}
	return db
}

// InitDBPlugins 链路追踪以及主键生成
func InitDBPlugins(db *egorm.Component) error {
	err := database.NewGormTracingPlugin().Initialize(db)
	if err != nil {
		return err
	}
	gen, err := snowflake.NewNodeGenerator(uint(econf.GetInt("snowflake.node")))
	if err != nil {
		return err
	}
	return db.Use(snowflake.NewIDPlugin(gen, map[string]snowflake.Biz{
		"users":       snowflake.BizUser,
		"jobs":        snowflake.BizJob,
		"assessments": snowflake.BizAssessment,
		"sections":    snowflake.BizAssessment,
		"questions":   snowflake.BizAssessment,
		"submissions": snowflake.BizSubmission,
		"answers":     snowflake.BizSubmission,
		"cvs":         snowflake.BizCV,
	}))
}

func WaitForDBSetup(dsn string) {
	sqlDB, err := sql.Open("mysql", dsn)
	if err != nil {
		panic(err)
	}
	const maxInterval = 10 * time.Second
	const maxRetries = 10
	strategy, err := retry.NewExponentialBackoffRetryStrategy(time.Second, maxInterval, maxRetries)
	if err != nil {
		panic(err)
	}

	const timeout = 5 * time.Second
	for {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		err = sqlDB.PingContext(ctx)
		cancel()
		if err == nil {
			break
		}
		next, ok := strategy.Next()
		if !ok {
			panic("WaitForDBSetup 重试失败......")
		}
		time.Sleep(next)
	}
}
