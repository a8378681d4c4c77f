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

package cv

import (
	"time"

	"github.com/ecodeclub/hirebook/internal/cv/internal/repository"
	"github.com/ecodeclub/hirebook/internal/cv/internal/repository/dao"
	"github.com/ecodeclub/hirebook/internal/cv/internal/service"
	"github.com/ecodeclub/hirebook/internal/cv/internal/web"
	"github.com/ecodeclub/hirebook/internal/pkg/pdf"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/gotomicro/ego/core/econf"
)

var ProviderSet = wire.NewSet(
	initCVDAO,
	initConverter,
	repository.NewCVRepository,
	service.NewService,
	web.NewHandler,
)

func InitModule(db *egorm.Component) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

func initCVDAO(db *egorm.Component) dao.CVDAO {
	err := dao.InitTables(db)
	if err != nil {
		panic(err)
	}
	return dao.NewGORMCVDAO(db)
}

// initConverter 没有配置 remoteURL 的时候在本机启动 chrome
func initConverter() pdf.Converter {
	type Config struct {
		RemoteURL string        `yaml:"remoteURL"`
		Timeout   time.Duration `yaml:"timeout"`
	}
	var cfg Config
	err := econf.UnmarshalKey("pdf", &cfg)
	if err != nil {
		panic(err)
	}
	return pdf.NewChromeDPConverter(cfg.RemoteURL, cfg.Timeout)
}
