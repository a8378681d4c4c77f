//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/hirebook/internal/assessment"
	"github.com/ecodeclub/hirebook/internal/cv"
	"github.com/ecodeclub/hirebook/internal/dashboard"
	"github.com/ecodeclub/hirebook/internal/job"
	"github.com/ecodeclub/hirebook/internal/media"
	"github.com/ecodeclub/hirebook/internal/submission"
	"github.com/ecodeclub/hirebook/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitES)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		job.InitModule,
		assessment.InitModule,
		submission.InitModule,
		cv.InitModule,
		media.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*job.Module), "Hdl"),
		wire.FieldsOf(new(*assessment.Module), "Hdl"),
		wire.FieldsOf(new(*submission.Module), "Hdl", "AutoGradeJob"),
		wire.FieldsOf(new(*cv.Module), "Hdl"),
		wire.FieldsOf(new(*media.Module), "Hdl"),
		wire.FieldsOf(new(*dashboard.Module), "Hdl", "AdminHdl"),
		InitSession,
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
