//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/jobportal/internal/admin"
	"github.com/ecodeclub/jobportal/internal/application"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitAdminConfig,
		InitResumeConfig,
		InitJWTToken,
		wire.Bind(new(token.Generator), new(*token.JWTToken)),
		wire.Bind(new(token.Verifier), new(*token.JWTToken)),
		job.InitModule,
		application.InitModule,
		admin.InitModule,
		NewHealthHandler,
		initCronJobs,
		initGinxServer)
	return new(App), nil
}
