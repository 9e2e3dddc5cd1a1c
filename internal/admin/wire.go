//go:build wireinject

package admin

import (
	"github.com/ecodeclub/jobportal/internal/admin/internal/service"
	"github.com/ecodeclub/jobportal/internal/admin/internal/web"
	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/google/wire"
)

func InitModule(generator token.Generator, cfg Config) *Module {
	wire.Build(initService, web.NewHandler, wire.Struct(new(Module), "*"))
	return new(Module)
}

func initService(generator token.Generator, cfg Config) service.AuthService {
	return service.NewAuthService(cfg.Username, cfg.Password, generator, cfg.TokenExpire)
}
