package admin

import (
	"time"

	"github.com/ecodeclub/jobportal/internal/admin/internal/service"
	"github.com/ecodeclub/jobportal/internal/admin/internal/web"
)

type (
	Handler = web.Handler
	Service = service.AuthService
)

// Config 管理员账号，只有一个
type Config struct {
	Username    string        `yaml:"username"`
	Password    string        `yaml:"password"`
	TokenKey    string        `yaml:"tokenKey"`
	TokenExpire time.Duration `yaml:"tokenExpire"`
}

type Module struct {
	Hdl *Handler
	Svc Service
}
