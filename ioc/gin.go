package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/config"
	"github.com/ecodeclub/jobportal/internal/admin"
	"github.com/ecodeclub/jobportal/internal/application"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/internal/pkg/middleware"
	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func initGinxServer(verifier token.Verifier,
	health *HealthHandler,
	jobModule *job.Module,
	appModule *application.Module,
	adminModule *admin.Module,
) *egin.Component {
	var corsCfg config.CORSConfig
	if err := econf.UnmarshalKey("cors", &corsCfg); err != nil {
		panic(err)
	}
	res := egin.Load("web").Build()
	// ginx.Context 直接当 context.Context 用，需要能取到 Request.Context 里的值
	res.ContextWithFallback = true
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return slice.Contains(corsCfg.AllowOrigins, origin)
		},
	}))
	res.Use(middleware.NewMetricsBuilder(prometheus.DefaultRegisterer).Build())
	res.GET("/metrics", gin.WrapH(promhttp.Handler()))

	health.PublicRoutes(res.Engine)
	jobModule.Hdl.PublicRoutes(res.Engine)
	appModule.Hdl.PublicRoutes(res.Engine)

	// 登录校验，只拦截 /admin 下的接口
	checkLogin := middleware.NewCheckLoginBuilder(verifier).
		IgnorePaths("/admin/login").Build()
	res.Use(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/admin/") {
			checkLogin(ctx)
		}
	})
	adminModule.Hdl.PrivateRoutes(res.Engine)
	jobModule.AdminHdl.PrivateRoutes(res.Engine)
	appModule.AdminHdl.PrivateRoutes(res.Engine)
	return res
}
