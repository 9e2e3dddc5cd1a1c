package ioc

import (
	"context"
	"net/http"
	"time"

	"github.com/ecodeclub/jobportal/internal/application"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type HealthHandler struct {
	db  *egorm.Component
	svc application.Service
}

func NewHealthHandler(db *egorm.Component, appModule *application.Module) *HealthHandler {
	return &HealthHandler{db: db, svc: appModule.Svc}
}

func (h *HealthHandler) PublicRoutes(server *gin.Engine) {
	server.GET("/health", h.Health)
}

func (h *HealthHandler) Health(ctx *gin.Context) {
	c, cancel := context.WithTimeout(ctx.Request.Context(), 3*time.Second)
	defer cancel()
	cnt, err := h.check(c)
	if err != nil {
		elog.DefaultLogger.Error("健康检查失败", elog.FieldErr(err))
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Database connection failed",
			"error":   err.Error(),
		})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status":             "ok",
		"message":            "Backend is running",
		"database":           "connected",
		"applications_count": cnt,
	})
}

func (h *HealthHandler) check(ctx context.Context) (int64, error) {
	sqlDB, err := h.db.DB()
	if err != nil {
		return 0, err
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return 0, err
	}
	return h.svc.Count(ctx)
}
