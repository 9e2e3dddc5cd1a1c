package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// Handler 求职者可以访问的接口，不需要登录
type Handler struct {
	svc service.JobService
}

func NewHandler(svc service.JobService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.GET("", ginx.B[ListReq](h.List))
	g.GET("/:id", ginx.W(h.Detail))
}

func (h *Handler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	jobs, err := h.svc.List(ctx, domain.Filter{
		Type:       req.Type,
		Experience: req.Experience,
		Status:     req.Status,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newJobVOs(jobs),
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := pathID(ctx)
	if !ok {
		return respond(ctx, http.StatusBadRequest, invalidIDResult)
	}
	job, err := h.svc.Detail(ctx, id)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newJobVO(job),
	}, nil
}
