package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
	"github.com/gin-gonic/gin"
)

// AdminHandler 管理后台接口，需要在登录校验之后注册
type AdminHandler struct {
	svc service.JobService
}

func NewAdminHandler(svc service.JobService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/admin/jobs")
	g.POST("", ginx.B[JobReq](h.Create))
	g.PUT("/:id", ginx.B[JobReq](h.Update))
	g.DELETE("/:id", ginx.W(h.Delete))
	g.PATCH("/:id/toggle-status", ginx.W(h.ToggleStatus))
}

func (h *AdminHandler) Create(ctx *ginx.Context, req JobReq) (ginx.Result, error) {
	job, err := h.svc.Create(ctx, req.toDomain(0))
	if err != nil {
		return handleErr(ctx, err)
	}
	return respond(ctx, http.StatusCreated, ginx.Result{
		Data: newJobVO(job),
	})
}

func (h *AdminHandler) Update(ctx *ginx.Context, req JobReq) (ginx.Result, error) {
	id, ok := pathID(ctx)
	if !ok {
		return respond(ctx, http.StatusBadRequest, invalidIDResult)
	}
	job, err := h.svc.Update(ctx, req.toDomain(id))
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newJobVO(job),
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := pathID(ctx)
	if !ok {
		return respond(ctx, http.StatusBadRequest, invalidIDResult)
	}
	if err := h.svc.Delete(ctx, id); err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{Msg: "Job deleted successfully"}, nil
}

func (h *AdminHandler) ToggleStatus(ctx *ginx.Context) (ginx.Result, error) {
	id, ok := pathID(ctx)
	if !ok {
		return respond(ctx, http.StatusBadRequest, invalidIDResult)
	}
	job, err := h.svc.ToggleStatus(ctx, id)
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Data: newJobVO(job),
	}, nil
}
