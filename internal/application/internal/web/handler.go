package web

import (
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/ecodeclub/jobportal/internal/application/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Handler 求职者投递，不需要登录
type Handler struct {
	svc service.ApplicationService
}

func NewHandler(svc service.ApplicationService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	server.POST("/apply", ginx.B[SubmitReq](h.Submit))
}

func (h *Handler) Submit(ctx *ginx.Context, req SubmitReq) (ginx.Result, error) {
	var resume domain.Resume
	if req.Resume != nil {
		f, err := req.Resume.Open()
		if err != nil {
			return systemErrorResult, errors.Wrap(err, "读取简历失败")
		}
		defer f.Close()
		resume = domain.Resume{
			Filename: req.Resume.Filename,
			Size:     req.Resume.Size,
			Content:  f,
		}
	}
	app, err := h.svc.Submit(ctx, req.toDomain(), resume)
	if err != nil {
		return handleErr(ctx, err)
	}
	return respond(ctx, http.StatusCreated, ginx.Result{
		Msg:  "Application submitted successfully",
		Data: newApplicationVO(app),
	})
}
