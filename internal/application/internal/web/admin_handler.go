package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/ecodeclub/jobportal/internal/application/internal/service"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AdminHandler struct {
	svc     service.ApplicationService
	nowFunc func() time.Time
}

func NewAdminHandler(svc service.ApplicationService) *AdminHandler {
	return &AdminHandler{
		svc:     svc,
		nowFunc: time.Now,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	server.GET("/admin/applications", ginx.B[ListReq](h.List))
	server.GET("/admin/statistics", ginx.W(h.Statistics))
	server.PUT("/admin/application/:id/status", ginx.B[StatusReq](h.UpdateStatus))
	server.DELETE("/admin/application/:id", ginx.W(h.Delete))
	server.GET("/admin/download-excel", ginx.W(h.DownloadExcel))
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	apps, err := h.svc.List(ctx, domain.Filter{
		Position: req.Position,
		Status:   req.Status,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newApplicationVOs(apps),
	}, nil
}

func (h *AdminHandler) Statistics(ctx *ginx.Context) (ginx.Result, error) {
	stats, err := h.svc.Statistics(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStatisticsVO(stats),
	}, nil
}

func (h *AdminHandler) UpdateStatus(ctx *ginx.Context, req StatusReq) (ginx.Result, error) {
	id, ok := pathID(ctx)
	if !ok {
		return respond(ctx, http.StatusBadRequest, invalidIDResult)
	}
	app, err := h.svc.UpdateStatus(ctx, id, domain.Status(req.Status))
	if err != nil {
		return handleErr(ctx, err)
	}
	return ginx.Result{
		Msg:  "Status updated successfully",
		Data: newApplicationVO(app),
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
	return ginx.Result{Msg: "Application deleted successfully"}, nil
}

func (h *AdminHandler) DownloadExcel(ctx *ginx.Context) (ginx.Result, error) {
	position := ctx.Context.Query("position")
	data, err := h.svc.Export(ctx, position)
	if err != nil {
		return handleErr(ctx, err)
	}
	label := domain.Filter{Position: position}.Normalize().Position
	if label == "" {
		label = "all"
	}
	filename := fmt.Sprintf("applications_%s_%s.xlsx", label, h.nowFunc().Format("20060102_150405"))
	ctx.Context.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	ctx.Context.Data(http.StatusOK, xlsxContentType, data)
	return ginx.Result{}, ginx.ErrNoResponse
}
