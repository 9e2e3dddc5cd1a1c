package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/application/internal/errs"
	"github.com/ecodeclub/jobportal/internal/application/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidIDResult = ginx.Result{
		Code: errs.InvalidApplication.Code,
		Msg:  "Invalid application id",
	}
)

// respond 自己写入非 200 的响应，ginx 不会再写
func respond(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.Context.AbortWithStatusJSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}

// handleErr 业务错误转换成 4xx，其余的交给 ginx 返回 500
func handleErr(ctx *ginx.Context, err error) (ginx.Result, error) {
	var invalid service.InvalidApplicationError
	switch {
	case errors.As(err, &invalid):
		return respond(ctx, http.StatusBadRequest, ginx.Result{
			Code: errs.InvalidApplication.Code,
			Msg:  invalid.Reason,
		})
	case errors.Is(err, service.ErrInvalidStatus):
		return respond(ctx, http.StatusBadRequest, ginx.Result{
			Code: errs.InvalidStatus.Code,
			Msg:  errs.InvalidStatus.Msg,
		})
	case errors.Is(err, service.ErrApplicationNotFound):
		return respond(ctx, http.StatusNotFound, ginx.Result{
			Code: errs.ApplicationNotFound.Code,
			Msg:  errs.ApplicationNotFound.Msg,
		})
	case errors.Is(err, service.ErrNoData):
		return respond(ctx, http.StatusNotFound, ginx.Result{
			Code: errs.NoData.Code,
			Msg:  errs.NoData.Msg,
		})
	default:
		return systemErrorResult, err
	}
}

func pathID(ctx *ginx.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	return id, err == nil
}
