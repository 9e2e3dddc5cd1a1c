package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/job/internal/errs"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	invalidIDResult = ginx.Result{
		Code: errs.InvalidJob.Code,
		Msg:  "Invalid job id",
	}
)

// respond 自己写入非 200 的响应，ginx 不会再写
func respond(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.Context.AbortWithStatusJSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}

// handleErr 业务错误转换成 4xx，其余的交给 ginx 返回 500
func handleErr(ctx *ginx.Context, err error) (ginx.Result, error) {
	var invalid service.InvalidJobError
	switch {
	case errors.Is(err, service.ErrJobNotFound):
		return respond(ctx, http.StatusNotFound, notFoundResult)
	case errors.As(err, &invalid):
		return respond(ctx, http.StatusBadRequest, ginx.Result{
			Code: errs.InvalidJob.Code,
			Msg:  invalid.Reason,
		})
	default:
		return systemErrorResult, err
	}
}

func pathID(ctx *ginx.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	return id, err == nil
}
