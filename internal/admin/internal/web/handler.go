package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/admin/internal/errs"
	"github.com/ecodeclub/jobportal/internal/admin/internal/service"
	"github.com/ecodeclub/jobportal/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.AuthService
}

func NewHandler(svc service.AuthService) *Handler {
	return &Handler{svc: svc}
}

// PrivateRoutes /admin/login 在登录校验里被忽略
func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/admin/login", ginx.B[LoginReq](h.Login))
	server.GET("/admin/profile", ginx.W(h.Profile))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	if req.Username == "" || req.Password == "" {
		return h.reject(ctx, http.StatusBadRequest, errs.MissingCredentials)
	}
	tk, err := h.svc.Login(ctx, req.Username, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return h.reject(ctx, http.StatusUnauthorized, errs.InvalidCredentials)
	case err != nil:
		return ginx.Result{
			Code: errs.SystemError.Code,
			Msg:  errs.SystemError.Msg,
		}, err
	}
	return ginx.Result{
		Msg: "Login successful",
		Data: LoginVO{
			Token:    tk,
			Username: req.Username,
		},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context) (ginx.Result, error) {
	username, ok := ectx.AdminFromCtx(ctx.Request.Context())
	if !ok {
		return ginx.Result{}, ginx.ErrUnauthorized
	}
	return ginx.Result{Data: ProfileVO{Username: username}}, nil
}

func (h *Handler) reject(ctx *ginx.Context, status int, code errs.ErrorCode) (ginx.Result, error) {
	ctx.Context.AbortWithStatusJSON(status, ginx.Result{
		Code: code.Code,
		Msg:  code.Msg,
	})
	return ginx.Result{}, ginx.ErrNoResponse
}
