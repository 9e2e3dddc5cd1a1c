package middleware

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobportal/internal/pkg/ectx"
	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	authorizationHeader = "Authorization"
	bearerPrefix        = "Bearer "
)

// CheckLoginBuilder 校验 Authorization: Bearer <token>，并把管理员用户名放进 context
type CheckLoginBuilder struct {
	verifier token.Verifier
	ignored  map[string]struct{}
}

func NewCheckLoginBuilder(verifier token.Verifier) *CheckLoginBuilder {
	return &CheckLoginBuilder{
		verifier: verifier,
		ignored:  map[string]struct{}{},
	}
}

// IgnorePaths 这些路径不需要登录
func (b *CheckLoginBuilder) IgnorePaths(paths ...string) *CheckLoginBuilder {
	for _, p := range paths {
		b.ignored[p] = struct{}{}
	}
	return b
}

func (b *CheckLoginBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if _, ok := b.ignored[ctx.Request.URL.Path]; ok {
			return
		}
		header := ctx.GetHeader(authorizationHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: http.StatusUnauthorized,
				Msg:  "Token is missing",
			})
			return
		}
		username, err := b.verifier.Verify(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			elog.DefaultLogger.Debug("token 校验失败", elog.FieldErr(err))
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
				Code: http.StatusUnauthorized,
				Msg:  "Token is invalid or expired",
			})
			return
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithAdmin(ctx.Request.Context(), username))
	}
}
