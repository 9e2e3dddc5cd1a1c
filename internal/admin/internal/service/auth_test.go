package service

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	jwtToken := token.NewJWTToken("jobportal", "secret")
	svc := NewAuthService("admin", "admin123", jwtToken, 0)

	testCases := []struct {
		name     string
		username string
		password string
		wantErr  error
	}{
		{name: "登录成功", username: "admin", password: "admin123"},
		{name: "密码错误", username: "admin", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "用户名错误", username: "root", password: "admin123", wantErr: ErrInvalidCredentials},
		{name: "密码是前缀", username: "admin", password: "admin", wantErr: ErrInvalidCredentials},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := svc.Login(context.Background(), tc.username, tc.password)
			assert.ErrorIs(t, err, tc.wantErr)
			if err != nil {
				return
			}
			subject, err := jwtToken.Verify(tk)
			require.NoError(t, err)
			assert.Equal(t, tc.username, subject)
		})
	}
}

func TestNewAuthService_DefaultExpire(t *testing.T) {
	svc := NewAuthService("admin", "pwd", token.NewJWTToken("jobportal", "k"), -time.Second)
	assert.Equal(t, DefaultTokenExpire, svc.(*authService).expire)
}
