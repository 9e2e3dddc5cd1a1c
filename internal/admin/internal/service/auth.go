package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/pkg/errors"
)

const DefaultTokenExpire = 24 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

//go:generate mockgen -source=./auth.go -destination=../../mocks/auth.mock.go -package=adminmocks AuthService
type AuthService interface {
	// Login 校验账号密码，成功后返回 token
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	username  string
	password  string
	generator token.Generator
	expire    time.Duration
}

func NewAuthService(username, password string, generator token.Generator, expire time.Duration) AuthService {
	if expire <= 0 {
		expire = DefaultTokenExpire
	}
	return &authService{
		username:  username,
		password:  password,
		generator: generator,
		expire:    expire,
	}
}

func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	// 两个都要比较，不能短路
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	pwdOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userOK&pwdOK != 1 {
		return "", ErrInvalidCredentials
	}
	tk, err := s.generator.GenerateToken(username, s.expire)
	if err != nil {
		return "", errors.Wrap(err, "生成 token 失败")
	}
	return tk, nil
}
