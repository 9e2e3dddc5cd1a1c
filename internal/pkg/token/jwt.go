package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Generator 为 subject 签发 token
type Generator interface {
	GenerateToken(subject string, expire time.Duration) (string, error)
}

// Verifier 校验 token 并返回 subject
type Verifier interface {
	Verify(token string) (string, error)
}

// JWTToken 同时实现了 Generator 和 Verifier，使用 HS256 签名
type JWTToken struct {
	key     []byte
	issuer  string
	nowFunc func() time.Time
}

func NewJWTToken(issuer, key string) *JWTToken {
	return &JWTToken{
		issuer:  issuer,
		key:     []byte(key),
		nowFunc: time.Now,
	}
}

func (t *JWTToken) GenerateToken(subject string, expire time.Duration) (string, error) {
	now := t.nowFunc()
	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    t.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(expire)),
		Subject:   subject,
	})
	return tk.SignedString(t.key)
}

func (t *JWTToken) Verify(token string) (string, error) {
	tk, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return t.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time {
			return t.nowFunc()
		}),
	)
	if err != nil {
		return "", fmt.Errorf("cannot parse token: %w", err)
	}

	clm, ok := tk.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return "", fmt.Errorf("token claim is not RegisteredClaims")
	}
	if !tk.Valid {
		return "", fmt.Errorf("token not valid")
	}
	return clm.Subject, nil
}
