// Package client 是招聘门户后端的 Go SDK，管理后台和命令行都通过它访问后端
package client

import (
	"context"
	"net/http"
)

type Client struct {
	Session *SessionStore
	Gateway *Gateway
	Jobs    *Catalog
	Apps    *Ledger
}

// New 没有指定 TokenStore 时使用 MemoryStore
func New(baseURL string, opts ...Option) (*Client, error) {
	o := newOptions(opts)
	session, err := NewSessionStore(o.store)
	if err != nil {
		return nil, err
	}
	gw := NewGateway(baseURL, session, opts...)
	return &Client{
		Session: session,
		Gateway: gw,
		Jobs:    NewCatalog(gw),
		Apps:    NewLedger(gw),
	}, nil
}

type Health struct {
	Status            string `json:"status"`
	Message           string `json:"message"`
	Database          string `json:"database"`
	ApplicationsCount int64  `json:"applications_count"`
}

func (c *Client) Health(ctx context.Context) (Health, error) {
	resp, err := c.Gateway.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/health",
		Op:     "Backend is not reachable",
	})
	if err != nil {
		return Health{}, err
	}
	var res Health
	err = resp.Decode(&res)
	return res, err
}
