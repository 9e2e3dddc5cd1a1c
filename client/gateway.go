package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	DefaultTimeout   = 30 * time.Second
	sessionExpired   = "Session expired. Please login again."
	notAuthenticated = "Not authenticated"
)

// Request 描述一次调用。Form 或者 File 不为空时用 multipart，否则 Body 序列化成 JSON
type Request struct {
	Method        string
	Path          string
	Query         map[string]string
	Body          any
	Form          map[string]string
	File          *File
	Authenticated bool
	// Op 后端没有给出错误信息时使用的兜底文案
	Op string
}

type File struct {
	Param   string
	Name    string
	Content io.Reader
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
	op     string
}

type envelope struct {
	Code int             `json:"code"`
	Msg  string          `json:"msg"`
	Data json.RawMessage `json:"data"`
}

// Decode 解析 {code, msg, data} 里的 data。没有 data 字段的时候解析整个 body
func (r *Response) Decode(val any) error {
	var env envelope
	if err := json.Unmarshal(r.Body, &env); err != nil {
		return &Error{Kind: KindRequest, Op: r.op, Msg: r.op, Status: r.Status, Err: err}
	}
	data := []byte(env.Data)
	switch {
	case len(data) == 0:
		data = r.Body
	case string(data) == "null":
		return nil
	}
	if err := json.Unmarshal(data, val); err != nil {
		return &Error{Kind: KindRequest, Op: r.op, Msg: r.op, Status: r.Status, Err: err}
	}
	return nil
}

// Message 响应里的 msg
func (r *Response) Message() string {
	return extractMessage(r.Body)
}

type options struct {
	timeout    time.Duration
	logger     *zap.Logger
	httpClient *http.Client
	store      TokenStore
}

type Option func(o *options)

// WithTimeout 超时完全交给 HTTP 客户端，不做重试
func WithTimeout(timeout time.Duration) Option {
	return func(o *options) {
		o.timeout = timeout
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *options) {
		o.httpClient = c
	}
}

func WithTokenStore(store TokenStore) Option {
	return func(o *options) {
		o.store = store
	}
}

func newOptions(opts []Option) options {
	o := options{
		timeout: DefaultTimeout,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Gateway 所有网络调用都经过这里
type Gateway struct {
	client  *resty.Client
	session *SessionStore
	logger  *zap.Logger
}

// NewGateway 会把自己绑定到 session 上，Login 通过它发请求
func NewGateway(baseURL string, session *SessionStore, opts ...Option) *Gateway {
	o := newOptions(opts)
	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(o.timeout)
	g := &Gateway{
		client:  rc,
		session: session,
		logger:  o.logger,
	}
	session.mu.Lock()
	session.gw = g
	session.mu.Unlock()
	return g
}

func (g *Gateway) Do(ctx context.Context, req Request) (*Response, error) {
	r := g.client.R().SetContext(ctx)
	if req.Authenticated {
		tk := g.session.Token()
		if tk == "" {
			return nil, &Error{Kind: KindSessionExpired, Op: req.Op, Msg: notAuthenticated, Status: http.StatusUnauthorized}
		}
		r.SetAuthToken(tk)
	}
	if len(req.Query) > 0 {
		r.SetQueryParams(req.Query)
	}
	switch {
	case req.Form != nil || req.File != nil:
		if req.Form != nil {
			r.SetMultipartFormData(req.Form)
		}
		if req.File != nil {
			r.SetFileReader(req.File.Param, req.File.Name, req.File.Content)
		}
	case req.Body != nil:
		r.SetBody(req.Body)
	}

	start := time.Now()
	resp, err := r.Execute(req.Method, req.Path)
	if err != nil {
		g.logger.Warn("请求失败",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		return nil, &Error{Kind: KindRequest, Op: req.Op, Msg: req.Op, Err: err}
	}
	g.logger.Debug("请求完成",
		zap.String("method", req.Method),
		zap.String("path", req.Path),
		zap.Int("status", resp.StatusCode()),
		zap.Duration("cost", time.Since(start)))

	if !resp.IsSuccess() {
		return nil, g.mapError(req, resp.StatusCode(), resp.Body())
	}
	return &Response{
		Status: resp.StatusCode(),
		Header: resp.Header(),
		Body:   resp.Body(),
		op:     req.Op,
	}, nil
}

func (g *Gateway) mapError(req Request, status int, body []byte) *Error {
	msg := extractMessage(body)
	if msg == "" {
		msg = req.Op
	}
	res := &Error{Kind: KindRequest, Op: req.Op, Msg: msg, Status: status}
	switch {
	case status == http.StatusUnauthorized && req.Authenticated:
		if err := g.session.Logout(); err != nil {
			g.logger.Error("清理会话失败", zap.Error(err))
		}
		res.Kind = KindSessionExpired
		res.Msg = sessionExpired
	case status == http.StatusUnauthorized:
		res.Kind = KindAuth
	case status == http.StatusBadRequest:
		res.Kind = KindValidation
	case status == http.StatusNotFound:
		res.Kind = KindNotFound
	}
	return res
}

// extractMessage 兼容 {"msg": ...} 和 {"error": ...}，不是 JSON 的时候返回空
func extractMessage(body []byte) string {
	var val struct {
		Msg     string `json:"msg"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &val); err != nil {
		return ""
	}
	switch {
	case val.Msg != "":
		return val.Msg
	case val.Error != "":
		return val.Error
	default:
		return val.Message
	}
}
