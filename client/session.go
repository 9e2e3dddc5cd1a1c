package client

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// Session 登录后拿到的凭证
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type State uint8

const (
	StateInit State = iota
	StateActive
	StateCleared
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateCleared:
		return "cleared"
	default:
		return "init"
	}
}

// TokenStore 持久化 Session，没有过期时间
type TokenStore interface {
	Load() (Session, error)
	Save(s Session) error
	Clear() error
}

// MemoryStore 只放在内存里，测试里可以同时模拟多个会话
type MemoryStore struct {
	mu  sync.RWMutex
	val Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.val, nil
}

func (m *MemoryStore) Save(s Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.val = s
	return nil
}

func (m *MemoryStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.val = Session{}
	return nil
}

// FileStore 把 Session 以 JSON 存在文件里，portalctl 用
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (Session, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, nil
	}
	if err != nil {
		return Session{}, errors.Wrap(err, "读取会话文件失败")
	}
	var s Session
	if err = json.Unmarshal(data, &s); err != nil {
		return Session{}, errors.Wrap(err, "解析会话文件失败")
	}
	return s, nil
}

func (f *FileStore) Save(s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return errors.Wrap(err, "创建会话目录失败")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(f.path, data, 0o600), "写入会话文件失败")
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return errors.Wrap(err, "删除会话文件失败")
}

// SessionStore 持有当前的 token，Gateway 从这里取
type SessionStore struct {
	mu    sync.RWMutex
	store TokenStore
	cur   Session
	state State
	gw    *Gateway
}

// NewSessionStore 会先从 store 里恢复之前的会话
func NewSessionStore(store TokenStore) (*SessionStore, error) {
	if store == nil {
		store = NewMemoryStore()
	}
	s, err := store.Load()
	if err != nil {
		return nil, err
	}
	res := &SessionStore{store: store, cur: s}
	if s.Token != "" {
		res.state = StateActive
	}
	return res, nil
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

const loginFailed = "Login failed"

func (s *SessionStore) Login(ctx context.Context, username, password string) (Session, error) {
	if s.gw == nil {
		return Session{}, errors.New("session store 没有绑定 gateway")
	}
	resp, err := s.gw.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/login",
		Body:   loginReq{Username: username, Password: password},
		Op:     loginFailed,
	})
	if err != nil {
		return Session{}, err
	}
	var res Session
	if err = resp.Decode(&res); err != nil {
		return Session{}, err
	}
	if res.Token == "" {
		return Session{}, &Error{Kind: KindAuth, Op: loginFailed, Msg: loginFailed}
	}
	if res.Username == "" {
		res.Username = username
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err = s.store.Save(res); err != nil {
		return Session{}, err
	}
	s.cur = res
	s.state = StateActive
	return res, nil
}

func (s *SessionStore) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Token
}

func (s *SessionStore) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur.Username
}

func (s *SessionStore) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Logout 无条件清空，可以重复调用。持久化失败只影响下次启动
func (s *SessionStore) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = Session{}
	s.state = StateCleared
	return s.store.Clear()
}
