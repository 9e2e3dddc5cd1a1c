package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	StatusPending     = "Pending"
	StatusReviewed    = "Reviewed"
	StatusShortlisted = "Shortlisted"
	StatusRejected    = "Rejected"
)

var Statuses = []string{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

type Application struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	Degree        string    `json:"degree"`
	Year          string    `json:"year"`
	Skills        string    `json:"skills"`
	Position      string    `json:"position"`
	ResumeFile    string    `json:"resumeFile"`
	Status        string    `json:"status"`
	AppliedDate   time.Time `json:"appliedDate"`
	HasReferral   bool      `json:"hasReferral"`
	ReferralName  string    `json:"referralName,omitempty"`
	ReferralEmail string    `json:"referralEmail,omitempty"`
}

// EffectiveStatus 没有状态的当作 Pending
func (a Application) EffectiveStatus() string {
	if a.Status == "" {
		return StatusPending
	}
	return a.Status
}

func (a Application) SearchFields() []string {
	return []string{a.Name, a.Email, a.Position}
}

func (a Application) Field(name string) any {
	switch name {
	case "id":
		return a.ID
	case "name":
		return a.Name
	case "email":
		return a.Email
	case "position":
		return a.Position
	case "college":
		return a.College
	case "year":
		return a.Year
	case "status":
		return a.EffectiveStatus()
	case "appliedDate":
		return a.AppliedDate
	default:
		return nil
	}
}

type ApplicationFilter struct {
	Position string
	Status   string
}

func (f ApplicationFilter) query() map[string]string {
	q := map[string]string{}
	if !isSentinel(f.Position) {
		q["position"] = f.Position
	}
	if !isSentinel(f.Status) {
		q["status"] = f.Status
	}
	return q
}

// Resume 简历文件，Size 为负数时表示未知
type Resume struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// rewind 让每次投递都从头读取简历。
// 不支持 Seek 的内容第一次会整个读到内存里，之后的重试复用这份数据
func (r *Resume) rewind() (io.Reader, error) {
	if s, ok := r.Content.(io.Seeker); ok {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		return r.Content, nil
	}
	data, err := io.ReadAll(r.Content)
	if err != nil {
		return nil, err
	}
	r.Content = bytes.NewReader(data)
	return r.Content, nil
}

// Submission 一次投递，只有 HasReferral 为 true 时才会带上推荐人
type Submission struct {
	Name          string
	Email         string
	Phone         string
	College       string
	Degree        string
	Year          string
	Skills        string
	Position      string
	HasReferral   bool
	ReferralName  string
	ReferralEmail string
	Resume        *Resume
}

func (s Submission) form() map[string]string {
	res := map[string]string{
		"name":        s.Name,
		"email":       s.Email,
		"phone":       s.Phone,
		"college":     s.College,
		"degree":      s.Degree,
		"year":        s.Year,
		"skills":      s.Skills,
		"position":    s.Position,
		"hasReferral": strconv.FormatBool(s.HasReferral),
	}
	if s.HasReferral {
		res["referralName"] = s.ReferralName
		res["referralEmail"] = s.ReferralEmail
	}
	return res
}

type Statistics struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPosition map[string]int64 `json:"byPosition"`
	Recent     []Application    `json:"recent"`
}

// Dashboard 同一时刻的列表和统计
type Dashboard struct {
	Applications []Application
	Statistics   Statistics
}

// Saver 保存导出的文件，返回保存的位置
type Saver interface {
	Save(ctx context.Context, filename string, content io.Reader) (string, error)
}

// DirSaver 把文件写到 Dir 目录下
type DirSaver struct {
	Dir string
}

func (d DirSaver) Save(ctx context.Context, filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return "", errors.Wrap(err, "创建导出目录失败")
	}
	path := filepath.Join(d.Dir, filepath.Base(filename))
	f, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "创建导出文件失败")
	}
	defer f.Close()
	if _, err = io.Copy(f, content); err != nil {
		return "", errors.Wrap(err, "写入导出文件失败")
	}
	return path, nil
}

// Ledger 投递记录。统计直接使用后端的结果，不会根据列表重新计算。
// 列表和统计各自判断响应是否过期，互不影响
type Ledger struct {
	gw       *Gateway
	listRel  Relevance
	statsRel Relevance
	nowFunc  func() time.Time

	mu     sync.RWMutex
	filter ApplicationFilter
	apps   []Application
	stats  Statistics
}

func NewLedger(gw *Gateway) *Ledger {
	return &Ledger{gw: gw, nowFunc: time.Now}
}

func (l *Ledger) List(ctx context.Context, filter ApplicationFilter) ([]Application, error) {
	l.mu.Lock()
	l.filter = filter
	l.mu.Unlock()
	ticket := l.listRel.Begin()
	apps, err := l.list(ctx, filter)
	if err != nil {
		return nil, err
	}
	if !l.listRel.Current(ticket) {
		return nil, ErrStale
	}
	l.mu.Lock()
	l.apps = apps
	l.mu.Unlock()
	return append([]Application(nil), apps...), nil
}

func (l *Ledger) list(ctx context.Context, filter ApplicationFilter) ([]Application, error) {
	resp, err := l.gw.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "/admin/applications",
		Query:         filter.query(),
		Authenticated: true,
		Op:            "Failed to fetch applications",
	})
	if err != nil {
		return nil, err
	}
	var apps []Application
	err = resp.Decode(&apps)
	return apps, err
}

// Applications 最近一次拉取到的列表
func (l *Ledger) Applications() []Application {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]Application(nil), l.apps...)
}

// Submit 公开接口。没有简历时直接返回 ValidationError，不发请求。
// 失败之后可以用同一个 Submission 重试
func (l *Ledger) Submit(ctx context.Context, sub Submission) (Application, error) {
	const op = "Application failed"
	if sub.Resume == nil || sub.Resume.Content == nil {
		return Application{}, validationError(op, "Resume file is required")
	}
	content, err := sub.Resume.rewind()
	if err != nil {
		return Application{}, &Error{Kind: KindRequest, Op: op, Msg: "Failed to read resume file", Err: err}
	}
	resp, err := l.gw.Do(ctx, Request{
		Method: http.MethodPost,
		Path:   "/apply",
		Form:   sub.form(),
		File: &File{
			Param:   "resume",
			Name:    sub.Resume.Filename,
			Content: content,
		},
		Op: op,
	})
	if err != nil {
		return Application{}, err
	}
	var app Application
	err = resp.Decode(&app)
	return app, err
}

// UpdateStatus 不在本地校验 status，交给后端
func (l *Ledger) UpdateStatus(ctx context.Context, id int64, status string) (Application, error) {
	resp, err := l.gw.Do(ctx, Request{
		Method:        http.MethodPut,
		Path:          fmt.Sprintf("/admin/application/%d/status", id),
		Body:          map[string]string{"status": status},
		Authenticated: true,
		Op:            "Failed to update status",
	})
	if err != nil {
		return Application{}, err
	}
	var app Application
	if err = resp.Decode(&app); err != nil {
		return Application{}, err
	}
	return app, l.refresh(ctx)
}

func (l *Ledger) Delete(ctx context.Context, id int64, confirm Confirm) error {
	if confirm == nil || !confirm(ctx, fmt.Sprintf("Are you sure you want to delete application %d?", id)) {
		return ErrCanceled
	}
	_, err := l.gw.Do(ctx, Request{
		Method:        http.MethodDelete,
		Path:          "/admin/application/" + strconv.FormatInt(id, 10),
		Authenticated: true,
		Op:            "Failed to delete application",
	})
	if err != nil {
		return err
	}
	return l.refresh(ctx)
}

// refresh 写操作之后重新拉取列表和统计，被更新的请求覆盖不算失败
func (l *Ledger) refresh(ctx context.Context) error {
	if _, err := l.Refresh(ctx); err != nil && !errors.Is(err, ErrStale) {
		return err
	}
	return nil
}

// ExportExcel 下载 Excel 交给 saver 保存，position 为空时导出全部
func (l *Ledger) ExportExcel(ctx context.Context, position string, saver Saver) (string, error) {
	if isSentinel(position) {
		position = "all"
	}
	resp, err := l.gw.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "/admin/download-excel",
		Query:         map[string]string{"position": position},
		Authenticated: true,
		Op:            "Failed to download Excel file",
	})
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("applications_%s_%d.xlsx", position, l.nowFunc().UnixMilli())
	return saver.Save(ctx, filename, bytes.NewReader(resp.Body))
}

func (l *Ledger) Statistics(ctx context.Context) (Statistics, error) {
	ticket := l.statsRel.Begin()
	stats, err := l.statistics(ctx)
	if err != nil {
		return Statistics{}, err
	}
	if !l.statsRel.Current(ticket) {
		return Statistics{}, ErrStale
	}
	l.mu.Lock()
	l.stats = stats
	l.mu.Unlock()
	return stats, nil
}

func (l *Ledger) statistics(ctx context.Context) (Statistics, error) {
	resp, err := l.gw.Do(ctx, Request{
		Method:        http.MethodGet,
		Path:          "/admin/statistics",
		Authenticated: true,
		Op:            "Failed to fetch statistics",
	})
	if err != nil {
		return Statistics{}, err
	}
	var stats Statistics
	err = resp.Decode(&stats)
	return stats, err
}

// Stats 最近一次拉取到的统计
func (l *Ledger) Stats() Statistics {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.stats
}

// Refresh 并发拉取列表和统计，任意一个失败都返回错误。
// 已经被更新的 List 或者 Statistics 覆盖的那一部分不会写回，
// 返回的是写回之后的快照；两部分都被覆盖时返回 ErrStale
func (l *Ledger) Refresh(ctx context.Context) (Dashboard, error) {
	l.mu.RLock()
	filter := l.filter
	l.mu.RUnlock()
	listTicket := l.listRel.Begin()
	statsTicket := l.statsRel.Begin()

	var (
		apps  []Application
		stats Statistics
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		apps, err = l.list(egCtx, filter)
		return err
	})
	eg.Go(func() error {
		var err error
		stats, err = l.statistics(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return Dashboard{}, err
	}

	listCurrent := l.listRel.Current(listTicket)
	statsCurrent := l.statsRel.Current(statsTicket)
	if !listCurrent && !statsCurrent {
		return Dashboard{}, ErrStale
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if listCurrent {
		l.apps = apps
	}
	if statsCurrent {
		l.stats = stats
	}
	return Dashboard{
		Applications: append([]Application(nil), l.apps...),
		Statistics:   l.stats,
	}, nil
}
