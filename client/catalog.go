package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
)

const (
	JobStatusActive   = "Active"
	JobStatusInactive = "Inactive"
)

var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

type Job struct {
	ID               int64    `json:"id"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
	Status           string   `json:"status"`
	Ctime            int64    `json:"ctime"`
	Utime            int64    `json:"utime"`
}

func (j Job) SearchFields() []string {
	return []string{j.Title, j.Company, j.Location}
}

func (j Job) Field(name string) any {
	switch name {
	case "id":
		return j.ID
	case "title":
		return j.Title
	case "company":
		return j.Company
	case "location":
		return j.Location
	case "type":
		return j.Type
	case "experience":
		return j.Experience
	case "salary":
		return j.Salary
	case "status":
		return j.Status
	case "ctime":
		return j.Ctime
	case "utime":
		return j.Utime
	default:
		return nil
	}
}

// MatchField experience 支持 Fresher 和 Experienced 两个分组
func (j Job) MatchField(name, value string) (bool, bool) {
	if name != "experience" {
		return false, false
	}
	fresher := strings.Contains(strings.ToLower(j.Experience), "fresher")
	switch value {
	case "Fresher":
		return fresher, true
	case "Experienced":
		return j.Experience != "" && !fresher, true
	}
	return false, false
}

// JobDraft 创建和更新职位时提交的内容
type JobDraft struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Experience       string   `json:"experience"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	Skills           []string `json:"skills"`
	Benefits         []string `json:"benefits"`
	Status           string   `json:"status,omitempty"`
}

// compact 去掉数组里的空白项，返回新的 draft
func (d JobDraft) compact() JobDraft {
	d.Responsibilities = compactStrings(d.Responsibilities)
	d.Requirements = compactStrings(d.Requirements)
	d.Skills = compactStrings(d.Skills)
	d.Benefits = compactStrings(d.Benefits)
	return d
}

func compactStrings(src []string) []string {
	res := make([]string, 0, len(src))
	for _, s := range src {
		if s = strings.TrimSpace(s); s != "" {
			res = append(res, s)
		}
	}
	return res
}

type JobFilter struct {
	Type       string
	Experience string
	Status     string
}

func (f JobFilter) query() map[string]string {
	q := map[string]string{}
	for k, v := range map[string]string{"type": f.Type, "experience": f.Experience, "status": f.Status} {
		if !isSentinel(v) {
			q[k] = v
		}
	}
	return q
}

// isSentinel "all" 之类的取值代表不过滤
func isSentinel(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "all", "all types":
		return true
	}
	return false
}

// Confirm 删除前的确认，返回 false 时不发请求
type Confirm func(ctx context.Context, prompt string) bool

// Catalog 职位列表。每次写操作之后都会按上一次的过滤条件重新拉取
type Catalog struct {
	gw  *Gateway
	rel Relevance

	mu     sync.RWMutex
	filter JobFilter
	jobs   []Job
}

func NewCatalog(gw *Gateway) *Catalog {
	return &Catalog{gw: gw}
}

func (c *Catalog) List(ctx context.Context, filter JobFilter) ([]Job, error) {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return c.fetch(ctx, filter)
}

func (c *Catalog) fetch(ctx context.Context, filter JobFilter) ([]Job, error) {
	ticket := c.rel.Begin()
	resp, err := c.gw.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/jobs",
		Query:  filter.query(),
		Op:     "Failed to fetch jobs",
	})
	if err != nil {
		return nil, err
	}
	var jobs []Job
	if err = resp.Decode(&jobs); err != nil {
		return nil, err
	}
	if !c.rel.Current(ticket) {
		return nil, ErrStale
	}
	c.mu.Lock()
	c.jobs = jobs
	c.mu.Unlock()
	return append([]Job(nil), jobs...), nil
}

// Jobs 最近一次拉取到的列表
func (c *Catalog) Jobs() []Job {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]Job(nil), c.jobs...)
}

func (c *Catalog) Get(ctx context.Context, id int64) (Job, error) {
	resp, err := c.gw.Do(ctx, Request{
		Method: http.MethodGet,
		Path:   "/jobs/" + strconv.FormatInt(id, 10),
		Op:     "Failed to fetch job",
	})
	if err != nil {
		return Job{}, err
	}
	var job Job
	err = resp.Decode(&job)
	return job, err
}

// Create 写入成功但刷新失败时，返回创建的职位和刷新的错误
func (c *Catalog) Create(ctx context.Context, draft JobDraft) (Job, error) {
	return c.mutate(ctx, Request{
		Method: http.MethodPost,
		Path:   "/admin/jobs",
		Body:   draft.compact(),
		Op:     "Failed to create job",
	})
}

func (c *Catalog) Update(ctx context.Context, id int64, draft JobDraft) (Job, error) {
	return c.mutate(ctx, Request{
		Method: http.MethodPut,
		Path:   "/admin/jobs/" + strconv.FormatInt(id, 10),
		Body:   draft.compact(),
		Op:     "Failed to update job",
	})
}

func (c *Catalog) ToggleStatus(ctx context.Context, id int64) (Job, error) {
	return c.mutate(ctx, Request{
		Method: http.MethodPatch,
		Path:   fmt.Sprintf("/admin/jobs/%d/toggle-status", id),
		Op:     "Failed to toggle job status",
	})
}

func (c *Catalog) Delete(ctx context.Context, id int64, confirm Confirm) error {
	if confirm == nil || !confirm(ctx, fmt.Sprintf("Are you sure you want to delete job %d?", id)) {
		return ErrCanceled
	}
	_, err := c.mutate(ctx, Request{
		Method: http.MethodDelete,
		Path:   "/admin/jobs/" + strconv.FormatInt(id, 10),
		Op:     "Failed to delete job",
	})
	return err
}

func (c *Catalog) mutate(ctx context.Context, req Request) (Job, error) {
	req.Authenticated = true
	resp, err := c.gw.Do(ctx, req)
	if err != nil {
		return Job{}, err
	}
	var job Job
	if req.Method != http.MethodDelete {
		if err = resp.Decode(&job); err != nil {
			return Job{}, err
		}
	}
	c.mu.RLock()
	filter := c.filter
	c.mu.RUnlock()
	// 刷新被更新的请求覆盖不算失败
	if _, err = c.fetch(ctx, filter); errors.Is(err, ErrStale) {
		err = nil
	}
	return job, err
}
