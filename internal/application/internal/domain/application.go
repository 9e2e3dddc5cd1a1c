package domain

import (
	"io"
	"path/filepath"
	"strings"
	"time"
)

type Status string

const (
	StatusPending     Status = "Pending"
	StatusReviewed    Status = "Reviewed"
	StatusShortlisted Status = "Shortlisted"
	StatusRejected    Status = "Rejected"
)

// Statuses 按照展示顺序排列
var Statuses = []Status{StatusPending, StatusReviewed, StatusShortlisted, StatusRejected}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusShortlisted, StatusRejected:
		return true
	}
	return false
}

// OrDefault 没有状态的数据按照 Pending 处理
func (s Status) OrDefault() Status {
	if s == "" {
		return StatusPending
	}
	return s
}

// DefaultPosition 投递的时候没有带职位
const DefaultPosition = "N/A"

type Application struct {
	ID      int64
	Name    string
	Email   string
	Phone   string
	College string
	Degree  string
	Year    string
	Skills  string
	// Position 投递时职位标题的快照，不关联职位 ID
	Position string

	HasReferral   bool
	ReferralName  string
	ReferralEmail string

	ResumeFile  string
	Status      Status
	AppliedDate time.Time
}

type Resume struct {
	Filename string
	Size     int64
	Content  io.Reader
}

// Ext 小写的扩展名，带点
func (r Resume) Ext() string {
	return strings.ToLower(filepath.Ext(r.Filename))
}

type Filter struct {
	Position string
	Status   string
}

func (f Filter) Normalize() Filter {
	f.Position = dropSentinel(f.Position)
	f.Status = dropSentinel(f.Status)
	return f
}

func dropSentinel(v string) string {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "all", "all types":
		return ""
	}
	return v
}

type Statistics struct {
	Total      int64
	ByStatus   map[Status]int64
	ByPosition map[string]int64
	Recent     []Application
}
