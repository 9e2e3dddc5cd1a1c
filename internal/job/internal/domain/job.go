package domain

import "strings"

type Type string

const (
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeContract   Type = "Contract"
	TypeInternship Type = "Internship"
)

func (t Type) Valid() bool {
	switch t {
	case TypeFullTime, TypePartTime, TypeContract, TypeInternship:
		return true
	}
	return false
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

// Toggle Active 和 Inactive 互相切换，其余值一律切换为 Active
func (s Status) Toggle() Status {
	if s == StatusActive {
		return StatusInactive
	}
	return StatusActive
}

type Job struct {
	ID          int64
	Title       string
	Company     string
	Location    string
	Type        Type
	Experience  string
	Salary      string
	Description string

	Responsibilities []string
	Requirements     []string
	Skills           []string
	Benefits         []string

	Status Status
	Ctime  int64
	Utime  int64
}

// Normalize 去掉数组字段里的空白项，并补全默认状态
func (j Job) Normalize() Job {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Responsibilities = compact(j.Responsibilities)
	j.Requirements = compact(j.Requirements)
	j.Skills = compact(j.Skills)
	j.Benefits = compact(j.Benefits)
	if j.Status == "" {
		j.Status = StatusActive
	}
	return j
}

func compact(src []string) []string {
	res := make([]string, 0, len(src))
	for _, s := range src {
		s = strings.TrimSpace(s)
		if s != "" {
			res = append(res, s)
		}
	}
	return res
}

// Filter 列表查询条件，空字符串代表不过滤
type Filter struct {
	Type       string
	Experience string
	Status     string
}

// Normalize 把 "all" / "All Types" 这类哨兵值转换成空字符串
func (f Filter) Normalize() Filter {
	f.Type = dropSentinel(f.Type)
	f.Experience = dropSentinel(f.Experience)
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
