package web

import (
	"mime/multipart"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
)

// SubmitReq multipart 表单，简历放在 resume 字段
type SubmitReq struct {
	Name          string                `form:"name"`
	Email         string                `form:"email"`
	Phone         string                `form:"phone"`
	College       string                `form:"college"`
	Degree        string                `form:"degree"`
	Year          string                `form:"year"`
	Skills        string                `form:"skills"`
	Position      string                `form:"position"`
	HasReferral   bool                  `form:"hasReferral"`
	ReferralName  string                `form:"referralName"`
	ReferralEmail string                `form:"referralEmail"`
	Resume        *multipart.FileHeader `form:"resume"`
}

func (r SubmitReq) toDomain() domain.Application {
	return domain.Application{
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		College:       r.College,
		Degree:        r.Degree,
		Year:          r.Year,
		Skills:        r.Skills,
		Position:      r.Position,
		HasReferral:   r.HasReferral,
		ReferralName:  r.ReferralName,
		ReferralEmail: r.ReferralEmail,
	}
}

type ListReq struct {
	Position string `form:"position"`
	Status   string `form:"status"`
}

type StatusReq struct {
	Status string `json:"status"`
}

type ApplicationVO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	College       string    `json:"college"`
	Degree        string    `json:"degree"`
	Year          string    `json:"year"`
	Skills        string    `json:"skills"`
	Position      string    `json:"position"`
	HasReferral   bool      `json:"hasReferral"`
	ReferralName  string    `json:"referralName,omitempty"`
	ReferralEmail string    `json:"referralEmail,omitempty"`
	ResumeFile    string    `json:"resumeFile"`
	Status        string    `json:"status"`
	AppliedDate   time.Time `json:"appliedDate"`
}

func newApplicationVO(a domain.Application) ApplicationVO {
	return ApplicationVO{
		ID:            a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Phone:         a.Phone,
		College:       a.College,
		Degree:        a.Degree,
		Year:          a.Year,
		Skills:        a.Skills,
		Position:      a.Position,
		HasReferral:   a.HasReferral,
		ReferralName:  a.ReferralName,
		ReferralEmail: a.ReferralEmail,
		ResumeFile:    a.ResumeFile,
		Status:        string(a.Status.OrDefault()),
		AppliedDate:   a.AppliedDate,
	}
}

func newApplicationVOs(apps []domain.Application) []ApplicationVO {
	return slice.Map(apps, func(idx int, src domain.Application) ApplicationVO {
		return newApplicationVO(src)
	})
}

type StatisticsVO struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"byStatus"`
	ByPosition map[string]int64 `json:"byPosition"`
	Recent     []ApplicationVO  `json:"recent"`
}

func newStatisticsVO(s domain.Statistics) StatisticsVO {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for k, v := range s.ByStatus {
		byStatus[string(k)] = v
	}
	byPosition := make(map[string]int64, len(s.ByPosition))
	for k, v := range s.ByPosition {
		byPosition[k] = v
	}
	return StatisticsVO{
		Total:      s.Total,
		ByStatus:   byStatus,
		ByPosition: byPosition,
		Recent:     newApplicationVOs(s.Recent),
	}
}
