package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
)

type ListReq struct {
	Type       string `form:"type"`
	Experience string `form:"experience"`
	Status     string `form:"status"`
}

// JobReq 创建和更新共用
type JobReq struct {
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
}

func (r JobReq) toDomain(id int64) domain.Job {
	return domain.Job{
		ID:               id,
		Title:            r.Title,
		Company:          r.Company,
		Location:         r.Location,
		Type:             domain.Type(r.Type),
		Experience:       r.Experience,
		Salary:           r.Salary,
		Description:      r.Description,
		Responsibilities: r.Responsibilities,
		Requirements:     r.Requirements,
		Skills:           r.Skills,
		Benefits:         r.Benefits,
		Status:           domain.Status(r.Status),
	}
}

type JobVO struct {
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

func newJobVO(j domain.Job) JobVO {
	return JobVO{
		ID:               j.ID,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             string(j.Type),
		Experience:       j.Experience,
		Salary:           j.Salary,
		Description:      j.Description,
		Responsibilities: j.Responsibilities,
		Requirements:     j.Requirements,
		Skills:           j.Skills,
		Benefits:         j.Benefits,
		Status:           string(j.Status),
		Ctime:            j.Ctime,
		Utime:            j.Utime,
	}
}

func newJobVOs(jobs []domain.Job) []JobVO {
	return slice.Map(jobs, func(idx int, src domain.Job) JobVO {
		return newJobVO(src)
	})
}
