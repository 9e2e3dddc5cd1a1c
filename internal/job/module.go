package job

import (
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
	"github.com/ecodeclub/jobportal/internal/job/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Handler      = web.Handler
	Service      = service.JobService
	Job          = domain.Job
	Filter       = domain.Filter
)

const (
	StatusActive   = domain.StatusActive
	StatusInactive = domain.StatusInactive
)

// SampleJobs 内置的示例职位，配置 job.seed 为 true 时启动写入
var SampleJobs = service.SampleJobs

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}
