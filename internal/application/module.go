package application

import (
	"time"

	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/ecodeclub/jobportal/internal/application/internal/event"
	"github.com/ecodeclub/jobportal/internal/application/internal/service"
	"github.com/ecodeclub/jobportal/internal/application/internal/web"
)

type (
	AdminHandler     = web.AdminHandler
	Handler          = web.Handler
	Service          = service.ApplicationService
	SweepJob         = service.ResumeSweepJob
	Application      = domain.Application
	Status           = domain.Status
	ApplicationEvent = event.ApplicationEvent
)

const (
	StatusPending     = domain.StatusPending
	StatusReviewed    = domain.StatusReviewed
	StatusShortlisted = domain.StatusShortlisted
	StatusRejected    = domain.StatusRejected

	EventsTopic = event.ApplicationEventsTopic
)

// Config 简历存储相关配置
type Config struct {
	UploadDir     string        `yaml:"uploadDir"`
	MaxResumeSize int64         `yaml:"maxResumeSize"`
	SweepGrace    time.Duration `yaml:"sweepGrace"`
}

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
	SweepJob *SweepJob
}
