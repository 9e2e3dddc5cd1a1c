package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/ecodeclub/jobportal/internal/application/internal/event"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository/storage"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
)

const (
	// DefaultMaxResumeSize 简历大小上限
	DefaultMaxResumeSize int64 = 5 << 20
	recentLimit                = 5
)

var (
	ErrApplicationNotFound = repository.ErrApplicationNotFound
	ErrInvalidStatus       = errors.New("invalid status")
	ErrNoData              = errors.New("no data available")

	emailRegexp    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	allowedResumes = map[string]struct{}{".pdf": {}, ".doc": {}, ".docx": {}}
)

// InvalidApplicationError 投递数据不合法，Reason 直接返回给前端
type InvalidApplicationError struct {
	Reason string
}

func (e InvalidApplicationError) Error() string {
	return e.Reason
}

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks ApplicationService
type ApplicationService interface {
	Submit(ctx context.Context, app domain.Application, resume domain.Resume) (domain.Application, error)
	List(ctx context.Context, filter domain.Filter) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Application, error)
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context) (domain.Statistics, error)
	// Export 生成 Excel，position 为空代表全部
	Export(ctx context.Context, position string) ([]byte, error)
	Count(ctx context.Context) (int64, error)
}

type applicationService struct {
	repo          repository.ApplicationRepository
	storage       storage.ResumeStorage
	producer      event.ApplicationEventProducer
	maxResumeSize int64
	logger        *elog.Component
	nowFunc       func() time.Time
}

func NewApplicationService(repo repository.ApplicationRepository,
	st storage.ResumeStorage,
	producer event.ApplicationEventProducer,
	maxResumeSize int64) ApplicationService {
	if maxResumeSize <= 0 {
		maxResumeSize = DefaultMaxResumeSize
	}
	return &applicationService{
		repo:          repo,
		storage:       st,
		producer:      producer,
		maxResumeSize: maxResumeSize,
		logger:        elog.DefaultLogger,
		nowFunc:       time.Now,
	}
}

func (s *applicationService) Submit(ctx context.Context, app domain.Application, resume domain.Resume) (domain.Application, error) {
	if err := s.validate(app, resume); err != nil {
		return domain.Application{}, err
	}
	if strings.TrimSpace(app.Position) == "" {
		app.Position = domain.DefaultPosition
	}
	if !app.HasReferral {
		app.ReferralName, app.ReferralEmail = "", ""
	}
	name, err := s.storage.Save(ctx, resume.Filename, resume.Content)
	if err != nil {
		return domain.Application{}, errors.Wrap(err, "保存简历失败")
	}
	app.ResumeFile = name
	app.Status = domain.StatusPending
	app.AppliedDate = s.nowFunc()
	app.ID, err = s.repo.Create(ctx, app)
	if err != nil {
		if delErr := s.storage.Delete(ctx, name); delErr != nil {
			s.logger.Warn("清理简历失败", elog.String("file", name), elog.FieldErr(delErr))
		}
		return domain.Application{}, errors.Wrap(err, "保存投递失败")
	}
	s.produce(ctx, event.ApplicationEvent{
		Type:          event.TypeSubmitted,
		ApplicationID: app.ID,
		Position:      app.Position,
		Email:         app.Email,
		Status:        string(app.Status),
	})
	return app, nil
}

func (s *applicationService) List(ctx context.Context, filter domain.Filter) ([]domain.Application, error) {
	return s.repo.Find(ctx, filter.Normalize())
}

func (s *applicationService) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.Application, error) {
	if !status.Valid() {
		return domain.Application{}, ErrInvalidStatus
	}
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, err
	}
	if err = s.repo.UpdateStatus(ctx, id, status); err != nil {
		return domain.Application{}, errors.Wrap(err, "更新投递状态失败")
	}
	app.Status = status
	s.produce(ctx, event.ApplicationEvent{
		Type:          event.TypeStatusChanged,
		ApplicationID: id,
		Position:      app.Position,
		Email:         app.Email,
		Status:        string(status),
	})
	return app, nil
}

func (s *applicationService) Delete(ctx context.Context, id int64) error {
	app, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.repo.Delete(ctx, id); err != nil {
		return err
	}
	// 简历删不掉不影响结果，定时任务会兜底
	if app.ResumeFile != "" {
		if err = s.storage.Delete(ctx, app.ResumeFile); err != nil {
			s.logger.Warn("删除简历失败", elog.Any("id", id), elog.String("file", app.ResumeFile), elog.FieldErr(err))
		}
	}
	s.produce(ctx, event.ApplicationEvent{
		Type:          event.TypeDeleted,
		ApplicationID: id,
		Position:      app.Position,
	})
	return nil
}

func (s *applicationService) Statistics(ctx context.Context) (domain.Statistics, error) {
	return s.repo.Statistics(ctx, recentLimit)
}

func (s *applicationService) Export(ctx context.Context, position string) ([]byte, error) {
	apps, err := s.repo.Find(ctx, domain.Filter{Position: position}.Normalize())
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, ErrNoData
	}
	return buildWorkbook(apps)
}

func (s *applicationService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *applicationService) produce(ctx context.Context, evt event.ApplicationEvent) {
	evt.Time = s.nowFunc().UnixMilli()
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送投递事件失败",
			elog.String("type", evt.Type),
			elog.Any("id", evt.ApplicationID),
			elog.FieldErr(err))
	}
}

func (s *applicationService) validate(app domain.Application, resume domain.Resume) error {
	if resume.Content == nil || resume.Filename == "" {
		return InvalidApplicationError{Reason: "Resume file is required"}
	}
	if _, ok := allowedResumes[resume.Ext()]; !ok {
		return InvalidApplicationError{Reason: "Only PDF, DOC, DOCX allowed"}
	}
	if resume.Size <= 0 {
		return InvalidApplicationError{Reason: "Resume file is empty"}
	}
	if resume.Size > s.maxResumeSize {
		return InvalidApplicationError{Reason: "File size must be under " + sizeLabel(s.maxResumeSize)}
	}
	if strings.TrimSpace(app.Name) == "" {
		return InvalidApplicationError{Reason: "Name is required"}
	}
	if !emailRegexp.MatchString(app.Email) {
		return InvalidApplicationError{Reason: "Invalid email format"}
	}
	if app.HasReferral {
		if strings.TrimSpace(app.ReferralName) == "" {
			return InvalidApplicationError{Reason: "Referral name is required"}
		}
		if !emailRegexp.MatchString(app.ReferralEmail) {
			return InvalidApplicationError{Reason: "Invalid referral email"}
		}
	}
	return nil
}

// sizeLabel 不足 1MB 的上限用 KB 表示
func sizeLabel(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<10:
		return fmt.Sprintf("%dKB", n>>10)
	default:
		return fmt.Sprintf("%d bytes", n)
	}
}
