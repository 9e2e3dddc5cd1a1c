package service

import (
	"context"

	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository"
	"github.com/pkg/errors"
)

var ErrJobNotFound = repository.ErrJobNotFound

// InvalidJobError 职位数据不合法，Reason 会直接返回给前端
type InvalidJobError struct {
	Reason string
}

func (e InvalidJobError) Error() string {
	return e.Reason
}

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks JobService
type JobService interface {
	List(ctx context.Context, filter domain.Filter) ([]domain.Job, error)
	Detail(ctx context.Context, id int64) (domain.Job, error)
	Create(ctx context.Context, job domain.Job) (domain.Job, error)
	Update(ctx context.Context, job domain.Job) (domain.Job, error)
	Delete(ctx context.Context, id int64) error
	ToggleStatus(ctx context.Context, id int64) (domain.Job, error)
	// Seed 在职位表为空的时候写入示例数据，返回写入的条数
	Seed(ctx context.Context, jobs []domain.Job) (int, error)
}

type jobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{
		repo: repo,
	}
}

func (s *jobService) List(ctx context.Context, filter domain.Filter) ([]domain.Job, error) {
	return s.repo.Find(ctx, filter.Normalize())
}

func (s *jobService) Detail(ctx context.Context, id int64) (domain.Job, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *jobService) Create(ctx context.Context, job domain.Job) (domain.Job, error) {
	job = job.Normalize()
	if err := s.validate(job); err != nil {
		return domain.Job{}, err
	}
	id, err := s.repo.Create(ctx, job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "创建职位失败")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *jobService) Update(ctx context.Context, job domain.Job) (domain.Job, error) {
	old, err := s.repo.FindByID(ctx, job.ID)
	if err != nil {
		return domain.Job{}, err
	}
	if job.Status == "" {
		job.Status = old.Status
	}
	job = job.Normalize()
	if err = s.validate(job); err != nil {
		return domain.Job{}, err
	}
	if err = s.repo.Update(ctx, job); err != nil {
		return domain.Job{}, errors.Wrap(err, "更新职位失败")
	}
	return s.repo.FindByID(ctx, job.ID)
}

func (s *jobService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *jobService) ToggleStatus(ctx context.Context, id int64) (domain.Job, error) {
	job, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	job.Status = job.Status.Toggle()
	if err = s.repo.UpdateStatus(ctx, id, job.Status); err != nil {
		return domain.Job{}, errors.Wrap(err, "切换职位状态失败")
	}
	return job, nil
}

func (s *jobService) Seed(ctx context.Context, jobs []domain.Job) (int, error) {
	cnt, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if cnt > 0 || len(jobs) == 0 {
		return 0, nil
	}
	normalized := make([]domain.Job, 0, len(jobs))
	for _, j := range jobs {
		normalized = append(normalized, j.Normalize())
	}
	err = s.repo.BatchCreate(ctx, normalized)
	if err != nil {
		return 0, err
	}
	return len(normalized), nil
}

func (s *jobService) validate(job domain.Job) error {
	if job.Title == "" || job.Company == "" {
		return InvalidJobError{Reason: "Title and company are required"}
	}
	if job.Type != "" && !job.Type.Valid() {
		return InvalidJobError{Reason: "Invalid job type"}
	}
	if !job.Status.Valid() {
		return InvalidJobError{Reason: "Invalid job status"}
	}
	return nil
}
