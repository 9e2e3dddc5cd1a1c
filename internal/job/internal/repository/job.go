package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

//go:generate mockgen -source=./job.go -destination=./mocks/job.mock.go -package=repomocks JobRepository
type JobRepository interface {
	Create(ctx context.Context, job domain.Job) (int64, error)
	Update(ctx context.Context, job domain.Job) error
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (domain.Job, error)
	Find(ctx context.Context, filter domain.Filter) ([]domain.Job, error)
	Count(ctx context.Context) (int64, error)
	BatchCreate(ctx context.Context, jobs []domain.Job) error
}

// CachedJobRepository 详情走缓存，任何写操作之后都删除缓存
type CachedJobRepository struct {
	dao    dao.JobDAO
	cache  cache.JobCache
	logger *elog.Component
}

func NewCachedJobRepository(d dao.JobDAO, c cache.JobCache) JobRepository {
	return &CachedJobRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *CachedJobRepository) Create(ctx context.Context, job domain.Job) (int64, error) {
	return r.dao.Create(ctx, r.domainToEntity(job))
}

func (r *CachedJobRepository) BatchCreate(ctx context.Context, jobs []domain.Job) error {
	entities := slice.Map(jobs, func(idx int, src domain.Job) dao.Job {
		return r.domainToEntity(src)
	})
	return r.dao.BatchCreate(ctx, entities)
}

func (r *CachedJobRepository) Update(ctx context.Context, job domain.Job) error {
	err := r.dao.Update(ctx, r.domainToEntity(job))
	if err != nil {
		return err
	}
	r.evict(ctx, job.ID)
	return nil
}

func (r *CachedJobRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	err := r.dao.UpdateStatus(ctx, id, string(status))
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *CachedJobRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	if rows == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *CachedJobRepository) FindByID(ctx context.Context, id int64) (domain.Job, error) {
	job, err := r.cache.Get(ctx, id)
	if err == nil {
		return job, nil
	}
	if !errors.Is(err, cache.ErrJobNotFound) {
		r.logger.Warn("查询职位缓存失败", elog.Any("id", id), elog.FieldErr(err))
	}
	entity, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	if err != nil {
		return domain.Job{}, err
	}
	job = r.entityToDomain(entity)
	if err = r.cache.Set(ctx, job); err != nil {
		r.logger.Warn("回写职位缓存失败", elog.Any("id", id), elog.FieldErr(err))
	}
	return job, nil
}

func (r *CachedJobRepository) Find(ctx context.Context, filter domain.Filter) ([]domain.Job, error) {
	entities, err := r.dao.Find(ctx, dao.JobFilter{
		Type:       filter.Type,
		Experience: filter.Experience,
		Status:     filter.Status,
	})
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Job) domain.Job {
		return r.entityToDomain(src)
	}), nil
}

func (r *CachedJobRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *CachedJobRepository) evict(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Warn("删除职位缓存失败", elog.Any("id", id), elog.FieldErr(err))
	}
}

func (r *CachedJobRepository) domainToEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:               j.ID,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             string(j.Type),
		Experience:       j.Experience,
		Salary:           j.Salary,
		Description:      j.Description,
		Responsibilities: stringsColumn(j.Responsibilities),
		Requirements:     stringsColumn(j.Requirements),
		Skills:           stringsColumn(j.Skills),
		Benefits:         stringsColumn(j.Benefits),
		Status:           string(j.Status),
		Ctime:            j.Ctime,
		Utime:            j.Utime,
	}
}

func (r *CachedJobRepository) entityToDomain(j dao.Job) domain.Job {
	return domain.Job{
		ID:               j.Id,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             domain.Type(j.Type),
		Experience:       j.Experience,
		Salary:           j.Salary,
		Description:      j.Description,
		Responsibilities: nonNil(j.Responsibilities.Val),
		Requirements:     nonNil(j.Requirements.Val),
		Skills:           nonNil(j.Skills.Val),
		Benefits:         nonNil(j.Benefits.Val),
		Status:           domain.Status(j.Status),
		Ctime:            j.Ctime,
		Utime:            j.Utime,
	}
}

// stringsColumn 空列表也存成 []，读出来不会是 null
func stringsColumn(s []string) sqlx.JsonColumn[[]string] {
	return sqlx.JsonColumn[[]string]{Val: nonNil(s), Valid: true}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
