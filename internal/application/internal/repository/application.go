package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/jobportal/internal/application/internal/domain"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository/dao"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

//go:generate mockgen -source=./application.go -destination=./mocks/application.mock.go -package=repomocks ApplicationRepository
type ApplicationRepository interface {
	Create(ctx context.Context, a domain.Application) (int64, error)
	FindByID(ctx context.Context, id int64) (domain.Application, error)
	Find(ctx context.Context, filter domain.Filter) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	Delete(ctx context.Context, id int64) error
	Statistics(ctx context.Context, recent int) (domain.Statistics, error)
	Count(ctx context.Context) (int64, error)
	ResumeFiles(ctx context.Context) ([]string, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, a domain.Application) (int64, error) {
	return r.dao.Insert(ctx, r.domainToEntity(a))
}

func (r *applicationRepository) FindByID(ctx context.Context, id int64) (domain.Application, error) {
	entity, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return r.entityToDomain(entity), nil
}

func (r *applicationRepository) Find(ctx context.Context, filter domain.Filter) ([]domain.Application, error) {
	entities, err := r.dao.Find(ctx, dao.ApplicationFilter{
		Position: filter.Position,
		Status:   filter.Status,
	})
	if err != nil {
		return nil, err
	}
	return r.toDomains(entities), nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	_, err := r.dao.UpdateStatus(ctx, id, string(status), time.Now().UnixMilli())
	return err
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	rows, err := r.dao.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) Statistics(ctx context.Context, recent int) (domain.Statistics, error) {
	total, err := r.dao.Count(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	byStatus, err := r.dao.CountByStatus(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	byPosition, err := r.dao.CountByPosition(ctx)
	if err != nil {
		return domain.Statistics{}, err
	}
	latest, err := r.dao.Recent(ctx, recent)
	if err != nil {
		return domain.Statistics{}, err
	}
	res := domain.Statistics{
		Total:      total,
		ByStatus:   make(map[domain.Status]int64, len(domain.Statuses)),
		ByPosition: make(map[string]int64, len(byPosition)),
		Recent:     r.toDomains(latest),
	}
	for _, s := range domain.Statuses {
		res.ByStatus[s] = 0
	}
	for _, g := range byStatus {
		res.ByStatus[domain.Status(g.Name).OrDefault()] += g.Cnt
	}
	for _, g := range byPosition {
		res.ByPosition[g.Name] += g.Cnt
	}
	return res, nil
}

func (r *applicationRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *applicationRepository) ResumeFiles(ctx context.Context) ([]string, error) {
	return r.dao.ResumeFiles(ctx)
}

func (r *applicationRepository) toDomains(entities []dao.Application) []domain.Application {
	res := make([]domain.Application, 0, len(entities))
	for _, e := range entities {
		res = append(res, r.entityToDomain(e))
	}
	return res
}

func (r *applicationRepository) domainToEntity(a domain.Application) dao.Application {
	applied := a.AppliedDate.UnixMilli()
	return dao.Application{
		Id:            a.ID,
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
		Status:        string(a.Status),
		Ctime:         applied,
		Utime:         applied,
	}
}

func (r *applicationRepository) entityToDomain(a dao.Application) domain.Application {
	return domain.Application{
		ID:            a.Id,
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
		Status:        domain.Status(a.Status).OrDefault(),
		AppliedDate:   time.UnixMilli(a.Ctime),
	}
}
