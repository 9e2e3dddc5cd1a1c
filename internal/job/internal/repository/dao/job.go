package dao

import (
	"context"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"gorm.io/gorm"
)

type JobDAO interface {
	Create(ctx context.Context, j Job) (int64, error)
	Update(ctx context.Context, j Job) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) (int64, error)
	FindByID(ctx context.Context, id int64) (Job, error)
	Find(ctx context.Context, filter JobFilter) ([]Job, error)
	Count(ctx context.Context) (int64, error)
	BatchCreate(ctx context.Context, jobs []Job) error
}

type JobFilter struct {
	Type       string
	Experience string
	Status     string
}

type GORMJobDAO struct {
	db *gorm.DB
}

func NewGORMJobDAO(db *gorm.DB) JobDAO {
	return &GORMJobDAO{
		db: db,
	}
}

func (d *GORMJobDAO) Create(ctx context.Context, j Job) (int64, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Create(&j).Error
	return j.Id, err
}

func (d *GORMJobDAO) BatchCreate(ctx context.Context, jobs []Job) error {
	now := time.Now().UnixMilli()
	for i := range jobs {
		jobs[i].Ctime = now
		jobs[i].Utime = now
	}
	return d.db.WithContext(ctx).Create(&jobs).Error
}

func (d *GORMJobDAO) Update(ctx context.Context, j Job) error {
	return d.db.WithContext(ctx).Model(&Job{}).Where("id = ?", j.Id).
		Updates(map[string]any{
			"title":            j.Title,
			"company":          j.Company,
			"location":         j.Location,
			"type":             j.Type,
			"experience":       j.Experience,
			"salary":           j.Salary,
			"description":      j.Description,
			"responsibilities": j.Responsibilities,
			"requirements":     j.Requirements,
			"skills":           j.Skills,
			"benefits":         j.Benefits,
			"status":           j.Status,
			"utime":            time.Now().UnixMilli(),
		}).Error
}

func (d *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return d.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (d *GORMJobDAO) Delete(ctx context.Context, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Job{})
	return res.RowsAffected, res.Error
}

func (d *GORMJobDAO) FindByID(ctx context.Context, id int64) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *GORMJobDAO) Find(ctx context.Context, filter JobFilter) ([]Job, error) {
	var jobs []Job
	db := d.db.WithContext(ctx)
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	if filter.Experience != "" {
		// 子串匹配，关键字里的 % 和 _ 按字面量处理
		db = db.Where("INSTR(LOWER(experience), ?) > 0", strings.ToLower(filter.Experience))
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	err := db.Order("id DESC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := d.db.WithContext(ctx).Model(&Job{}).Count(&count).Error
	return count, err
}

type Job struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Title       string `gorm:"type:varchar(256);not null"`
	Company     string `gorm:"type:varchar(256);not null"`
	Location    string `gorm:"type:varchar(256)"`
	Type        string `gorm:"type:varchar(32);index"`
	Experience  string `gorm:"type:varchar(128)"`
	Salary      string `gorm:"type:varchar(128)"`
	Description string `gorm:"type:text"`

	Responsibilities sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Requirements     sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Skills           sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Benefits         sqlx.JsonColumn[[]string] `gorm:"type:json"`

	Status string `gorm:"type:varchar(16);index"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
