package dao

import (
	"context"

	"gorm.io/gorm"
)

type ApplicationDAO interface {
	Insert(ctx context.Context, a Application) (int64, error)
	FindByID(ctx context.Context, id int64) (Application, error)
	Find(ctx context.Context, filter ApplicationFilter) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string, utime int64) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]GroupCount, error)
	CountByPosition(ctx context.Context) ([]GroupCount, error)
	Recent(ctx context.Context, limit int) ([]Application, error)
	ResumeFiles(ctx context.Context) ([]string, error)
}

type ApplicationFilter struct {
	Position string
	Status   string
}

type GroupCount struct {
	Name string
	Cnt  int64
}

type GORMApplicationDAO struct {
	db *gorm.DB
}

func NewGORMApplicationDAO(db *gorm.DB) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Insert(ctx context.Context, a Application) (int64, error) {
	err := d.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (d *GORMApplicationDAO) FindByID(ctx context.Context, id int64) (Application, error) {
	var a Application
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&a).Error
	return a, err
}

func (d *GORMApplicationDAO) Find(ctx context.Context, filter ApplicationFilter) ([]Application, error) {
	var res []Application
	db := d.db.WithContext(ctx)
	if filter.Position != "" {
		db = db.Where("position = ?", filter.Position)
	}
	if filter.Status != "" {
		// 历史数据可能没有状态，按 Pending 处理
		if filter.Status == "Pending" {
			db = db.Where("(status = ? OR status = '')", filter.Status)
		} else {
			db = db.Where("status = ?", filter.Status)
		}
	}
	err := db.Order("id DESC").Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string, utime int64) (int64, error) {
	res := d.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  utime,
		})
	return res.RowsAffected, res.Error
}

func (d *GORMApplicationDAO) Delete(ctx context.Context, id int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("id = ?", id).Delete(&Application{})
	return res.RowsAffected, res.Error
}

func (d *GORMApplicationDAO) Count(ctx context.Context) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Application{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMApplicationDAO) CountByStatus(ctx context.Context) ([]GroupCount, error) {
	var res []GroupCount
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("status AS name, COUNT(*) AS cnt").
		Group("status").Scan(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) CountByPosition(ctx context.Context) ([]GroupCount, error) {
	var res []GroupCount
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("position AS name, COUNT(*) AS cnt").
		Group("position").Scan(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) Recent(ctx context.Context, limit int) ([]Application, error) {
	var res []Application
	err := d.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) ResumeFiles(ctx context.Context) ([]string, error) {
	var res []string
	err := d.db.WithContext(ctx).Model(&Application{}).Pluck("resume_file", &res).Error
	return res, err
}

type Application struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Name     string `gorm:"type:varchar(256)"`
	Email    string `gorm:"type:varchar(256)"`
	Phone    string `gorm:"type:varchar(32)"`
	College  string `gorm:"type:varchar(256)"`
	Degree   string `gorm:"type:varchar(128)"`
	Year     string `gorm:"type:varchar(8)"`
	Skills   string `gorm:"type:text"`
	Position string `gorm:"type:varchar(256);index"`

	HasReferral   bool
	ReferralName  string `gorm:"type:varchar(256)"`
	ReferralEmail string `gorm:"type:varchar(256)"`

	ResumeFile string `gorm:"type:varchar(512)"`
	Status     string `gorm:"type:varchar(16);index"`
	// 投递时间，也是创建时间
	Ctime int64
	// 更新时间
	Utime int64
}
