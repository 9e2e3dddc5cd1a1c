package service

import (
	"context"
	"time"

	"github.com/ecodeclub/jobportal/internal/application/internal/repository"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository/storage"
	"github.com/gotomicro/ego/core/elog"
)

// ResumeSweepJob 清理没有对应投递记录的简历文件。
// 删除投递时简历删除失败、或者写库失败留下的文件都会在这里被清理
type ResumeSweepJob struct {
	repo    repository.ApplicationRepository
	storage storage.ResumeStorage
	// 只清理早于 grace 的文件，避免误删正在投递的简历
	grace   time.Duration
	nowFunc func() time.Time
	logger  *elog.Component
}

func NewResumeSweepJob(repo repository.ApplicationRepository, st storage.ResumeStorage, grace time.Duration) *ResumeSweepJob {
	return &ResumeSweepJob{
		repo:    repo,
		storage: st,
		grace:   grace,
		nowFunc: time.Now,
		logger:  elog.DefaultLogger,
	}
}

func (j *ResumeSweepJob) Name() string {
	return "resume_sweep"
}

func (j *ResumeSweepJob) Run(ctx context.Context) error {
	files, err := j.storage.List(ctx)
	if err != nil {
		return err
	}
	referenced, err := j.repo.ResumeFiles(ctx)
	if err != nil {
		return err
	}
	used := make(map[string]struct{}, len(referenced))
	for _, f := range referenced {
		used[f] = struct{}{}
	}
	deadline := j.nowFunc().Add(-j.grace)
	removed := 0
	for name, mtime := range files {
		if _, ok := used[name]; ok || mtime.After(deadline) {
			continue
		}
		if err = j.storage.Delete(ctx, name); err != nil {
			j.logger.Warn("清理简历失败", elog.String("file", name), elog.FieldErr(err))
			continue
		}
		removed++
	}
	if removed > 0 {
		j.logger.Info("清理孤立简历", elog.Int("count", removed))
	}
	return nil
}
