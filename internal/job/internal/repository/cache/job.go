package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/pkg/errors"
)

const (
	jobExpiration = 10 * time.Minute
)

var (
	ErrJobNotFound = errors.New("职位缓存不存在")
)

type JobCache interface {
	Get(ctx context.Context, id int64) (domain.Job, error)
	Set(ctx context.Context, job domain.Job) error
	Delete(ctx context.Context, id int64) error
}

type JobECache struct {
	ec ecache.Cache
}

func NewJobECache(ec ecache.Cache) JobCache {
	return &JobECache{
		ec: &ecache.NamespaceCache{
			Namespace: "job:",
			C:         ec,
		},
	}
}

func (c *JobECache) Get(ctx context.Context, id int64) (domain.Job, error) {
	val := c.ec.Get(ctx, c.key(id))
	if val.KeyNotFound() {
		return domain.Job{}, ErrJobNotFound
	}
	if val.Err != nil {
		return domain.Job{}, errors.Wrap(val.Err, "查询缓存出错")
	}
	var job domain.Job
	err := json.Unmarshal([]byte(val.Val.(string)), &job)
	if err != nil {
		return domain.Job{}, errors.Wrap(err, "反序列化职位失败")
	}
	return job, nil
}

func (c *JobECache) Set(ctx context.Context, job domain.Job) error {
	val, err := json.Marshal(job)
	if err != nil {
		return errors.Wrap(err, "序列化职位失败")
	}
	return c.ec.Set(ctx, c.key(job.ID), string(val), jobExpiration)
}

func (c *JobECache) Delete(ctx context.Context, id int64) error {
	_, err := c.ec.Delete(ctx, c.key(id))
	return err
}

// 注意 Namespace 设置
func (c *JobECache) key(id int64) string {
	return fmt.Sprintf("%d", id)
}
