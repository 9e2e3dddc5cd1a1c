package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ecodeclub/ecache"
	eredis "github.com/ecodeclub/ecache/redis"
	"github.com/ecodeclub/jobportal/internal/job/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobECache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewJobECache(&ecache.NamespaceCache{
		C:         eredis.NewCache(client),
		Namespace: "jobportal:",
	})
	ctx := context.Background()

	_, err := c.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrJobNotFound)

	job := domain.Job{
		ID:      1,
		Title:   "Backend Engineer",
		Company: "Acme",
		Type:    domain.TypeFullTime,
		Skills:  []string{"Go"},
		Status:  domain.StatusActive,
	}
	require.NoError(t, c.Set(ctx, job))
	got, err := c.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, job, got)
	assert.Equal(t, jobExpiration, mr.TTL("jobportal:job:1"))

	mr.FastForward(jobExpiration + time.Second)
	_, err = c.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrJobNotFound)

	require.NoError(t, c.Set(ctx, job))
	require.NoError(t, c.Delete(ctx, 1))
	_, err = c.Get(ctx, 1)
	assert.ErrorIs(t, err, ErrJobNotFound)

	// 删除不存在的 key 不算错误
	require.NoError(t, c.Delete(ctx, 2))
}
