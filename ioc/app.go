package ioc

import (
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/server/egin"
	"github.com/gotomicro/ego/task/ecron"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Web   *egin.Component
	Crons []ecron.Ecron
	Job   *job.Module
	MQ    mq.MQ
	Redis redis.Cmdable
}
