// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ioc

import (
	"context"
	"time"

	"github.com/ecodeclub/jobportal/config"
	"github.com/ecodeclub/jobportal/internal/application"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

const sweepCronKey = "cron.resumeSweep"

func initCronJobs(appModule *application.Module) []ecron.Ecron {
	var cfg config.CronJobConfig
	if err := econf.UnmarshalKey(sweepCronKey, &cfg); err != nil {
		panic(err)
	}
	// 没有配置 spec 就不启动
	if cfg.Spec == "" {
		return nil
	}
	return []ecron.Ecron{
		ecron.Load(sweepCronKey).Build(ecron.WithJob(funcJobWrapper(appModule.SweepJob, cfg.Timeout))),
	}
}

// funcJobWrapper 给单次运行加上超时，并记录耗时和错误
func funcJobWrapper(job ecron.NamedJob, timeout time.Duration) ecron.FuncJob {
	name := job.Name()
	if timeout <= 0 {
		timeout = time.Minute
	}
	return func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		start := time.Now()
		elog.DefaultLogger.Debug("开始运行",
			elog.String("cronjob", name))
		err := job.Run(ctx)
		if err != nil {
			elog.DefaultLogger.Error("执行失败",
				elog.FieldErr(err),
				elog.String("cronjob", name))
			return err
		}
		elog.DefaultLogger.Debug("结束运行",
			elog.String("cronjob", name),
			elog.FieldKey("运行时间"),
			elog.FieldCost(time.Since(start)))
		return nil
	}
}
