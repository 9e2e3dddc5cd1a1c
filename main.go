package main

import (
	"context"

	"github.com/ecodeclub/jobportal/config"
	"github.com/ecodeclub/jobportal/internal/job"
	"github.com/ecodeclub/jobportal/ioc"
	"github.com/gotomicro/ego"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
)

// export EGO_DEBUG=true
// 记得修改为你的配置文件
// go run main.go --config=config/config.yaml
func main() {
	// 先触发初始化
	egoApp := ego.New()
	ioc.LoadEnv()
	app, err := ioc.InitApp()
	if err != nil {
		panic(err)
	}
	defer closeApp(app)
	err = egoApp.
		// Invoker 在 Ego 里面，应该叫做初始化函数
		Invoker(func() error {
			return seedJobs(context.Background(), app.Job.Svc)
		}).
		Serve(app.Web).
		Cron(app.Crons...).
		Run()
	if err != nil {
		elog.DefaultLogger.Error("App运行错误", elog.FieldErr(err))
	}
}

// seedJobs 职位表为空时写入示例职位
func seedJobs(ctx context.Context, svc job.Service) error {
	var cfg config.JobConfig
	if err := econf.UnmarshalKey("job", &cfg); err != nil {
		return err
	}
	if !cfg.Seed {
		return nil
	}
	samples, err := job.SampleJobs()
	if err != nil {
		return err
	}
	n, err := svc.Seed(ctx, samples)
	if err != nil {
		return err
	}
	elog.DefaultLogger.Info("写入示例职位", elog.Int("count", n))
	return nil
}

func closeApp(app *ioc.App) {
	if closer, ok := app.MQ.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			elog.DefaultLogger.Error("关闭 MQ 失败", elog.FieldErr(err))
		}
	}
	if closer, ok := app.Redis.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
