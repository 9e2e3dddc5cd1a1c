//go:build wireinject

package application

import (
	"sync"
	"time"

	"github.com/ecodeclub/jobportal/internal/application/internal/event"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository/dao"
	"github.com/ecodeclub/jobportal/internal/application/internal/repository/storage"
	"github.com/ecodeclub/jobportal/internal/application/internal/service"
	"github.com/ecodeclub/jobportal/internal/application/internal/web"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	InitTablesOnce,
	repository.NewApplicationRepository,
	initResumeStorage,
	event.NewApplicationEventProducer,
	initService,
	initSweepJob,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, q mq.MQ, cfg Config) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}

func initResumeStorage(cfg Config) (storage.ResumeStorage, error) {
	return storage.NewLocalResumeStorage(cfg.UploadDir)
}

func initService(repo repository.ApplicationRepository,
	st storage.ResumeStorage,
	producer event.ApplicationEventProducer,
	cfg Config) service.ApplicationService {
	return service.NewApplicationService(repo, st, producer, cfg.MaxResumeSize)
}

func initSweepJob(repo repository.ApplicationRepository, st storage.ResumeStorage, cfg Config) *service.ResumeSweepJob {
	grace := cfg.SweepGrace
	if grace <= 0 {
		grace = time.Hour
	}
	return service.NewResumeSweepJob(repo, st, grace)
}
