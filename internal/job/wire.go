//go:build wireinject

package job

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/cache"
	"github.com/ecodeclub/jobportal/internal/job/internal/repository/dao"
	"github.com/ecodeclub/jobportal/internal/job/internal/service"
	"github.com/ecodeclub/jobportal/internal/job/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	InitTablesOnce,
	cache.NewJobECache,
	repository.NewCachedJobRepository,
	service.NewJobService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMJobDAO(db)
}
