package startup

import (
	"github.com/ecodeclub/jobportal/internal/job"
	testioc "github.com/ecodeclub/jobportal/internal/test/ioc"
)

func InitModule() (*job.Module, error) {
	return job.InitModule(testioc.InitDB(), testioc.InitCache())
}
