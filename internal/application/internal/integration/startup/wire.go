package startup

import (
	"time"

	"github.com/ecodeclub/jobportal/internal/application"
	testioc "github.com/ecodeclub/jobportal/internal/test/ioc"
)

func InitModule(uploadDir string) (*application.Module, error) {
	return application.InitModule(testioc.InitDB(), testioc.InitMQ(), application.Config{
		UploadDir:  uploadDir,
		SweepGrace: time.Hour,
	})
}
