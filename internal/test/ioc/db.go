package testioc

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/jobportal/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db       *egorm.Component
	dbOnce   sync.Once
	loadOnce sync.Once
)

func InitDB() *egorm.Component {
	dbOnce.Do(func() {
		LoadConfig()
		ioc.WaitForDBSetup(econf.GetStringMapString("mysql")["dsn"])
		db = egorm.Load("mysql").Build()
	})
	return db
}

// LoadConfig 加载仓库根目录下的 config/local.yaml
func LoadConfig() {
	loadOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
	})
}

func loadConfig() error {
	content, err := os.ReadFile(filepath.Join(projectRoot(), "config", "local.yaml"))
	if err != nil {
		return err
	}
	return econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
}

func projectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			panic("找不到 go.mod")
		}
		dir = parent
	}
}
