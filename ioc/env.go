package ioc

import (
	"os"
	"strconv"
	"strings"

	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/core/elog"
	"github.com/joho/godotenv"
)

// envOverrides 环境变量到配置项的映射，密钥一般只通过环境变量注入
var envOverrides = map[string]func(val string) (string, any){
	"MYSQL_DSN":      literal("mysql.dsn"),
	"REDIS_ADDR":     literal("redis.addr"),
	"REDIS_PASSWORD": literal("redis.password"),
	"ADMIN_USERNAME": literal("admin.username"),
	"ADMIN_PASSWORD": literal("admin.password"),
	"SECRET_KEY":     literal("admin.tokenKey"),
	"KAFKA_ADDR": func(val string) (string, any) {
		return "kafka.addresses", strings.Split(val, ",")
	},
	"PORT": func(val string) (string, any) {
		port, err := strconv.Atoi(val)
		if err != nil {
			elog.DefaultLogger.Warn("PORT 不是数字，忽略", elog.String("PORT", val))
			return "", nil
		}
		return "web.port", port
	},
}

func literal(key string) func(val string) (string, any) {
	return func(val string) (string, any) {
		return key, val
	}
}

// LoadEnv 先加载工作目录下的 .env，再用环境变量覆盖配置文件里的值。
// 必须在 ego.New 之后、InitApp 之前调用
func LoadEnv() {
	// .env 不存在也没关系
	_ = godotenv.Load()
	for name, fn := range envOverrides {
		val, ok := os.LookupEnv(name)
		if !ok || val == "" {
			continue
		}
		if key, v := fn(val); key != "" {
			econf.Set(key, v)
		}
	}
}
