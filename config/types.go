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

package config

import "time"

// 各个 key 对应的配置结构，ioc 里按需 UnmarshalKey

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type KafkaConfig struct {
	Network   string   `yaml:"network"`
	Addresses []string `yaml:"addresses"`
	Topics    []struct {
		Name       string `yaml:"name"`
		Partitions int    `yaml:"partitions"`
	} `yaml:"topics"`
}

type CORSConfig struct {
	// AllowOrigins 为空时只允许 localhost
	AllowOrigins []string `yaml:"allowOrigins"`
}

// CronJobConfig 定时任务除了 ecron 自己的配置之外，额外的单次运行超时
type CronJobConfig struct {
	Spec    string        `yaml:"spec"`
	Timeout time.Duration `yaml:"timeout"`
}

type JobConfig struct {
	// Seed 为 true 时，职位表为空就写入示例职位
	Seed bool `yaml:"seed"`
}
