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
	"github.com/ecodeclub/jobportal/internal/admin"
	"github.com/ecodeclub/jobportal/internal/application"
	"github.com/ecodeclub/jobportal/internal/pkg/token"
	"github.com/gotomicro/ego/core/econf"
)

const tokenIssuer = "jobportal"

func InitAdminConfig() admin.Config {
	var cfg admin.Config
	if err := econf.UnmarshalKey("admin", &cfg); err != nil {
		panic(err)
	}
	if cfg.Username == "" || cfg.Password == "" || cfg.TokenKey == "" {
		panic("admin 的账号、密码和 tokenKey 必须配置")
	}
	return cfg
}

// InitJWTToken 签发和校验共用同一个 key
func InitJWTToken(cfg admin.Config) *token.JWTToken {
	return token.NewJWTToken(tokenIssuer, cfg.TokenKey)
}

func InitResumeConfig() application.Config {
	var cfg application.Config
	if err := econf.UnmarshalKey("resume", &cfg); err != nil {
		panic(err)
	}
	if cfg.UploadDir == "" {
		cfg.UploadDir = "uploads/resumes"
	}
	return cfg
}
