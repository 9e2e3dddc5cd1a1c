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

package ectx

import "context"

type adminContextType string

var (
	adminCtxKey adminContextType = "admin"
)

// AdminFromCtx 取出登录的管理员用户名
func AdminFromCtx(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(adminCtxKey).(string)
	return v, ok && v != ""
}

func CtxWithAdmin(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, adminCtxKey, username)
}
