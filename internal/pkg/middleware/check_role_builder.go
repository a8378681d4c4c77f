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

package middleware

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// RoleClaimKey 登录的时候写进 jwt 里面的角色
const RoleClaimKey = "role"

// CheckRoleMiddlewareBuilder 只放行指定角色，按路径前缀生效
type CheckRoleMiddlewareBuilder struct {
	sp     session.Provider
	logger *elog.Component
	// 路径前缀 => 允许的角色
	rules map[string][]string
}

func NewCheckRoleMiddlewareBuilder(sp session.Provider) *CheckRoleMiddlewareBuilder {
	return &CheckRoleMiddlewareBuilder{
		sp:     sp,
		logger: elog.DefaultLogger,
		rules:  make(map[string][]string, 4),
	}
}

func (b *CheckRoleMiddlewareBuilder) Prefix(prefix string, roles ...string) *CheckRoleMiddlewareBuilder {
	b.rules[prefix] = roles
	return b
}

func (b *CheckRoleMiddlewareBuilder) Build() gin.HandlerFunc {
	if b.sp == nil {
		b.sp = session.DefaultProvider()
	}
	return func(ctx *gin.Context) {
		roles, ok := b.match(ctx.Request.URL.Path)
		if !ok {
			return
		}
		gctx := &ginx.Context{Context: ctx}
		sess, err := b.sp.Get(gctx)
		if err != nil {
			b.logger.Debug("用户未登录", elog.FieldErr(err))
			ctx.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims := sess.Claims()
		role := claims.Get(RoleClaimKey).StringOrDefault("")
		for _, r := range roles {
			if r == role {
				return
			}
		}
		b.logger.Warn("角色不匹配",
			elog.Int64("uid", claims.Uid),
			elog.String("role", role),
			elog.String("path", ctx.Request.URL.Path))
		ctx.AbortWithStatus(http.StatusForbidden)
	}
}

func (b *CheckRoleMiddlewareBuilder) match(path string) ([]string, bool) {
	// 最长前缀优先
	var (
		best  string
		roles []string
	)
	for prefix, rs := range b.rules {
		if strings.HasPrefix(path, prefix) && len(prefix) > len(best) {
			best, roles = prefix, rs
		}
	}
	return roles, best != ""
}
