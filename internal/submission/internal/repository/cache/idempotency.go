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

package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/pkg/errors"
)

// IdempotencyCache 记录已经处理过的提交请求
//
//go:generate mockgen -source=./idempotency.go -package=cachemocks -destination=mocks/idempotency.mock.go IdempotencyCache
type IdempotencyCache interface {
	// Seen 这个 key 是否已经成功提交过这份答卷
	Seen(ctx context.Context, uid, sid int64, key string) (bool, error)
	// Mark 返回 false 表示别的请求已经标记过了
	Mark(ctx context.Context, uid, sid int64, key string) (bool, error)
}

type IdempotencyECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewIdempotencyECache(c ecache.Cache) IdempotencyCache {
	return &IdempotencyECache{
		cache: &ecache.NamespaceCache{
			Namespace: "submission:submit:",
			C:         c,
		},
		expiration: time.Hour * 24,
	}
}

func (c *IdempotencyECache) Seen(ctx context.Context, uid, sid int64, key string) (bool, error) {
	val := c.cache.Get(ctx, c.key(uid, sid, key))
	if val.KeyNotFound() {
		return false, nil
	}
	if val.Err != nil {
		return false, errors.Wrap(val.Err, "查询幂等键失败")
	}
	return true, nil
}

func (c *IdempotencyECache) Mark(ctx context.Context, uid, sid int64, key string) (bool, error) {
	ok, err := c.cache.SetNX(ctx, c.key(uid, sid, key), sid, c.expiration)
	return ok, errors.Wrap(err, "写入幂等键失败")
}

// key 带上答卷 ID，复用在别的答卷上的 key 不算重复提交
func (c *IdempotencyECache) key(uid, sid int64, key string) string {
	return fmt.Sprintf("%d:%d:%s", uid, sid, key)
}
