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
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/hirebook/internal/assessment/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotFound = errors.New("缓存中没有测评")

//go:generate mockgen -source=./assessment.go -package=cachemocks -destination=mocks/assessment.mock.go AssessmentCache
type AssessmentCache interface {
	// GetTree 整棵测评树，包含 section 和 question
	GetTree(ctx context.Context, id int64) (domain.Assessment, error)
	SetTree(ctx context.Context, a domain.Assessment) error
	DelTree(ctx context.Context, id int64) error
}

type AssessmentECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewAssessmentECache(c ecache.Cache) AssessmentCache {
	return &AssessmentECache{
		cache: &ecache.NamespaceCache{
			Namespace: "assessment:",
			C:         c,
		},
		expiration: time.Hour,
	}
}

func (c *AssessmentECache) GetTree(ctx context.Context, id int64) (domain.Assessment, error) {
	val := c.cache.Get(ctx, c.treeKey(id))
	if val.KeyNotFound() {
		return domain.Assessment{}, ErrKeyNotFound
	}
	var a domain.Assessment
	err := val.JSONScan(&a)
	if err != nil {
		return domain.Assessment{}, errors.Wrapf(err, "解析测评缓存失败 id %d", id)
	}
	return a, nil
}

func (c *AssessmentECache) SetTree(ctx context.Context, a domain.Assessment) error {
	data, err := json.Marshal(a)
	if err != nil {
		return errors.Wrap(err, "序列化测评失败")
	}
	return c.cache.Set(ctx, c.treeKey(a.Id), data, c.expiration)
}

func (c *AssessmentECache) DelTree(ctx context.Context, id int64) error {
	_, err := c.cache.Delete(ctx, c.treeKey(id))
	return err
}

func (c *AssessmentECache) treeKey(id int64) string {
	return fmt.Sprintf("tree:%d", id)
}
