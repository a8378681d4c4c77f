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
	"testing"

	"github.com/ecodeclub/ecache/memory/lru"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyECache_Seen(t *testing.T) {
	ctx := context.Background()
	c := NewIdempotencyECache(lru.NewCache(16))
	ok, err := c.Mark(ctx, 7, 1, "k")
	require.NoError(t, err)
	require.True(t, ok)

	testCases := []struct {
		name     string
		uid      int64
		sid      int64
		key      string
		wantSeen bool
	}{
		{
			name:     "同一份答卷同一个 key",
			uid:      7,
			sid:      1,
			key:      "k",
			wantSeen: true,
		},
		{
			name: "同一个 key 用在另一份答卷",
			uid:  7,
			sid:  2,
			key:  "k",
		},
		{
			name: "别的候选人",
			uid:  8,
			sid:  1,
			key:  "k",
		},
		{
			name: "不同的 key",
			uid:  7,
			sid:  1,
			key:  "k2",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			seen, err := c.Seen(ctx, tc.uid, tc.sid, tc.key)
			require.NoError(t, err)
			assert.Equal(t, tc.wantSeen, seen)
		})
	}

	// 只能标记一次
	ok, err = c.Mark(ctx, 7, 1, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
