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

package snowflake

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 32,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "最大的nodeId",
			nodeId:      31,
			wantErrFunc: require.NoError,
		},
		{
			name:        "生成正常",
			nodeId:      0,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNodeGenerator(tt.nodeId)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestNodeGenerator_Generate(t *testing.T) {
	testcases := []struct {
		name   string
		nodeId uint
		biz    Biz
	}{
		{
			name:   "职位",
			nodeId: 3,
			biz:    BizJob,
		},
		{
			name:   "答题记录",
			nodeId: 7,
			biz:    BizSubmission,
		},
		{
			name:   "默认业务",
			nodeId: 31,
			biz:    BizDefault,
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			gen, err := NewNodeGenerator(tc.nodeId)
			require.NoError(t, err)
			id, err := gen.Generate(tc.biz)
			require.NoError(t, err)
			assert.Equal(t, tc.biz, id.Biz())
			assert.Equal(t, tc.nodeId, id.Node())
			assert.True(t, id.Int64() > 0)
		})
	}
}

func TestNodeGenerator_GenerateUnknownBiz(t *testing.T) {
	gen, err := NewNodeGenerator(1)
	require.NoError(t, err)
	_, err = gen.Generate(Biz(32))
	assert.ErrorIs(t, err, ErrUnknownBiz)
}

func TestNodeGenerator_GenerateUnique(t *testing.T) {
	gen, err := NewNodeGenerator(1)
	require.NoError(t, err)
	const goroutines, each = 8, 1000
	var (
		mu   sync.Mutex
		ids  = make(map[ID]struct{}, goroutines*each)
		wg   sync.WaitGroup
		errs []error
	)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]ID, 0, each)
			for j := 0; j < each; j++ {
				id, err := gen.Generate(BizSubmission)
				if err != nil {
					mu.Lock()
					errs = append(errs, err)
					mu.Unlock()
					return
				}
				local = append(local, id)
			}
			mu.Lock()
			for _, id := range local {
				ids[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()
	require.Empty(t, errs)
	assert.Len(t, ids, goroutines*each)
}
