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

package job

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ecodeclub/hirebook/internal/submission/internal/service"
	"github.com/gotomicro/ego/core/elog"
	"github.com/gotomicro/ego/task/ecron"
)

var _ ecron.NamedJob = (*AutoGradeJob)(nil)

// AutoGradeJob 兜底消息丢失或者消费失败的答卷
type AutoGradeJob struct {
	svc service.Service
	// 提交之后超过这个时间还没有自动评分的才处理，给消费者留出时间
	delay time.Duration
	limit int
	// 上一次扫描停下来的位置，失败的答卷不会一直占着队头
	cursor atomic.Int64
}

func NewAutoGradeJob(svc service.Service, delay time.Duration, limit int) *AutoGradeJob {
	return &AutoGradeJob{
		svc:   svc,
		delay: delay,
		limit: limit,
	}
}

func (j *AutoGradeJob) Name() string {
	return "AutoGradeJob"
}

func (j *AutoGradeJob) Run(ctx context.Context) error {
	before := time.Now().Add(-j.delay).UnixMilli()
	next, cnt, err := j.svc.GradePending(ctx, before, j.cursor.Load(), j.limit)
	if err != nil {
		return fmt.Errorf("查找未评分答卷失败: %w", err)
	}
	j.cursor.Store(next)
	elog.DefaultLogger.Debug("自动评分完成", elog.Int("count", cnt), elog.Int64("cursor", next))
	return nil
}
