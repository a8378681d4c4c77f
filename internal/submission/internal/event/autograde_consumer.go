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

package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ecodeclub/hirebook/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./autograde_consumer.go -package=evtmocks -destination=mocks/autograde_consumer.mock.go AutoGrader
type AutoGrader interface {
	AutoGrade(ctx context.Context, sid int64) error
}

// AutoGradeConsumer 答卷提交之后自动评分，失败了由定时任务兜底
type AutoGradeConsumer struct {
	grader   AutoGrader
	consumer mq.Consumer
	logger   *elog.Component
}

func NewAutoGradeConsumer(grader AutoGrader, q mq.MQ) (*AutoGradeConsumer, error) {
	const groupID = "submission_autograde"
	consumer, err := q.Consumer(SubmissionEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &AutoGradeConsumer{
		grader:   grader,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *AutoGradeConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("自动评分失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *AutoGradeConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	ctx = mqx.ContextFromMessage(ctx, msg)
	var evt SubmissionEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Action != ActionSubmitted {
		return nil
	}
	err = c.grader.AutoGrade(ctx, evt.SubmissionId)
	if err != nil {
		return fmt.Errorf("答卷 %d 自动评分失败: %w", evt.SubmissionId, err)
	}
	return nil
}

func (c *AutoGradeConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
