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

	"github.com/ecodeclub/hirebook/internal/assessment/internal/service"
	"github.com/ecodeclub/hirebook/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// JobDeletedConsumer 职位删除之后级联删除测评
type JobDeletedConsumer struct {
	svc      service.Service
	consumer mq.Consumer
	logger   *elog.Component
}

func NewJobDeletedConsumer(svc service.Service, q mq.MQ) (*JobDeletedConsumer, error) {
	const groupID = "assessment"
	consumer, err := q.Consumer(jobEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &JobDeletedConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *JobDeletedConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("级联删除测评失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *JobDeletedConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	ctx = mqx.ContextFromMessage(ctx, msg)
	var evt JobEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	if evt.Action != actionDeleted {
		return nil
	}
	err = c.svc.DeleteByJob(ctx, evt.Job.Id)
	if err != nil {
		return fmt.Errorf("删除职位 %d 的测评失败: %w", evt.Job.Id, err)
	}
	return nil
}

func (c *JobDeletedConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
