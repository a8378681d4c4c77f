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

	"github.com/ecodeclub/hirebook/internal/job/internal/repository"
	"github.com/ecodeclub/hirebook/internal/pkg/mqx"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// SyncConsumer 把职位同步到搜索引擎
type SyncConsumer struct {
	repo     repository.SearchRepository
	consumer mq.Consumer
	logger   *elog.Component
}

func NewSyncConsumer(repo repository.SearchRepository, q mq.MQ) (*SyncConsumer, error) {
	groupID := "job_search"
	consumer, err := q.Consumer(JobEventTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &SyncConsumer{
		repo:     repo,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (s *SyncConsumer) Start(ctx context.Context) {
	go func() {
		for {
			if ctx.Err() != nil {
				return
			}
			err := s.Consume(ctx)
			if err != nil {
				s.logger.Error("同步职位到搜索引擎失败", elog.FieldErr(err))
			}
		}
	}()
}

func (s *SyncConsumer) Consume(ctx context.Context) error {
	msg, err := s.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	ctx = mqx.ContextFromMessage(ctx, msg)
	var evt JobEvent
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	switch evt.Action {
	case ActionSaved:
		err = s.repo.Index(ctx, evt.Job.toDomain())
	case ActionDeleted:
		err = s.repo.Delete(ctx, evt.Job.Id)
	default:
		s.logger.Warn("未知的职位事件", elog.Any("event", evt))
		return nil
	}
	if err != nil {
		return fmt.Errorf("处理职位事件失败 id %d: %w", evt.Job.Id, err)
	}
	return nil
}

func (s *SyncConsumer) Stop(_ context.Context) error {
	return s.consumer.Close()
}
