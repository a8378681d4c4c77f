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

package event_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	. "github.com/ecodeclub/hirebook/internal/submission/internal/event"
	evtmocks "github.com/ecodeclub/hirebook/internal/submission/internal/event/mocks"
	"github.com/ecodeclub/hirebook/internal/test/mocks"
	"github.com/ecodeclub/mq-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAutoGradeConsumer_Consume(t *testing.T) {
	newMsg := func(t *testing.T, evt SubmissionEvent) *mq.Message {
		data, err := json.Marshal(evt)
		require.NoError(t, err)
		return &mq.Message{Value: data}
	}
	testCases := []struct {
		name    string
		mock    func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ)
		wantErr bool
	}{
		{
			name: "提交之后自动评分",
			mock: func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ) {
				consumer := mocks.NewMockConsumer(ctrl)
				consumer.EXPECT().Consume(gomock.Any()).Return(newMsg(t, SubmissionEvent{
					Action:       ActionSubmitted,
					SubmissionId: 1,
					Uid:          7,
				}), nil)
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Consumer(SubmissionEventTopic, "submission_autograde").Return(consumer, nil)
				grader := evtmocks.NewMockAutoGrader(ctrl)
				grader.EXPECT().AutoGrade(gomock.Any(), int64(1)).Return(nil)
				return grader, q
			},
		},
		{
			name: "评审事件直接忽略",
			mock: func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ) {
				consumer := mocks.NewMockConsumer(ctrl)
				consumer.EXPECT().Consume(gomock.Any()).Return(newMsg(t, SubmissionEvent{
					Action:       ActionReviewed,
					SubmissionId: 1,
					Decision:     "accepted",
				}), nil)
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Consumer(gomock.Any(), gomock.Any()).Return(consumer, nil)
				return evtmocks.NewMockAutoGrader(ctrl), q
			},
		},
		{
			name: "自动评分失败",
			mock: func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ) {
				consumer := mocks.NewMockConsumer(ctrl)
				consumer.EXPECT().Consume(gomock.Any()).Return(newMsg(t, SubmissionEvent{
					Action:       ActionSubmitted,
					SubmissionId: 2,
				}), nil)
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Consumer(gomock.Any(), gomock.Any()).Return(consumer, nil)
				grader := evtmocks.NewMockAutoGrader(ctrl)
				grader.EXPECT().AutoGrade(gomock.Any(), int64(2)).Return(errors.New("mock judge error"))
				return grader, q
			},
			wantErr: true,
		},
		{
			name: "消息格式不对",
			mock: func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ) {
				consumer := mocks.NewMockConsumer(ctrl)
				consumer.EXPECT().Consume(gomock.Any()).Return(&mq.Message{Value: []byte("not json")}, nil)
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Consumer(gomock.Any(), gomock.Any()).Return(consumer, nil)
				return evtmocks.NewMockAutoGrader(ctrl), q
			},
			wantErr: true,
		},
		{
			name: "获取消息失败",
			mock: func(t *testing.T, ctrl *gomock.Controller) (AutoGrader, mq.MQ) {
				consumer := mocks.NewMockConsumer(ctrl)
				consumer.EXPECT().Consume(gomock.Any()).Return(nil, errors.New("mock mq error"))
				q := mocks.NewMockMQ(ctrl)
				q.EXPECT().Consumer(gomock.Any(), gomock.Any()).Return(consumer, nil)
				return evtmocks.NewMockAutoGrader(ctrl), q
			},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			grader, q := tc.mock(t, ctrl)
			consumer, err := NewAutoGradeConsumer(grader, q)
			require.NoError(t, err)
			err = consumer.Consume(context.Background())
			assert.Equal(t, tc.wantErr, err != nil)
		})
	}
}

func TestNewAutoGradeConsumer_Failed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := mocks.NewMockMQ(ctrl)
	q.EXPECT().Consumer(SubmissionEventTopic, gomock.Any()).Return(nil, errors.New("mock mq error"))
	_, err := NewAutoGradeConsumer(evtmocks.NewMockAutoGrader(ctrl), q)
	assert.Error(t, err)
}
