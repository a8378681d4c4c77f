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
package mqx

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Id     int64  `json:"id"`
	Action string `json:"action"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	const topic = "test_events"
	ctx := context.Background()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	// 发送的时候顺便打点
	producer, err := NewGeneralProducer[testEvent](NewTraceMq(q), topic)
	require.NoError(t, err)
	err = producer.Produce(ctx, testEvent{Id: 1, Action: "saved"})
	require.NoError(t, err)

	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	var evt testEvent
	require.NoError(t, json.Unmarshal(msg.Value, &evt))
	assert.Equal(t, testEvent{Id: 1, Action: "saved"}, evt)
}
