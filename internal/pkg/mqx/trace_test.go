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
	"testing"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestTraceMq(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	oldTp, oldProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)))
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(oldTp)
		otel.SetTextMapPropagator(oldProp)
	})

	const topic = "submission_events"
	ctx := context.Background()
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(ctx, topic, 1))
	tq := NewTraceMq(q)
	consumer, err := tq.Consumer(topic, "submission_autograde")
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](tq, topic)
	require.NoError(t, err)

	ctx, root := otel.Tracer("test").Start(ctx, "submit")
	require.NoError(t, producer.Produce(ctx, testEvent{Id: 1, Action: "submitted"}))
	root.End()

	msg, err := consumer.Consume(context.Background())
	require.NoError(t, err)
	assert.Contains(t, msg.Header, "traceparent")

	spans := make(map[string]sdktrace.ReadOnlySpan)
	for _, s := range recorder.Ended() {
		spans[s.Name()] = s
	}
	require.Contains(t, spans, "mq.produce")
	require.Contains(t, spans, "mq.consume")
	produce, consume := spans["mq.produce"], spans["mq.consume"]
	assert.Equal(t, trace.SpanKindProducer, produce.SpanKind())
	assert.Equal(t, trace.SpanKindConsumer, consume.SpanKind())
	assert.Equal(t, root.SpanContext().TraceID(), produce.SpanContext().TraceID())
	// 消费方接在发送方后面
	assert.Equal(t, produce.SpanContext().SpanID(), consume.Parent().SpanID())
	assert.Equal(t, produce.SpanContext().TraceID(), consume.SpanContext().TraceID())

	handleCtx := ContextFromMessage(context.Background(), msg)
	assert.Equal(t, root.SpanContext().TraceID(), trace.SpanContextFromContext(handleCtx).TraceID())
}

func TestContextFromMessage_NoHeader(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, ctx, ContextFromMessage(ctx, nil))
}
