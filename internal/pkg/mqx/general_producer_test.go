package mqx

import (
	"context"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func TestGeneralProducer_Produce(t *testing.T) {
	const topic = "test_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	consumer, err := q.Consumer(topic, "test")
	require.NoError(t, err)

	p, err := NewGeneralProducer[testEvent](q, topic)
	require.NoError(t, err)

	evts := []testEvent{{ID: 1, Name: "Tom"}, {ID: 2, Name: "Jerry"}}
	for _, evt := range evts {
		require.NoError(t, p.Produce(context.Background(), evt))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()
	msg, err := consumer.Consume(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Tom"}`, string(msg.Value))
	msg, err = consumer.Consume(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":2,"name":"Jerry"}`, string(msg.Value))
}

func TestGeneralProducer_ProduceMarshalError(t *testing.T) {
	const topic = "bad_events"
	q := memory.NewMQ()
	require.NoError(t, q.CreateTopic(context.Background(), topic, 1))
	p, err := NewGeneralProducer[chan int](q, topic)
	require.NoError(t, err)

	err = p.Produce(context.Background(), make(chan int))
	assert.ErrorContains(t, err, "序列化失败")
}
