package eventbus_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/pkg/eventbus"
)

func TestConnect_Errors(t *testing.T) {
	_, err := eventbus.Connect(eventbus.Config{})
	assert.Error(t, err)

	_, err = eventbus.Connect(eventbus.Config{URL: "nats://127.0.0.1:1", ConnectTimeout: 200 * time.Millisecond})
	assert.Error(t, err)
}

func TestRecorder(t *testing.T) {
	var rec eventbus.Recorder
	require.NoError(t, rec.PublishJSON(context.Background(), "planner.goal.created", map[string]any{"goal_id": "g1", "total_days": 5}))

	events := rec.Published()
	require.Len(t, events, 1)
	assert.Equal(t, "planner.goal.created", events[0].Subject)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, "g1", payload["goal_id"])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, rec.PublishJSON(ctx, "x", 1), context.Canceled)
	assert.ErrorIs(t, eventbus.Nop{}.PublishJSON(ctx, "x", 1), context.Canceled)
}
