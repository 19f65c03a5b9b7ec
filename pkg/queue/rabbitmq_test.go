package queue

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeEvent(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	body, err := EncodeEvent(Event{Type: "post.promoted", PostID: 42, Status: "core", OccurredAt: at})
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, "post.promoted", decoded["type"])
	assert.Equal(t, float64(42), decoded["post_id"])
	assert.Equal(t, "core", decoded["status"])
	assert.Equal(t, "2026-03-01T12:00:00Z", decoded["occurred_at"])
}

func TestEncodeEvent_StampsTime(t *testing.T) {
	body, err := EncodeEvent(Event{Type: "post.committed", PostID: 1})
	require.NoError(t, err)

	var decoded Event
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.False(t, decoded.OccurredAt.IsZero())
}

func TestEncodeEvent_RequiresType(t *testing.T) {
	_, err := EncodeEvent(Event{PostID: 1})
	assert.Error(t, err)
}
