package websocket

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]interface{}{
		"id":   "b7e2d8a0-0000-0000-0000-000000000000",
		"name": "Acme's Workspace",
	}

	before := time.Now().UTC()
	evt := NewEvent(EventTypeUpdated, EntityTypeWorkspace, payload)
	after := time.Now().UTC()

	assert.Equal(t, "workspace.updated", evt.Type)
	assert.Equal(t, EntityTypeWorkspace, evt.Entity)
	assert.Equal(t, payload, evt.Payload)
	assert.True(t, !evt.Timestamp.Before(before) && !evt.Timestamp.After(after))
}

func TestNewEvent_MemberTypes(t *testing.T) {
	tests := []struct {
		name     string
		et       EventType
		expected string
	}{
		{"added", EventTypeAdded, "member.added"},
		{"removed", EventTypeRemoved, "member.removed"},
		{"left", EventTypeLeft, "member.left"},
		{"permission updated", EventTypePermissionUpdated, "member.permission_updated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := NewEvent(tt.et, EntityTypeMember, nil)
			assert.Equal(t, tt.expected, evt.Type)
		})
	}
}

func TestEvent_ToJSON(t *testing.T) {
	evt := NewEvent(EventTypeLogoUpdated, EntityTypeWorkspace, map[string]interface{}{
		"logoUrl": "https://storage.test/logos/ws.jpg",
	})

	data, err := evt.ToJSON()
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, "workspace.logo_updated", decoded["type"])
	assert.Equal(t, "workspace", decoded["entity"])

	payload, ok := decoded["payload"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "https://storage.test/logos/ws.jpg", payload["logoUrl"])
}
