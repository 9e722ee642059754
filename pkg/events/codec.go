package events

import (
	"encoding/json"
	"time"
)

// Encode serializes the event payload. The type travels in the subject/topic.
func Encode(e Event) ([]byte, error) {
	return json.Marshal(e.Payload())
}

// Decode rebuilds an event from its type and JSON payload. occurred_at is read
// back when present, otherwise the event is stamped with the current time.
func Decode(eventType string, data []byte) (BaseEvent, error) {
	var payload map[string]interface{}
	if err := json.Unmarshal(data, &payload); err != nil {
		return BaseEvent{}, err
	}

	occurredAt := time.Now()
	if raw, ok := payload["occurred_at"].(string); ok {
		if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
			occurredAt = t
		}
	}

	return BaseEvent{
		Type:       eventType,
		Data:       payload,
		OccurredAt: occurredAt,
	}, nil
}
