package messaging

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/bnema/bezel/internal/domain/entity"
)

var jsonNull = []byte("null")

func isAbsent(payload json.RawMessage) bool {
	trimmed := bytes.TrimSpace(payload)
	return len(trimmed) == 0 || bytes.Equal(trimmed, jsonNull)
}

// decodeOptionalString accepts a JSON string, null or no payload.
func decodeOptionalString(payload json.RawMessage) (string, error) {
	if isAbsent(payload) {
		return "", nil
	}
	return decodeString(payload)
}

func decodeString(payload json.RawMessage) (string, error) {
	var s string
	if err := json.Unmarshal(payload, &s); err != nil {
		return "", fmt.Errorf("payload must be a string: %w", err)
	}
	return s, nil
}

func decodeTabID(payload json.RawMessage) (entity.TabID, error) {
	var id float64
	if err := json.Unmarshal(payload, &id); err != nil {
		return 0, fmt.Errorf("payload must be a tab id: %w", err)
	}
	if id != float64(int(id)) {
		return 0, fmt.Errorf("tab id %v is not an integer", id)
	}
	return entity.TabID(int(id)), nil
}

func decodeBool(payload json.RawMessage) (bool, error) {
	var b bool
	if err := json.Unmarshal(payload, &b); err != nil {
		return false, fmt.Errorf("payload must be a boolean: %w", err)
	}
	return b, nil
}
