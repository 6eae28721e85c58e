package messaging

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/bezel/internal/application/port"
)

// Names shared with the presentation scripts in assets.
const (
	// HandlerName is the script message handler pages post commands to.
	HandlerName = "bezel"
	// BridgeObject is the page global receiving notifications and replies.
	BridgeObject = "window.__bezel"
)

// NotificationScript renders n as a script invoking the page bridge.
// Arguments are passed positionally as a JSON array.
func NotificationScript(n port.Notification) (string, error) {
	channel, err := json.Marshal(string(n.Channel))
	if err != nil {
		return "", fmt.Errorf("encode channel: %w", err)
	}
	args := n.Args
	if args == nil {
		args = []any{}
	}
	encoded, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("encode %s args: %w", n.Channel, err)
	}
	return fmt.Sprintf("%s && %s.receive(%s, %s);", BridgeObject, BridgeObject, channel, encoded), nil
}

// ReplyScript renders a query reply for requestID.
func ReplyScript(requestID string, result any) (string, error) {
	if requestID == "" {
		return "", ErrMissingRequestID
	}
	id, err := json.Marshal(requestID)
	if err != nil {
		return "", fmt.Errorf("encode request id: %w", err)
	}
	encoded, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("encode reply: %w", err)
	}
	return fmt.Sprintf("%s && %s.reply(%s, %s);", BridgeObject, BridgeObject, id, encoded), nil
}
