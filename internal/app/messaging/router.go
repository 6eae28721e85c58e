// Package messaging relays commands and notifications between the controller
// and the presentation surfaces.
package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/logging"
)

var (
	// ErrEmptyType is returned when a message or registration has no type.
	ErrEmptyType = errors.New("message type cannot be empty")
	// ErrNilHandler is returned when registering a nil handler.
	ErrNilHandler = errors.New("message handler cannot be nil")
	// ErrUnknownType is returned when no handler is registered for a message type.
	ErrUnknownType = errors.New("no handler registered for message type")
	// ErrMissingRequestID is returned when a query arrives without a request ID.
	ErrMissingRequestID = errors.New("query requires a requestId")
)

// Message is the envelope posted by a presentation surface.
type Message struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
}

// MessageHandler handles a one-way command.
type MessageHandler interface {
	Handle(ctx context.Context, source port.Surface, payload json.RawMessage) error
}

// MessageHandlerFunc adapts a function to the MessageHandler interface.
type MessageHandlerFunc func(ctx context.Context, source port.Surface, payload json.RawMessage) error

// Handle calls f(ctx, source, payload).
func (f MessageHandlerFunc) Handle(ctx context.Context, source port.Surface, payload json.RawMessage) error {
	return f(ctx, source, payload)
}

// QueryHandler answers a two-way request. The result is sent back to the
// requesting surface only.
type QueryHandler interface {
	Query(ctx context.Context, source port.Surface, payload json.RawMessage) (any, error)
}

// QueryHandlerFunc adapts a function to the QueryHandler interface.
type QueryHandlerFunc func(ctx context.Context, source port.Surface, payload json.RawMessage) (any, error)

// Query calls f(ctx, source, payload).
func (f QueryHandlerFunc) Query(ctx context.Context, source port.Surface, payload json.RawMessage) (any, error) {
	return f(ctx, source, payload)
}

type handlerEntry struct {
	handler MessageHandler
	query   QueryHandler
}

// MessageRouter dispatches surface messages to registered handlers.
// It keeps no state besides the handler table.
type MessageRouter struct {
	baseCtx context.Context

	mu       sync.RWMutex
	handlers map[port.Channel]handlerEntry
}

// NewMessageRouter creates a new message router.
func NewMessageRouter(ctx context.Context) *MessageRouter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &MessageRouter{
		baseCtx:  logging.WithComponent(ctx, "message-router"),
		handlers: make(map[port.Channel]handlerEntry),
	}
}

// RegisterHandler registers a command handler, replacing any previous one.
func (r *MessageRouter) RegisterHandler(channel port.Channel, handler MessageHandler) error {
	if channel == "" {
		return ErrEmptyType
	}
	if handler == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[channel] = handlerEntry{handler: handler}
	return nil
}

// RegisterQuery registers a query handler, replacing any previous one.
func (r *MessageRouter) RegisterQuery(channel port.Channel, query QueryHandler) error {
	if channel == "" {
		return ErrEmptyType
	}
	if query == nil {
		return ErrNilHandler
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[channel] = handlerEntry{query: query}
	return nil
}

// Unregister removes the handler for channel.
func (r *MessageRouter) Unregister(channel port.Channel) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.handlers, channel)
}

// Has reports whether a handler is registered for channel.
func (r *MessageRouter) Has(channel port.Channel) bool {
	_, ok := r.getHandler(channel)
	return ok
}

func (r *MessageRouter) getHandler(channel port.Channel) (handlerEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.handlers[channel]
	return entry, ok
}

// Dispatch decodes a raw envelope posted by source and routes it.
// Failures are logged and returned; callers on the main loop may ignore them.
func (r *MessageRouter) Dispatch(source port.Surface, raw []byte) error {
	log := logging.FromContext(r.baseCtx)

	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Warn().Err(err).Str("json", string(raw)).Msg("failed to unmarshal surface message")
		return fmt.Errorf("decode message: %w", err)
	}
	return r.Route(source, msg)
}

// Route runs the handler for an already decoded message.
func (r *MessageRouter) Route(source port.Surface, msg Message) error {
	ctx := logging.WithChannel(r.baseCtx, msg.Type)
	log := logging.FromContext(ctx)

	if msg.Type == "" {
		log.Warn().Msg("surface message missing type")
		return ErrEmptyType
	}

	entry, ok := r.getHandler(port.Channel(msg.Type))
	if !ok {
		log.Warn().Msg("no handler registered for message type")
		return fmt.Errorf("%w: %s", ErrUnknownType, msg.Type)
	}

	log.Debug().
		Str("source", roleOf(source)).
		Int("payload_len", len(msg.Payload)).
		Msg("received surface message")

	if entry.query == nil {
		if err := entry.handler.Handle(ctx, source, msg.Payload); err != nil {
			log.Warn().Err(err).Msg("message handler returned error")
			return err
		}
		return nil
	}

	if msg.RequestID == "" {
		log.Warn().Msg("query without requestId dropped")
		return ErrMissingRequestID
	}

	result, err := entry.query.Query(ctx, source, msg.Payload)
	if err != nil {
		log.Warn().Err(err).Msg("query handler returned error")
		return err
	}
	if source == nil {
		return nil
	}
	if err := source.Reply(ctx, msg.RequestID, result); err != nil {
		log.Warn().Err(err).Str("request_id", msg.RequestID).Msg("failed to reply to query")
		return fmt.Errorf("reply %s: %w", msg.Type, err)
	}
	return nil
}

func roleOf(source port.Surface) string {
	if source == nil {
		return ""
	}
	return string(source.Role())
}
