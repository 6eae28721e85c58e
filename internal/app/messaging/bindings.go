package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bnema/bezel/internal/application/port"
	"github.com/bnema/bezel/internal/domain/entity"
)

//go:generate mockgen -destination=mocks/mock_commands.go -package=mocks github.com/bnema/bezel/internal/app/messaging CommandTarget

// CommandTarget is the controller side of the channel surface.
type CommandTarget interface {
	CreateTab(ctx context.Context, url string)
	NavigateActiveTo(ctx context.Context, url string)
	ActivateTab(ctx context.Context, id entity.TabID)
	CloseTab(ctx context.Context, id entity.TabID)
	SetSidebarVisible(ctx context.Context, visible bool)
	MinimizeWindow(ctx context.Context)
	ToggleMaximizeWindow(ctx context.Context)
	CloseWindow(ctx context.Context)
	ActiveTabID() (entity.TabID, bool)
}

// Bind registers every command and query against target. The returned
// function unregisters them.
func Bind(router *MessageRouter, target CommandTarget) (func(), error) {
	if router == nil || target == nil {
		return nil, fmt.Errorf("router and target are required")
	}

	commands := map[port.Channel]MessageHandlerFunc{
		port.ChannelCreateTab: func(ctx context.Context, _ port.Surface, payload json.RawMessage) error {
			url, err := decodeOptionalString(payload)
			if err != nil {
				return err
			}
			target.CreateTab(ctx, url)
			return nil
		},
		port.ChannelNavigate: func(ctx context.Context, _ port.Surface, payload json.RawMessage) error {
			url, err := decodeString(payload)
			if err != nil {
				return err
			}
			target.NavigateActiveTo(ctx, url)
			return nil
		},
		port.ChannelActivateTab: func(ctx context.Context, _ port.Surface, payload json.RawMessage) error {
			id, err := decodeTabID(payload)
			if err != nil {
				return err
			}
			target.ActivateTab(ctx, id)
			return nil
		},
		port.ChannelCloseTab: func(ctx context.Context, _ port.Surface, payload json.RawMessage) error {
			id, err := decodeTabID(payload)
			if err != nil {
				return err
			}
			target.CloseTab(ctx, id)
			return nil
		},
		port.ChannelSetSidebarVisible: func(ctx context.Context, _ port.Surface, payload json.RawMessage) error {
			visible, err := decodeBool(payload)
			if err != nil {
				return err
			}
			target.SetSidebarVisible(ctx, visible)
			return nil
		},
		port.ChannelWindowMinimize: func(ctx context.Context, _ port.Surface, _ json.RawMessage) error {
			target.MinimizeWindow(ctx)
			return nil
		},
		port.ChannelWindowMaximize: func(ctx context.Context, _ port.Surface, _ json.RawMessage) error {
			target.ToggleMaximizeWindow(ctx)
			return nil
		},
		port.ChannelWindowClose: func(ctx context.Context, _ port.Surface, _ json.RawMessage) error {
			target.CloseWindow(ctx)
			return nil
		},
	}

	registered := make([]port.Channel, 0, len(commands)+1)
	unbind := func() {
		for _, ch := range registered {
			router.Unregister(ch)
		}
	}

	for ch, fn := range commands {
		if err := router.RegisterHandler(ch, fn); err != nil {
			unbind()
			return nil, fmt.Errorf("register %s: %w", ch, err)
		}
		registered = append(registered, ch)
	}

	activeQuery := QueryHandlerFunc(func(context.Context, port.Surface, json.RawMessage) (any, error) {
		if id, ok := target.ActiveTabID(); ok {
			return int(id), nil
		}
		return nil, nil
	})
	if err := router.RegisterQuery(port.ChannelGetActiveTabID, activeQuery); err != nil {
		unbind()
		return nil, fmt.Errorf("register %s: %w", port.ChannelGetActiveTabID, err)
	}
	registered = append(registered, port.ChannelGetActiveTabID)

	return unbind, nil
}
