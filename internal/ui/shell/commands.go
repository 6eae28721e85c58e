package shell

import (
	"context"

	"github.com/bnema/bezel/internal/app/messaging"
	"github.com/bnema/bezel/internal/domain/entity"
)

var _ messaging.CommandTarget = (*Shell)(nil)

func (s *Shell) CreateTab(ctx context.Context, url string) {
	s.tabs.CreateTab(ctx, url)
}

func (s *Shell) NavigateActiveTo(ctx context.Context, url string) {
	s.tabs.NavigateActiveTo(ctx, url)
}

func (s *Shell) ActivateTab(ctx context.Context, id entity.TabID) {
	s.tabs.ActivateTab(ctx, id)
}

func (s *Shell) CloseTab(ctx context.Context, id entity.TabID) {
	s.tabs.CloseTab(ctx, id)
}

func (s *Shell) SetSidebarVisible(ctx context.Context, visible bool) {
	s.sidebar.SetVisible(ctx, visible)
}

func (s *Shell) MinimizeWindow(ctx context.Context) {
	s.window.Minimize(ctx)
}

func (s *Shell) ToggleMaximizeWindow(ctx context.Context) {
	s.window.ToggleMaximize(ctx)
}

func (s *Shell) CloseWindow(ctx context.Context) {
	s.window.Close(ctx)
}

func (s *Shell) ActiveTabID() (entity.TabID, bool) {
	return s.tabs.ActiveTabID()
}
