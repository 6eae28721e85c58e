package usecase

import (
	"context"
	"errors"

	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/bnema/bezel/internal/logging"
)

// ErrNilTabRegistry is returned when a tab operation is given no registry.
var ErrNilTabRegistry = errors.New("tab registry is required")

// ManageTabsUseCase handles tab lifecycle bookkeeping on a TabRegistry.
// It owns no views; coordinators apply the resulting layout.
type ManageTabsUseCase struct {
	defaultURL string
}

// NewManageTabsUseCase creates a tab management use case. Tabs created
// without a URL open defaultURL.
func NewManageTabsUseCase(defaultURL string) *ManageTabsUseCase {
	return &ManageTabsUseCase{
		defaultURL: defaultURL,
	}
}

// SetDefaultURL replaces the URL used when none is supplied.
func (uc *ManageTabsUseCase) SetDefaultURL(url string) {
	if url != "" {
		uc.defaultURL = url
	}
}

// DefaultURL returns the URL used when none is supplied.
func (uc *ManageTabsUseCase) DefaultURL() string {
	return uc.defaultURL
}

// CreateTabInput contains parameters for creating a new tab.
type CreateTabInput struct {
	Registry *entity.TabRegistry
	URL      string // URL to load; empty means the default URL
}

// CreateTabOutput contains the result of tab creation.
type CreateTabOutput struct {
	Tab *entity.Tab
}

// Create allocates an ID and registers a new tab. The tab is not activated.
func (uc *ManageTabsUseCase) Create(ctx context.Context, input CreateTabInput) (*CreateTabOutput, error) {
	log := logging.FromContext(ctx)

	if input.Registry == nil {
		return nil, ErrNilTabRegistry
	}

	target := input.URL
	if target == "" {
		target = uc.defaultURL
	}

	tab := entity.NewTab(input.Registry.AllocateID(), target)
	input.Registry.Add(tab)

	log.Info().
		Int("tab_id", int(tab.ID)).
		Str("url", target).
		Int("count", input.Registry.Count()).
		Msg("tab created")

	return &CreateTabOutput{Tab: tab}, nil
}

// Discard removes a tab whose backing view could not be created.
// The ID stays consumed.
func (uc *ManageTabsUseCase) Discard(ctx context.Context, registry *entity.TabRegistry, tabID entity.TabID) {
	if registry == nil {
		return
	}
	if registry.Remove(tabID) {
		logging.FromContext(ctx).Debug().Int("tab_id", int(tabID)).Msg("tab discarded")
	}
}

// Activate moves the active pointer. It reports false, without error,
// when the tab is unknown.
func (uc *ManageTabsUseCase) Activate(ctx context.Context, registry *entity.TabRegistry, tabID entity.TabID) (bool, error) {
	log := logging.FromContext(ctx)

	if registry == nil {
		return false, ErrNilTabRegistry
	}

	previous, _ := registry.ActiveID()
	if !registry.SetActive(tabID) {
		log.Debug().Int("tab_id", int(tabID)).Msg("activate ignored, tab not found")
		return false, nil
	}

	log.Info().
		Int("from", int(previous)).
		Int("to", int(tabID)).
		Msg("tab activated")

	return true, nil
}

// CloseTabOutput describes how the active pointer must be resolved after a close.
type CloseTabOutput struct {
	Closed    bool         // false when the tab was unknown
	WasActive bool         // the closed tab held the active pointer
	Next      entity.TabID // tab to activate when WasActive and HasNext
	HasNext   bool
}

// Close removes a tab. When the closed tab was active, the first remaining
// tab in registry order is proposed as the next active tab.
func (uc *ManageTabsUseCase) Close(ctx context.Context, registry *entity.TabRegistry, tabID entity.TabID) (*CloseTabOutput, error) {
	ctx = logging.WithTabID(ctx, int(tabID))
	log := logging.FromContext(ctx)

	if registry == nil {
		return nil, ErrNilTabRegistry
	}

	wasActive := registry.IsActive(tabID)
	if !registry.Remove(tabID) {
		log.Debug().Msg("close ignored, tab not found")
		return &CloseTabOutput{}, nil
	}

	out := &CloseTabOutput{Closed: true, WasActive: wasActive}
	if wasActive {
		if next := registry.First(); next != nil {
			out.Next = next.ID
			out.HasNext = true
		}
	}

	log.Info().
		Bool("was_active", out.WasActive).
		Int("next", int(out.Next)).
		Int("remaining", registry.Count()).
		Msg("tab closed")

	return out, nil
}
