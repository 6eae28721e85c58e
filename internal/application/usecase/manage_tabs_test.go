package usecase

import (
	"context"
	"testing"

	"github.com/bnema/bezel/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefaultURL = "https://www.google.com"

func TestManageTabs_CreateUsesDefaultURL(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	out, err := uc.Create(ctx, CreateTabInput{Registry: reg})
	require.NoError(t, err)
	assert.Equal(t, entity.TabID(1), out.Tab.ID)
	assert.Equal(t, testDefaultURL, out.Tab.URL)

	// Creation does not activate.
	_, ok := reg.ActiveID()
	assert.False(t, ok)
}

func TestManageTabs_CreateKeepsGivenURLVerbatim(t *testing.T) {
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	out, err := uc.Create(context.Background(), CreateTabInput{Registry: reg, URL: "example.com"})
	require.NoError(t, err)
	assert.Equal(t, "example.com", out.Tab.URL)
}

func TestManageTabs_NilRegistry(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)

	_, err := uc.Create(ctx, CreateTabInput{})
	assert.ErrorIs(t, err, ErrNilTabRegistry)

	_, err = uc.Activate(ctx, nil, 1)
	assert.ErrorIs(t, err, ErrNilTabRegistry)

	_, err = uc.Close(ctx, nil, 1)
	assert.ErrorIs(t, err, ErrNilTabRegistry)
}

func TestManageTabs_ActivateUnknownIsSilent(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	out, err := uc.Create(ctx, CreateTabInput{Registry: reg})
	require.NoError(t, err)
	ok, err := uc.Activate(ctx, reg, out.Tab.ID)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = uc.Activate(ctx, reg, 42)
	require.NoError(t, err)
	assert.False(t, ok)

	active, _ := reg.ActiveID()
	assert.Equal(t, out.Tab.ID, active)
}

func TestManageTabs_CloseActivePicksFirstRemaining(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	for range 3 {
		_, err := uc.Create(ctx, CreateTabInput{Registry: reg})
		require.NoError(t, err)
	}
	_, err := uc.Activate(ctx, reg, 2)
	require.NoError(t, err)

	out, err := uc.Close(ctx, reg, 2)
	require.NoError(t, err)
	assert.True(t, out.Closed)
	assert.True(t, out.WasActive)
	assert.True(t, out.HasNext)
	assert.Equal(t, entity.TabID(1), out.Next)
}

func TestManageTabs_CloseInactiveLeavesPointer(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	for range 2 {
		_, err := uc.Create(ctx, CreateTabInput{Registry: reg})
		require.NoError(t, err)
	}
	_, err := uc.Activate(ctx, reg, 2)
	require.NoError(t, err)

	out, err := uc.Close(ctx, reg, 1)
	require.NoError(t, err)
	assert.True(t, out.Closed)
	assert.False(t, out.WasActive)
	assert.False(t, out.HasNext)

	active, ok := reg.ActiveID()
	assert.True(t, ok)
	assert.Equal(t, entity.TabID(2), active)
}

func TestManageTabs_CloseLastLeavesNoActive(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	out, err := uc.Create(ctx, CreateTabInput{Registry: reg})
	require.NoError(t, err)
	_, err = uc.Activate(ctx, reg, out.Tab.ID)
	require.NoError(t, err)

	closed, err := uc.Close(ctx, reg, out.Tab.ID)
	require.NoError(t, err)
	assert.True(t, closed.WasActive)
	assert.False(t, closed.HasNext)

	_, ok := reg.ActiveID()
	assert.False(t, ok)
}

func TestManageTabs_CloseUnknown(t *testing.T) {
	uc := NewManageTabsUseCase(testDefaultURL)
	out, err := uc.Close(context.Background(), entity.NewTabRegistry(), 7)
	require.NoError(t, err)
	assert.False(t, out.Closed)
}

func TestManageTabs_DiscardBurnsID(t *testing.T) {
	ctx := context.Background()
	uc := NewManageTabsUseCase(testDefaultURL)
	reg := entity.NewTabRegistry()

	out, err := uc.Create(ctx, CreateTabInput{Registry: reg})
	require.NoError(t, err)
	uc.Discard(ctx, reg, out.Tab.ID)
	assert.Zero(t, reg.Count())

	next, err := uc.Create(ctx, CreateTabInput{Registry: reg})
	require.NoError(t, err)
	assert.Equal(t, entity.TabID(2), next.Tab.ID)
}

func TestManageTabs_SetDefaultURLIgnoresEmpty(t *testing.T) {
	uc := NewManageTabsUseCase(testDefaultURL)
	uc.SetDefaultURL("")
	assert.Equal(t, testDefaultURL, uc.DefaultURL())
	uc.SetDefaultURL("https://duckduckgo.com")
	assert.Equal(t, "https://duckduckgo.com", uc.DefaultURL())
}
