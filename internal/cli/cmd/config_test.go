package cmd

import (
	"bytes"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/bezel/internal/cli/styles"
)

type stubResetter struct {
	calls int
	path  string
	err   error
}

func (s *stubResetter) Reset() (string, error) {
	s.calls++
	return s.path, s.err
}

func newTestResetModel(r *stubResetter) resetModel {
	theme := styles.NewTheme()
	return newResetModel(styles.NewConfigRenderer(theme), theme, r)
}

func press(m tea.Model, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	return m.Update(msg)
}

func TestResetModel_Confirmed(t *testing.T) {
	r := &stubResetter{path: "/tmp/bezel/config.toml"}
	var m tea.Model = newTestResetModel(r)

	m, _ = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, resetStateRunning, m.(resetModel).state)
	assert.Contains(t, m.View(), "Restoring defaults")

	result := m.(resetModel).runReset()()
	m, _ = m.Update(result)

	assert.Equal(t, 1, r.calls)
	assert.Equal(t, resetStateDone, m.(resetModel).state)
	assert.Contains(t, m.View(), "config.toml")
}

func TestResetModel_Declined(t *testing.T) {
	r := &stubResetter{}
	var m tea.Model = newTestResetModel(r)

	m, cmd := press(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.Zero(t, r.calls)
	assert.Contains(t, m.View(), "Nothing changed")
}

func TestResetModel_Error(t *testing.T) {
	var m tea.Model = newTestResetModel(&stubResetter{})

	m, _ = m.Update(resetResultMsg{err: errors.New("read-only file system")})

	assert.Contains(t, m.View(), "read-only file system")
}

func TestExecuteReset(t *testing.T) {
	renderer := styles.NewConfigRenderer(styles.NewTheme())

	var out bytes.Buffer
	require.NoError(t, executeReset(&out, &stubResetter{path: "/tmp/bezel/config.toml"}, renderer))
	assert.Contains(t, out.String(), "Restored defaults")

	out.Reset()
	require.NoError(t, executeReset(&out, &stubResetter{err: errors.New("denied")}, renderer))
	assert.Contains(t, out.String(), "denied")
}
