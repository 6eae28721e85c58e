package assets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChromePage(t *testing.T) {
	page := ChromePage(8)

	assert.Contains(t, page, "--bezel: 8px")
	assert.Contains(t, page, "window.__bezel = {")
	assert.Contains(t, page, "messageHandlers.bezel")
	assert.Contains(t, page, "#hover-zone")
	assert.False(t, strings.Contains(page, "{{"), "all placeholders replaced")
}

func TestChromePage_ShowsTitlesAsReceived(t *testing.T) {
	assert.NotContains(t, ChromeScript, "TITLE_BUDGET")
	assert.Contains(t, ChromeScript, "tab.title = title;")
}

func TestCornerMaskCSS(t *testing.T) {
	css := CornerMaskCSS(8)

	assert.Contains(t, css, "body::after")
	assert.Contains(t, css, "circle at 8px 8px, transparent 8px")
	assert.Contains(t, css, "pointer-events: none")
	assert.NotContains(t, css, "{{")

	assert.Empty(t, CornerMaskCSS(0))
	assert.Empty(t, CornerMaskCSS(-1))
}
