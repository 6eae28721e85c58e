package assets

import (
	_ "embed"
	"strconv"
	"strings"
)

// Chrome page shared by the main and sidebar surfaces. The page learns its
// role from the surface-identity notification.

//go:embed chrome/index.html
var chromeHTML string

//go:embed chrome/chrome.css
var ChromeStyles string

//go:embed chrome/chrome.js
var ChromeScript string

//go:embed content/corners.css
var cornerMask string

// ChromeBaseURI is the base URI the chrome page is loaded with.
const ChromeBaseURI = "about:bezel"

// ChromePage returns the chrome document with styles and script inlined.
func ChromePage(bezelWidth int) string {
	return strings.NewReplacer(
		"{{styles}}", ChromeStyles,
		"{{script}}", ChromeScript,
		"{{bezel}}", strconv.Itoa(bezelWidth),
	).Replace(chromeHTML)
}

// CornerMaskCSS returns the stylesheet that rounds the corners of every
// content page with the given radius, painted in the bezel color. A radius
// of zero or less disables the mask.
func CornerMaskCSS(radius int) string {
	if radius <= 0 {
		return ""
	}
	return strings.ReplaceAll(cornerMask, "{{r}}", strconv.Itoa(radius))
}
