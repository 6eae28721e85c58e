package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentBounds(t *testing.T) {
	tests := []struct {
		name   string
		window Size
		bezel  int
		want   Rect
	}{
		{
			name:   "bezel removed from every side",
			window: Size{Width: 1200, Height: 800},
			bezel:  8,
			want:   Rect{X: 8, Y: 8, Width: 1184, Height: 784},
		},
		{
			name:   "no bezel",
			window: Size{Width: 640, Height: 480},
			bezel:  0,
			want:   Rect{Width: 640, Height: 480},
		},
		{
			name:   "window smaller than bezel clamps to zero",
			window: Size{Width: 10, Height: 4},
			bezel:  8,
			want:   Rect{X: 8, Y: 8},
		},
		{
			name:   "negative bezel treated as zero",
			window: Size{Width: 100, Height: 100},
			bezel:  -3,
			want:   Rect{Width: 100, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentBounds(tt.window, tt.bezel))
		})
	}
}

func TestRect_Collapsed(t *testing.T) {
	r := Rect{X: 8, Y: 8, Width: 100, Height: 50}

	c := r.Collapsed()

	assert.Equal(t, Rect{X: 8, Y: 8}, c)
	assert.True(t, c.IsEmpty())
	assert.False(t, r.IsEmpty())
}
