package gtkhost

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/bezel/internal/domain/entity"
)

func TestSizeTracker_ReportsOnlyChanges(t *testing.T) {
	var got []entity.Size
	tracker := sizeTracker{
		size:     entity.Size{Width: 1200, Height: 800},
		onChange: func(s entity.Size) { got = append(got, s) },
	}

	assert.False(t, tracker.update(1200, 800), "initial size is not a change")
	assert.True(t, tracker.update(1000, 700))
	assert.False(t, tracker.update(1000, 700), "repeated layout")
	assert.False(t, tracker.update(0, 700), "unallocated surface")
	assert.True(t, tracker.update(1000, 720))

	assert.Equal(t, []entity.Size{{Width: 1000, Height: 700}, {Width: 1000, Height: 720}}, got)
	assert.Equal(t, entity.Size{Width: 1000, Height: 720}, tracker.size)
}

func TestSizeTracker_WithoutCallback(t *testing.T) {
	var tracker sizeTracker

	assert.True(t, tracker.update(640, 480))
	assert.Equal(t, entity.Size{Width: 640, Height: 480}, tracker.size)
}
