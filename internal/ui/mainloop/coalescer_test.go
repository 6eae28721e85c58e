package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queueScheduler(queue *[]func()) SchedulerFunc {
	return func(fn func()) { *queue = append(*queue, fn) }
}

func TestCoalescer_MergesResizeBurst(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queueScheduler(&queue))

	height := 0
	for _, h := range []int{600, 640, 700, 720} {
		c.Post(KeyResize, func() { height = h })
	}

	require.Len(t, queue, 1)
	assert.True(t, c.Pending(KeyResize))

	queue[0]()
	assert.Equal(t, 720, height, "latest callback wins")
	assert.False(t, c.Pending(KeyResize))
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queueScheduler(&queue))

	var ran []Key
	c.Post(KeyResize, func() { ran = append(ran, KeyResize) })
	c.Post(KeyConfigReload, func() { ran = append(ran, KeyConfigReload) })

	require.Len(t, queue, 2)
	for _, fn := range queue {
		fn()
	}
	assert.Equal(t, []Key{KeyResize, KeyConfigReload}, ran)
}

func TestCoalescer_PostAfterRunSchedulesAgain(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queueScheduler(&queue))

	count := 0
	c.Post(KeyResize, func() { count++ })
	queue[0]()
	c.Post(KeyResize, func() { count++ })

	require.Len(t, queue, 2)
	queue[1]()
	assert.Equal(t, 2, count)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queueScheduler(&queue))

	ran := false
	c.Post(KeyConfigReload, func() { ran = true })
	c.Destroy()

	require.Len(t, queue, 1)
	queue[0]()
	assert.False(t, ran)

	c.Post(KeyConfigReload, func() { ran = true })
	assert.Len(t, queue, 1)
}

func TestCoalescer_IgnoresEmptyInput(t *testing.T) {
	var queue []func()
	c := NewCoalescer(queueScheduler(&queue))

	c.Post("", func() {})
	c.Post(KeyResize, nil)
	assert.Empty(t, queue)
}

func TestNewCoalescer_PanicsOnNilScheduler(t *testing.T) {
	assert.Panics(t, func() { NewCoalescer(nil) })
}
