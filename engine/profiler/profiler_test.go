package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// TestTick tests that stats are only emitted once the update interval elapses.
func TestTick(t *testing.T) {
	t.Parallel()

	p := NewProfiler()
	assert.False(t, p.Tick())

	// Force the interval to have elapsed.
	p.lastTime = time.Now().Add(-2 * time.Second)
	assert.True(t, p.Tick())

	// The window resets after logging.
	assert.False(t, p.Tick())
}
