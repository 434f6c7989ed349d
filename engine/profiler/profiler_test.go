package profiler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTickLogsWhenIntervalElapsed(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithLogger(zap.New(core)), WithInterval(0))

	require.True(t, p.Tick())
	require.Equal(t, 1, logs.Len())

	entry := logs.All()[0]
	assert.Equal(t, "engine stats", entry.Message)
	fields := entry.ContextMap()
	assert.Contains(t, fields, "ticks_per_second")
	assert.Contains(t, fields, "heap_mb")
	assert.Contains(t, fields, "gc_count")
}

func TestTickIsQuietWithinInterval(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := NewProfiler(WithLogger(zap.New(core)), WithInterval(time.Hour))

	for i := 0; i < 100; i++ {
		assert.False(t, p.Tick())
	}
	assert.Zero(t, logs.Len())
}
