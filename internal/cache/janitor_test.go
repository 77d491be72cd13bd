package cache

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySweep(t *testing.T) {
	m := NewMemory(10 * time.Millisecond)
	require.NoError(t, m.Set("a", "1"))
	require.NoError(t, m.Set("b", "2"))

	assert.Equal(t, 0, m.sweep(), "nothing expired yet")

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 2, m.sweep())
	assert.Empty(t, m.entries)
}

func TestMemorySweep_NoTTL(t *testing.T) {
	m := NewMemory(0)
	require.NoError(t, m.Set("a", "1"))

	assert.Equal(t, 0, m.sweep())

	v, ok := m.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestJanitor(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := NewMemory(5 * time.Millisecond)
	require.NoError(t, m.Set("a", "1"))

	j := NewJanitor(m, 10*time.Millisecond, logger)
	j.Start()
	defer j.Stop()

	assert.Eventually(t, func() bool {
		m.mu.RLock()
		defer m.mu.RUnlock()
		return len(m.entries) == 0
	}, time.Second, 5*time.Millisecond)
}
