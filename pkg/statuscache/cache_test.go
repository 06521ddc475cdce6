package statuscache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyadlab/fabula/pkg/models"
)

func TestCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	_, ok := c.Get("b1")
	assert.False(t, ok)

	c.Set("b1", models.BatchRunning)
	status, ok := c.Get("b1")
	require.True(t, ok)
	assert.Equal(t, models.BatchRunning, status)

	c.Set("b1", models.BatchPaused)
	status, ok = c.Get("b1")
	require.True(t, ok)
	assert.Equal(t, models.BatchPaused, status)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("b1", models.BatchRunning)
	_, ok := c.Get("b1")
	assert.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = c.Get("b1")
	assert.False(t, ok)

	// The expired entry was dropped during the read.
	assert.Equal(t, 0, c.Len())
}

func TestCache_Delete(t *testing.T) {
	c := New(time.Minute)
	c.Set("b1", models.BatchComplete)
	c.Delete("b1")

	_, ok := c.Get("b1")
	assert.False(t, ok)

	// Deleting an absent key is a no-op.
	c.Delete("missing")
}

func TestCache_Sweep(t *testing.T) {
	c := New(time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	c.Set("b1", models.BatchRunning)
	c.Set("b2", models.BatchQueued)
	current = current.Add(2 * time.Minute)
	c.Set("b3", models.BatchRunning)

	dropped := c.Sweep()
	assert.Equal(t, 2, dropped)
	assert.Equal(t, 1, c.Len())

	_, ok := c.Get("b3")
	assert.True(t, ok)
}

func TestNew_DefaultTTL(t *testing.T) {
	c := New(0)
	assert.Equal(t, DefaultTTL, c.ttl)

	c = New(-time.Second)
	assert.Equal(t, DefaultTTL, c.ttl)
}
