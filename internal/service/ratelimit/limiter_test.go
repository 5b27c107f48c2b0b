package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiterRefills(t *testing.T) {
	now := time.Unix(0, 0)
	l := New(2, 1)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))
	assert.True(t, l.Allow("b"), "keys are independent")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"))

	now = now.Add(time.Hour)
	assert.True(t, l.Allow("a"))
	assert.True(t, l.Allow("a"))
	assert.False(t, l.Allow("a"), "refill is capped at capacity")
}

func TestLimiterPrune(t *testing.T) {
	now := time.Unix(0, 0)
	l := New(1, 1)
	l.now = func() time.Time { return now }

	l.Allow("old")
	now = now.Add(10 * time.Minute)
	l.Allow("new")

	assert.Equal(t, 1, l.Prune(5*time.Minute))
	assert.Len(t, l.m, 1)
}
