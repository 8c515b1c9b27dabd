package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLimiter_ReturnsSameInstance(t *testing.T) {
	l := NewEndpointLimiter(DefaultConfig())
	first := l.GetLimiter(EndpointCreate)
	second := l.GetLimiter(EndpointCreate)
	assert.Same(t, first, second)
}

func TestSetEndpointLimit(t *testing.T) {
	l := NewEndpointLimiter(DefaultConfig())
	l.SetEndpointLimit(EndpointCreate, 1, 3)

	limiter := l.GetLimiter(EndpointCreate)
	assert.Equal(t, 3, limiter.Burst())
}

func TestWait_WithinBurstIsImmediate(t *testing.T) {
	l := NewEndpointLimiter(Config{RequestsPerSecond: 1, BurstSize: 2})
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Wait(ctx, EndpointPoll))
	require.NoError(t, l.Wait(ctx, EndpointPoll))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestWait_RespectsContextCancellation(t *testing.T) {
	l := NewEndpointLimiter(Config{RequestsPerSecond: 0.001, BurstSize: 1})
	ctx := context.Background()
	require.NoError(t, l.Wait(ctx, EndpointCulture))

	cancelled, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(cancelled, EndpointCulture))
}

func TestDefaults_ThrottleCreateBelowPoll(t *testing.T) {
	l := NewEndpointLimiterWithDefaults()
	create := l.GetLimiter(EndpointCreate)
	poll := l.GetLimiter(EndpointPoll)
	assert.Less(t, float64(create.Limit()), float64(poll.Limit()))
}
