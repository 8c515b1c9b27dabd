package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// API endpoint families with independent partner quotas.
const (
	EndpointCreate  = "create"
	EndpointPoll    = "poll"
	EndpointCulture = "culture"
)

// EndpointLimiter paces outgoing requests per endpoint family so a large
// date grid does not burn through the partner quota in one burst.
type EndpointLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

type Config struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewEndpointLimiter(config Config) *EndpointLimiter {
	return &EndpointLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

// NewEndpointLimiterWithDefaults applies the documented partner quotas: the
// create endpoint is throttled well below the poll endpoint.
func NewEndpointLimiterWithDefaults() *EndpointLimiter {
	l := NewEndpointLimiter(DefaultConfig())
	l.SetEndpointLimit(EndpointCreate, 1.5, 3)
	l.SetEndpointLimit(EndpointPoll, 5, 10)
	return l
}

func (l *EndpointLimiter) GetLimiter(endpoint string) *rate.Limiter {
	l.mu.RLock()
	limiter, exists := l.limiters[endpoint]
	l.mu.RUnlock()

	if exists {
		return limiter
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if limiter, exists = l.limiters[endpoint]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(l.defaults.RequestsPerSecond), l.defaults.BurstSize)
	l.limiters[endpoint] = limiter
	return limiter
}

func (l *EndpointLimiter) SetEndpointLimit(endpoint string, rps float64, burst int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.limiters[endpoint] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the endpoint's limiter grants a slot or ctx is done.
func (l *EndpointLimiter) Wait(ctx context.Context, endpoint string) error {
	return l.GetLimiter(endpoint).Wait(ctx)
}
