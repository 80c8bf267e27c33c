// Package ratelimit throttles API clients with per-endpoint token buckets.
// Expensive routes such as PDF export and photo upload get tight budgets
// while ordinary reads fall through to a generous default.
package ratelimit

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/gedeon/andikacv/pkg/logger"
)

// Info describes the outcome of a rate limit check. The server copies it
// into the X-RateLimit-* response headers and the 429 body.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter-wide settings. Endpoint budgets live in
// EndpointConfigs; everything else falls back to the default limit.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// tokenBucket refills at a steady rate up to a fixed burst capacity.
// One token is spent per request.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
}

func newTokenBucket(capacity int, refillRate float64) *tokenBucket {
	return &tokenBucket{
		capacity:   float64(capacity),
		refillRate: refillRate,
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

// refillLocked credits tokens for the time elapsed since the last refill.
// Callers must hold mu.
func (b *tokenBucket) refillLocked(now time.Time) {
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > b.capacity {
		b.tokens = b.capacity
	}
	b.lastRefill = now
}

// take spends one token if available.
func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.refillLocked(time.Now())
	if b.tokens < 1.0 {
		return false
	}
	b.tokens -= 1.0
	return true
}

// status reports the remaining whole tokens and when the bucket will be
// full again, without spending anything.
func (b *tokenBucket) status() (remaining int, resetTime time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.refillLocked(now)

	remaining = int(b.tokens)
	if b.tokens >= b.capacity {
		return remaining, now
	}
	deficit := b.capacity - b.tokens
	return remaining, now.Add(time.Duration(deficit / b.refillRate * float64(time.Second)))
}

// Limiter keeps one bucket per client+endpoint+method combination and
// prunes combinations that go quiet.
type Limiter struct {
	config *Config
	log    logger.Logger

	mu      sync.RWMutex
	buckets map[string]*tokenBucket

	accessMu   sync.RWMutex
	lastAccess map[string]time.Time

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter builds a Limiter. A nil config enables limiting with the
// stock defaults; a nil log discards limiter diagnostics.
func NewLimiter(config *Config, log logger.Logger) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}
	if log == nil {
		log = logger.Nop()
	}

	l := &Limiter{
		config:     config,
		log:        log,
		buckets:    make(map[string]*tokenBucket),
		lastAccess: make(map[string]time.Time),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}

	return l
}

// Allow decides whether a request from clientID may hit the given path and
// method. Whitelisted clients bypass every budget; blacklisted clients are
// refused outright.
func (l *Limiter) Allow(clientID, endpoint, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		l.log.Warn("blacklisted client refused",
			zap.String("client_id", clientID),
			zap.String("endpoint", endpoint))
		return false, Info{}
	}

	budget := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if budget == nil {
		budget = &EndpointConfig{
			Limit:  l.config.DefaultLimit,
			Window: l.config.DefaultWindow,
			Burst:  l.config.DefaultLimit,
		}
	}
	if budget.Limit <= 0 {
		// Unlimited route, e.g. the health check.
		return true, Info{Allowed: true}
	}

	key := clientID + ":" + endpoint + ":" + method
	bucket := l.bucketFor(key, budget)

	l.accessMu.Lock()
	l.lastAccess[key] = time.Now()
	l.accessMu.Unlock()

	allowed := bucket.take()
	remaining, resetTime := bucket.status()

	var retryAfter time.Duration
	if !allowed {
		if retryAfter = time.Until(resetTime); retryAfter < 0 {
			retryAfter = 0
		}
		l.log.Debug("rate limit exceeded",
			zap.String("client_id", clientID),
			zap.String("endpoint", endpoint),
			zap.String("method", method),
			zap.Duration("retry_after", retryAfter))
	}

	return allowed, Info{
		Allowed:    allowed,
		Limit:      budget.Limit,
		Remaining:  remaining,
		ResetTime:  resetTime,
		RetryAfter: retryAfter,
	}
}

// bucketFor returns the bucket for key, creating it from the budget on
// first sight.
func (l *Limiter) bucketFor(key string, budget *EndpointConfig) *tokenBucket {
	l.mu.RLock()
	bucket, ok := l.buckets[key]
	l.mu.RUnlock()
	if ok {
		return bucket
	}

	capacity := budget.Burst
	if capacity <= 0 {
		capacity = budget.Limit
	}
	refillRate := float64(budget.Limit) / budget.Window.Seconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if existing, ok := l.buckets[key]; ok {
		return existing
	}
	bucket = newTokenBucket(capacity, refillRate)
	l.buckets[key] = bucket
	return bucket
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.pruneIdleBuckets()
		case <-l.cleanupStop:
			return
		}
	}
}

// pruneIdleBuckets drops combinations not seen for over an hour so the
// bucket map does not grow without bound.
func (l *Limiter) pruneIdleBuckets() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.accessMu.Lock()
	defer l.accessMu.Unlock()

	pruned := 0
	for key, seen := range l.lastAccess {
		if seen.Before(cutoff) {
			delete(l.buckets, key)
			delete(l.lastAccess, key)
			pruned++
		}
	}
	if pruned > 0 {
		l.log.Debug("pruned idle rate limit buckets", zap.Int("count", pruned))
	}
}

// Stop shuts down the background pruning goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
	}
	if l.cleanupStop != nil {
		close(l.cleanupStop)
	}
}
