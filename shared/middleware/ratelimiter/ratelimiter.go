package ratelimiter

import (
	"sync"
	"time"
)

// bucket is a token bucket for a single identity
type bucket struct {
	tokens   float64
	lastSeen time.Time
}

// UserRateLimiter keeps one token bucket per identity (user id, ip, ...).
// Buckets idle for longer than expiration are dropped on the next sweep.
type UserRateLimiter struct {
	mu         sync.Mutex
	buckets    map[string]*bucket
	rate       float64 // tokens per second
	capacity   float64
	expiration time.Duration
	lastSweep  time.Time
	now        func() time.Time
}

func New(rate float64, capacity int, expiration time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		buckets:    make(map[string]*bucket),
		rate:       rate,
		capacity:   float64(capacity),
		expiration: expiration,
		now:        time.Now,
	}
}

// Allow takes a token from identity's bucket, false if the bucket is empty
func (l *UserRateLimiter) Allow(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	b, ok := l.buckets[identity]
	if !ok {
		b = &bucket{tokens: l.capacity, lastSeen: now}
		l.buckets[identity] = b
	}

	b.tokens += now.Sub(b.lastSeen).Seconds() * l.rate
	if b.tokens > l.capacity {
		b.tokens = l.capacity
	}
	b.lastSeen = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// Len returns number of tracked identities
func (l *UserRateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// must hold l.mu
func (l *UserRateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.expiration {
		return
	}
	for id, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.expiration {
			delete(l.buckets, id)
		}
	}
	l.lastSweep = now
}
