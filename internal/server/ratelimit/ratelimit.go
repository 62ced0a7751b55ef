// Package ratelimit provides per-client request throttling using a token
// bucket per client and endpoint tier.
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Config controls the limiter. Generation endpoints get a stricter tier
// than collection reads because each completion call fans out to the
// generation backend.
type Config struct {
	Enabled         bool
	DefaultLimit    int           // requests per window for ordinary routes
	GenerateLimit   int           // requests per window for stage completion
	Window          time.Duration // refill window
	CleanupInterval time.Duration // idle bucket eviction interval
}

// LoadConfig reads limiter settings from environment variables, with
// defaults suitable for a single-team deployment.
func LoadConfig() Config {
	return Config{
		Enabled:         getEnvBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 600),
		GenerateLimit:   getEnvInt("RATE_LIMIT_GENERATE_LIMIT", 30),
		Window:          getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
	}
}

// Info describes the state of a client's bucket after a decision.
type Info struct {
	Limit     int
	Remaining int
	ResetTime time.Time
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastSeen   time.Time
}

// Limiter throttles requests per client identifier. Buckets are created
// on first sight and evicted after sitting idle for a cleanup interval.
type Limiter struct {
	cfg     Config
	mu      sync.Mutex
	buckets map[string]*bucket
	done    chan struct{}
}

// NewLimiter creates a limiter and starts its eviction loop.
func NewLimiter(cfg Config) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	if cfg.Enabled && cfg.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Stop terminates the eviction loop.
func (l *Limiter) Stop() {
	select {
	case <-l.done:
	default:
		close(l.done)
	}
}

// Allow decides whether the client may proceed with a request to path.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.cfg.Enabled {
		return true, Info{}
	}

	limit := l.cfg.DefaultLimit
	if method == "POST" && strings.Contains(path, "/stages/") {
		limit = l.cfg.GenerateLimit
	}
	rate := float64(limit) / l.cfg.Window.Seconds()

	key := clientID + "|" + strconv.Itoa(limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(limit), lastRefill: now}
		l.buckets[key] = b
	}

	b.tokens = min(float64(limit), b.tokens+now.Sub(b.lastRefill).Seconds()*rate)
	b.lastRefill = now
	b.lastSeen = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	reset := now
	if b.tokens < float64(limit) {
		reset = now.Add(time.Duration((float64(limit) - b.tokens) / rate * float64(time.Second)))
	}
	return allowed, Info{Limit: limit, Remaining: int(b.tokens), ResetTime: reset}
}

func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.cfg.CleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-l.cfg.CleanupInterval)
			l.mu.Lock()
			for key, b := range l.buckets {
				if b.lastSeen.Before(cutoff) {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
