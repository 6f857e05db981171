package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"
)

// Default per-IP request budget
const (
	DefaultRequestLimit = 120
	DefaultRateWindow   = time.Minute
)

// RateLimitConfig holds configuration for rate limiting middleware
type RateLimitConfig struct {
	RequestLimit int
	WindowSize   time.Duration
	// KeyFunc extracts the rate limit key, per IP when nil
	KeyFunc func(r *http.Request) (string, error)
}

// RateLimit creates a sliding window rate limiter answering 429 with a JSON body
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	if cfg.RequestLimit <= 0 {
		cfg.RequestLimit = DefaultRequestLimit
	}
	if cfg.WindowSize <= 0 {
		cfg.WindowSize = DefaultRateWindow
	}
	keyFunc := cfg.KeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	return httprate.Limit(
		cfg.RequestLimit,
		cfg.WindowSize,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", strconv.Itoa(int(cfg.WindowSize.Seconds())))
			writeErrorMessage(w, http.StatusTooManyRequests, "too many requests")
		}),
	)
}
