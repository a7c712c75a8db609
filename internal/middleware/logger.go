package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/imoveisxml/internal/logger"
)

// RequestLogger logs one structured line per HTTP request.
//
// Fields: request_id (when RequestID runs first), method, path, query,
// status, latency_ms, client_ip and, when handlers attached errors, errors.
// 5xx responses log at error level, 4xx at warn, the rest at info.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = logger.L().Error()
		case status >= http.StatusBadRequest:
			ev = logger.L().Warn()
		}
		if len(c.Errors) > 0 {
			ev = ev.Str("errors", c.Errors.String())
		}

		ev.Str("request_id", toString(rid)).
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

type visitor struct {
	windowStart time.Time
	count       int
}

// RateLimiter is a fixed-window, per-client-IP request limiter.
//
// State lives in memory, so limits apply per process.
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    int
	window   time.Duration
	now      func() time.Time
}

// NewRateLimiter allows up to limit requests per window for each client IP.
//
// Parameters:
//   - limit: requests allowed per window; values <= 0 disable limiting.
//   - window: window length.
//
// Returns:
//   - *RateLimiter: use Handler() to obtain the gin middleware.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Handler returns the gin middleware. Requests over the limit receive
// 429 Too Many Requests with a dto.ErrorResponse body.
func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 || rl.allow(c.ClientIP()) {
			c.Next()
			return
		}
		AbortWithError(c, http.StatusTooManyRequests, "rate limit exceeded", nil)
	}
}

func (rl *RateLimiter) allow(ip string) bool {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	v, ok := rl.visitors[ip]
	if !ok || now.Sub(v.windowStart) >= rl.window {
		rl.visitors[ip] = &visitor{windowStart: now, count: 1}
		rl.sweep(now)
		return true
	}
	v.count++
	return v.count <= rl.limit
}

// sweep drops visitors whose window has expired.
func (rl *RateLimiter) sweep(now time.Time) {
	for ip, v := range rl.visitors {
		if now.Sub(v.windowStart) >= rl.window {
			delete(rl.visitors, ip)
		}
	}
}
