package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
	// IdleTTL evicts limiters of clients not seen for this long; 0 keeps them
	IdleTTL time.Duration
	// OnLimited is called for every refused request
	OnLimited func(c *gin.Context)
}

// DefaultRateLimitConfig returns the server's default limits. A UI process
// issues a handful of calls per keypress, so these only bite on runaways.
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 100,
		Burst:             200,
		IdleTTL:           10 * time.Minute,
	}
}

type rateClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit creates a per-IP token bucket middleware. Refused requests get
// 429 with a Retry-After hint.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	var (
		mu        sync.Mutex
		clients   = make(map[string]*rateClient)
		lastSweep time.Time
	)

	limiterFor := func(ip string, now time.Time) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if cfg.IdleTTL > 0 && now.Sub(lastSweep) > cfg.IdleTTL {
			for key, cl := range clients {
				if now.Sub(cl.lastSeen) > cfg.IdleTTL {
					delete(clients, key)
				}
			}
			lastSweep = now
		}

		cl, ok := clients[ip]
		if !ok {
			cl = &rateClient{limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)}
			clients[ip] = cl
		}
		cl.lastSeen = now
		return cl.limiter
	}

	return func(c *gin.Context) {
		now := time.Now()
		limiter := limiterFor(c.ClientIP(), now)

		if !limiter.AllowN(now, 1) {
			if cfg.OnLimited != nil {
				cfg.OnLimited(c)
			}
			c.Header("Retry-After", retryAfter(cfg.RequestsPerSecond))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}

// retryAfter is the whole seconds until one token refills
func retryAfter(rps int) string {
	if rps <= 0 {
		return "1"
	}
	return strconv.Itoa(int(math.Max(1, math.Ceil(1/float64(rps)))))
}
