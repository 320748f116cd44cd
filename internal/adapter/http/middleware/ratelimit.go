package middleware

import (
	"fmt"
	"strconv"
	"time"

	"trust-engine/internal/core/ports"
	"trust-engine/pkg/apperror"
	"trust-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the per-endpoint-group rate limits.
// Fraud checks are called synchronously from the booking/payment path,
// so their limit is generous; reporting is a human-paced dashboard.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"fraud_check": {Limit: 600, Window: time.Minute},
		"reporting":   {Limit: 60, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for an endpoint group,
// sharing the fixed-window counter store used for velocity signals.
func RateLimiter(counters ports.VelocityCounter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s:%s", extractIdentifier(c), group)

		count, err := counters.Incr(c.Request.Context(), key, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		remaining := rule.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.FormatInt(rule.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if count > rule.Limit {
			c.Header("Retry-After", strconv.FormatInt(int64(rule.Window.Seconds()), 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source: the
// authenticated caller when available, otherwise the client IP.
func extractIdentifier(c *gin.Context) string {
	if caller, exists := c.Get(CtxCaller); exists {
		return fmt.Sprintf("%v", caller)
	}
	return c.ClientIP()
}
