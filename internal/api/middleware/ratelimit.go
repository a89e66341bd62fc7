package middleware

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/api/rest"
	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/ratelimit"
)

// RateLimit returns a gin middleware limiting requests per client IP.
// Rejected requests get 429 with a Retry-After header in whole seconds.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		decision := limiter.Allow(key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))

		if !decision.Allowed {
			retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			logger.DebugCtx(c.Request.Context(), "Rate limit exceeded",
				zap.String("client_ip", key),
				zap.String("path", c.Request.URL.Path),
			)
			rest.RespondAPIError(c, apierrors.NewTooManyRequestsError(
				"Too many requests, please try again later",
				"retry after "+strconv.Itoa(retryAfter)+"s",
			))
			return
		}
		c.Next()
	}
}
