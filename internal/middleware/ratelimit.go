package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/coin-wallet/pkg/ratelimit"
	"github.com/go-petr/coin-wallet/pkg/web"
	"github.com/rs/zerolog"
)

// ErrTooManyRequests is returned to clients over their request budget.
var ErrTooManyRequests = errors.New("too many requests")

// RateLimit rejects requests once the client exhausts its budget for a route.
func RateLimit(store *ratelimit.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		key := c.ClientIP() + ":" + route

		if !store.Allow(key) {
			zerolog.Ctx(c.Request.Context()).Warn().
				Str("ip", c.ClientIP()).
				Str("route", route).
				Msg("rate limited")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, web.Error(ErrTooManyRequests))
			return
		}

		c.Next()
	}
}
