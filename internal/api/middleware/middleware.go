package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/api/rest"
	apierrors "github.com/feral-file/poker-hand-logger/internal/api/shared/errors"
	"github.com/feral-file/poker-hand-logger/internal/logger"
)

// resourceKeys names the log field carrying the :id param of each resource route
var resourceKeys = map[string]string{
	"/api/tables/":  "tableId",
	"/api/players/": "playerId",
	"/api/hands/":   "handId",
}

// resourceFields returns the matched route pattern and, for resource routes,
// the addressed id under its resource-specific key.
func resourceFields(c *gin.Context) []zap.Field {
	route := c.FullPath()
	fields := []zap.Field{zap.String("route", route)}

	id := c.Param("id")
	if id == "" {
		return fields
	}
	for prefix, key := range resourceKeys {
		if strings.HasPrefix(route, prefix) {
			return append(fields, zap.String(key, id))
		}
	}
	return fields
}

// Logger returns a gin middleware for structured logging using zap.
// Server errors are logged at warn level; everything else at info.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		status := c.Writer.Status()
		fields := append([]zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}, resourceFields(c)...)

		if status >= http.StatusInternalServerError {
			logger.WarnCtx(c.Request.Context(), "API request failed", fields...)
			return
		}
		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("path", c.Request.URL.Path),
				)
				rest.RespondAPIError(c, apierrors.NewInternalError("Internal server error"))
			}
		}()
		c.Next()
	}
}
