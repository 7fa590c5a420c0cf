package middleware

import (
	"bytes"
	"io"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/handyline/handyline-api/libs/go/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const maxLoggedBody = 4 * 1024

var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
	"X-Api-Key":     true,
}

// bodyLogWriter captures the response body while writing it through
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyLogWriter) Write(b []byte) (int, error) {
	if w.body.Len() < maxLoggedBody {
		w.body.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

// EnhancedLoggingMiddleware logs request and response bodies in development.
// Uploads and binary responses are logged by size only.
func EnhancedLoggingMiddleware(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isDevelopment {
			c.Next()
			return
		}

		start := time.Now()
		log := logger.L().With(zap.String("correlation_id", GetCorrelationID(c)))

		var requestBody []byte
		if c.Request.Body != nil && isTextual(c.GetHeader("Content-Type")) {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(requestBody))
		}

		log.Debug("Request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Any("headers", headerMap(c.Request.Header)),
			zap.String("body", truncate(requestBody)),
			zap.Int64("content_length", c.Request.ContentLength),
		)

		blw := &bodyLogWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = blw

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.Int("body_size", c.Writer.Size()),
		}
		if isTextual(c.Writer.Header().Get("Content-Type")) {
			fields = append(fields, zap.String("body", truncate(blw.body.Bytes())))
		}
		log.Debug("Response", fields...)

		for _, err := range c.Errors {
			log.Error("Request error", zap.Error(err.Err), zap.Any("meta", err.Meta))
		}
	}
}

// RequestLoggingMiddleware logs one line per request, at warn for 4xx and
// error for 5xx responses.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		if ce := logger.L().Check(level, "Request completed"); ce != nil {
			ce.Write(
				zap.String("correlation_id", GetCorrelationID(c)),
				zap.String("method", c.Request.Method),
				zap.String("route", route),
				zap.Int("status", status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client_ip", c.ClientIP()),
				zap.Int("body_size", c.Writer.Size()),
			)
		}
	}
}

func isTextual(contentType string) bool {
	return strings.HasPrefix(contentType, "application/json") || strings.HasPrefix(contentType, "text/")
}

func headerMap(h map[string][]string) map[string]string {
	out := make(map[string]string, len(h))
	for key, values := range h {
		if redactedHeaders[key] {
			out[key] = "[REDACTED]"
			continue
		}
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}
