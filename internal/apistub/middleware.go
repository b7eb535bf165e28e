package apistub

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// RequestID ensures every request has an ID for tracing and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.Request.Header.Get("X-Request-ID")
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDKey, rid)
		c.Writer.Header().Set("X-Request-ID", rid)
		c.Next()
	}
}

// GetRequestID extracts the request id when available.
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if v, ok := c.Get(requestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Logger prints a minimal request log line including the request id.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		log.Printf("[STUB] request_id=%s method=%s path=%s status=%d latency_ms=%.3f",
			GetRequestID(c),
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(latency.Microseconds())/1000.0,
		)
	}
}

// respondError sends the standard error payload. The client prefers the
// "message" field; "error" is kept for parity with the real backend.
func respondError(c *gin.Context, status int, message string) {
	payload := gin.H{
		"message": message,
		"error":   http.StatusText(status),
	}
	if rid := GetRequestID(c); rid != "" {
		payload["request_id"] = rid
	}
	c.JSON(status, payload)
}
