package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Middleware creates a Gin middleware for metrics collection
func Middleware(metrics *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := strconv.Itoa(c.Writer.Status())

		metrics.RecordHTTPRequest(method, path, status, duration)
	}
}

// Timer measures the duration of one collaborator call
type Timer struct {
	start        time.Time
	metrics      *Metrics
	collaborator string
}

// NewTimer starts a timer for a collaborator call
func NewTimer(metrics *Metrics, collaborator string) *Timer {
	return &Timer{
		start:        time.Now(),
		metrics:      metrics,
		collaborator: collaborator,
	}
}

// Stop stops the timer and records the call
func (t *Timer) Stop(status string) {
	if t.metrics == nil {
		return
	}
	t.metrics.RecordCollaboratorCall(t.collaborator, status, time.Since(t.start))
}
