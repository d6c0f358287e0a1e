package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCounters(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/students", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/students", "GET", 200, 7*time.Millisecond)
	m.RecordError("/api/students", "DELETE", "FORBIDDEN")

	assert.Equal(t, int64(2), m.RequestCount("/api/students", "GET", 200))
	assert.Equal(t, int64(0), m.RequestCount("/api/students", "GET", 404))
	assert.Equal(t, int64(1), m.ErrorCount("/api/students", "DELETE", "FORBIDDEN"))
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	assert.Equal(t, int64(0), m.RequestCount("/x", "GET", 200))
}
