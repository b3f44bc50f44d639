package observability

import (
	"testing"
	"time"
)

func TestMetricsCountsRequestsPerKey(t *testing.T) {
	m := NewMetrics()

	m.RecordRequest("/api/encuestas", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/encuestas", "GET", 200, 7*time.Millisecond)
	m.RecordRequest("/api/encuestas", "POST", 201, 9*time.Millisecond)

	if got := m.RequestTotal("/api/encuestas", "GET", 200); got != 2 {
		t.Errorf("expected 2 GET requests, got %d", got)
	}
	if got := m.RequestTotal("/api/encuestas", "POST", 201); got != 1 {
		t.Errorf("expected 1 POST request, got %d", got)
	}
	if got := m.RequestTotal("/api/usuarios", "GET", 200); got != 0 {
		t.Errorf("expected 0 for an unseen key, got %d", got)
	}
}

func TestMetricsNilReceiverIsSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/api/login", "POST", 200, time.Millisecond)
	m.RecordError("/api/login", "POST", "UNAUTHORIZED")
}
