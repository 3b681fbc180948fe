package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegisterer("test", reg)

	m.IncBookingCreated("facility")
	m.IncBookingCreated("facility")
	m.IncBookingCreated("session")
	m.IncSlotConflict("tennis")
	m.IncArtifactFailure("session")
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/facility-bookings", http.StatusCreated, 15*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookings.WithLabelValues("facility")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookings.WithLabelValues("session")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.slotConflicts.WithLabelValues("tennis")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.artifactFails.WithLabelValues("session")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequests.WithLabelValues(http.MethodPost, "/api/v1/facility-bookings", "201")))
}
