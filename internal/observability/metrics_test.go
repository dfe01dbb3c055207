package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_SnapshotCounts(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/complaints", "GET", 200, 0)
	m.RecordRequest("/complaints", "GET", 200, 0)
	m.RecordRequest("/complaints", "POST", 201, 0)
	m.RecordError("/complaints", "POST", "VALIDATION_FAILED")

	requests, errs := m.Snapshot()
	assert.Equal(t, int64(2), requests["/complaints|GET|200"])
	assert.Equal(t, int64(1), requests["/complaints|POST|201"])
	assert.Equal(t, int64(1), errs["/complaints|POST|VALIDATION_FAILED"])
}

func TestMetrics_SnapshotIsACopy(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/users/profile", "GET", 200, 0)

	requests, _ := m.Snapshot()
	requests["/users/profile|GET|200"] = 99

	fresh, _ := m.Snapshot()
	require.Equal(t, int64(1), fresh["/users/profile|GET|200"])
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL")
}
