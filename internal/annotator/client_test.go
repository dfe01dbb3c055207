package annotator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhan-setu/grievance-service/internal/config"
	"github.com/samadhan-setu/grievance-service/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.AnnotatorConfig{BaseURL: srv.URL, TimeoutSeconds: 5})
}

func TestClassify_NormalizesResponse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/classify", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "no water since monday", req["text"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"department": "Jal Sansthan (Water)",
			"summary":    "Water outage",
		})
	})

	got, err := client.Classify(context.Background(), "no water since monday")
	require.NoError(t, err)
	assert.Equal(t, "Jal Sansthan (Water)", got.Department)
	assert.Equal(t, domain.PriorityLow, got.Priority, "missing priority defaults to Low")
	assert.Nil(t, got.SubDepartment)
	assert.Equal(t, "Water outage", got.Summary)
}

func TestClassify_RejectsUnknownDepartment(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"department": "Space Affairs"})
	})

	_, err := client.Classify(context.Background(), "rocket noise")
	require.Error(t, err)
}

func TestClassify_UpstreamFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Classify(context.Background(), "anything")
	require.Error(t, err)
}

func TestClassify_UnconfiguredBaseURL(t *testing.T) {
	t.Parallel()

	client := NewClient(config.AnnotatorConfig{})
	_, err := client.Classify(context.Background(), "anything")
	require.Error(t, err)
}
