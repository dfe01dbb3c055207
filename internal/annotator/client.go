// Package annotator is the client for the external complaint classification
// service. The annotator itself is an opaque upstream; this package only
// speaks its fixed schema and normalizes the response.
package annotator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samadhan-setu/grievance-service/internal/config"
	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// Annotator classifies free-text complaints.
type Annotator interface {
	Classify(ctx context.Context, text string) (*domain.Classification, error)
}

// Client is the HTTP implementation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client from config.
func NewClient(cfg config.AnnotatorConfig) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		http:    &http.Client{Timeout: cfg.Timeout()},
	}
}

type classifyRequest struct {
	Text string `json:"text"`
}

type classifyResponse struct {
	Department    string  `json:"department"`
	SubDepartment *string `json:"sub_department,omitempty"`
	Priority      string  `json:"priority,omitempty"`
	Summary       string  `json:"summary"`
}

// Classify posts the complaint text and returns the normalized annotation.
// A department outside the canonical enumeration is an upstream contract
// violation and surfaces as an error; an absent priority defaults to Low.
func (c *Client) Classify(ctx context.Context, text string) (*domain.Classification, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("annotator: base URL not configured")
	}

	body, err := json.Marshal(classifyRequest{Text: text})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/classify", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("annotator: unexpected status %d", resp.StatusCode)
	}

	var parsed classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("annotator: decode response: %w", err)
	}

	if !domain.IsCanonicalDepartment(parsed.Department) {
		return nil, fmt.Errorf("annotator: unknown department %q", parsed.Department)
	}

	classification := &domain.Classification{
		Department:    parsed.Department,
		SubDepartment: parsed.SubDepartment,
		Priority:      domain.Priority(parsed.Priority),
		Summary:       parsed.Summary,
	}
	if !classification.Priority.Valid() {
		classification.Priority = domain.PriorityLow
	}
	return classification, nil
}
