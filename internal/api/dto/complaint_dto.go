package dto

import (
	"time"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// CreateComplaintRequest payload.
type CreateComplaintRequest struct {
	Text string `json:"text" validate:"required"`
}

// ResolveComplaintRequest payload for PATCH /complaints/:id/status.
type ResolveComplaintRequest struct {
	Status  domain.ComplaintStatus `json:"status" validate:"required,oneof=RESOLVED REJECTED"`
	Remarks string                 `json:"remarks" validate:"required"`
}

// ClassificationResponse is the annotator output attached to a complaint.
type ClassificationResponse struct {
	Department    string          `json:"department"`
	SubDepartment *string         `json:"sub_department,omitempty"`
	Priority      domain.Priority `json:"priority"`
	Summary       string          `json:"summary"`
}

// ComplaintResponse is the full complaint view.
type ComplaintResponse struct {
	ID                string                  `json:"id"`
	ReferenceKey      string                  `json:"reference_key"`
	CitizenID         string                  `json:"citizen_id"`
	Text              string                  `json:"text"`
	Status            domain.ComplaintStatus  `json:"status"`
	ResolutionRemarks *string                 `json:"resolution_remarks,omitempty"`
	Classification    *ClassificationResponse `json:"ai_classification,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
	ResolvedAt        *time.Time              `json:"resolved_at,omitempty"`
}

// NewComplaintResponse maps a domain complaint.
func NewComplaintResponse(c *domain.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:                c.ID,
		ReferenceKey:      c.ReferenceKey,
		CitizenID:         c.CitizenID,
		Text:              c.Text,
		Status:            c.Status,
		ResolutionRemarks: c.ResolutionRemarks,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
		ResolvedAt:        c.ResolvedAt,
	}
	if c.Classification != nil {
		resp.Classification = &ClassificationResponse{
			Department:    c.Classification.Department,
			SubDepartment: c.Classification.SubDepartment,
			Priority:      c.Classification.EffectivePriority(),
			Summary:       c.Classification.Summary,
		}
	}
	return resp
}

// NewComplaintResponses maps a slice of domain complaints.
func NewComplaintResponses(complaints []domain.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(complaints))
	for i := range complaints {
		out = append(out, NewComplaintResponse(&complaints[i]))
	}
	return out
}
