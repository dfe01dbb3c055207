package events

import (
	"time"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintSubmitted     EventType = "complaint_submitted"
	EventComplaintClassified    EventType = "complaint_classified"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventOfficialCreated        EventType = "official_created"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id,omitempty"`
	ActorID     string      `json:"actor_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintSubmittedPayload payload.
type ComplaintSubmittedPayload struct {
	CitizenID string `json:"citizen_id"`
	Text      string `json:"text"`
}

// ComplaintClassifiedPayload payload.
type ComplaintClassifiedPayload struct {
	Department    string          `json:"department"`
	SubDepartment *string         `json:"sub_department,omitempty"`
	Priority      domain.Priority `json:"priority"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
	Remarks   string                 `json:"remarks"`
}

// OfficialCreatedPayload payload.
type OfficialCreatedPayload struct {
	OfficialID string      `json:"official_id"`
	Role       domain.Role `json:"role"`
	Department string      `json:"department"`
}
