package domain

import "time"

// ComplaintStatus enumerates lifecycle states for complaints.
type ComplaintStatus string

const (
	ComplaintStatusPending  ComplaintStatus = "PENDING"
	ComplaintStatusResolved ComplaintStatus = "RESOLVED"
	ComplaintStatusRejected ComplaintStatus = "REJECTED"
)

// Valid reports whether s is a member of the status enum.
func (s ComplaintStatus) Valid() bool {
	switch s {
	case ComplaintStatusPending, ComplaintStatusResolved, ComplaintStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s ends the resolution lifecycle.
func (s ComplaintStatus) Terminal() bool {
	return s == ComplaintStatusResolved || s == ComplaintStatusRejected
}

// Complaint is the aggregate for citizen grievances.
type Complaint struct {
	ID                string
	ReferenceKey      string
	CitizenID         string
	Text              string
	Status            ComplaintStatus
	ResolutionRemarks *string
	Classification    *Classification
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ResolvedAt        *time.Time
}

// CanTransition reports whether the one-way PENDING -> {RESOLVED|REJECTED}
// transition to next is allowed from the current status.
func (c *Complaint) CanTransition(next ComplaintStatus) bool {
	return c.Status == ComplaintStatusPending && next.Terminal()
}
