package domain

// Priority enumerates classification urgency levels.
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// Priorities lists the three buckets in severity order.
var Priorities = []Priority{PriorityCritical, PriorityMedium, PriorityLow}

// Valid reports whether p is a member of the priority enum.
func (p Priority) Valid() bool {
	switch p {
	case PriorityCritical, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Classification is the annotation an external annotator attaches to a
// complaint. It is immutable once attached and consumed read-only.
type Classification struct {
	Department    string
	SubDepartment *string
	Priority      Priority
	Summary       string
}

// EffectivePriority returns the priority, defaulting to Low when the
// annotator omitted it or produced an unknown value.
func (c *Classification) EffectivePriority() Priority {
	if c == nil || !c.Priority.Valid() {
		return PriorityLow
	}
	return c.Priority
}

// EffectiveSubDepartment returns the sub-department, defaulting to the
// General bucket when absent.
func (c *Classification) EffectiveSubDepartment() string {
	if c == nil || c.SubDepartment == nil || *c.SubDepartment == "" {
		return GeneralSubDepartment
	}
	return *c.SubDepartment
}
