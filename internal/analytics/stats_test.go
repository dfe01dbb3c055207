package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samadhan-setu/grievance-service/internal/domain"
)

func strptr(s string) *string { return &s }

func classified(dept string, sub *string, priority domain.Priority) *domain.Classification {
	return &domain.Classification{Department: dept, SubDepartment: sub, Priority: priority}
}

func TestComputeStats_EmptyCollection(t *testing.T) {
	t.Parallel()

	stats := ComputeStats(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Resolved)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 0, stats.Critical)
	assert.Empty(t, stats.BySubDepartment)
	assert.Empty(t, stats.DailyTrend)

	require.Len(t, stats.ByDepartment, len(domain.Departments))
	for _, dept := range domain.Departments {
		assert.Equal(t, 0, stats.ByDepartment[dept], dept)
	}
	for _, p := range domain.Priorities {
		assert.Equal(t, 0, stats.ByPriority[p], p)
	}
}

func TestComputeStats_Fixture(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.March, 3, 10, 0, 0, 0, time.UTC)
	water := "Jal Sansthan (Water)"
	complaints := []domain.Complaint{
		{Status: domain.ComplaintStatusResolved, CreatedAt: day,
			Classification: classified(water, nil, domain.PriorityMedium)},
		{Status: domain.ComplaintStatusResolved, CreatedAt: day,
			Classification: classified(water, strptr("Pipelines"), domain.PriorityLow)},
		{Status: domain.ComplaintStatusRejected, CreatedAt: day,
			Classification: classified("Panchayati Raj", nil, domain.PriorityLow)},
		{Status: domain.ComplaintStatusPending, CreatedAt: day,
			Classification: classified(water, nil, domain.PriorityCritical)},
		{Status: domain.ComplaintStatusPending, CreatedAt: day},
	}

	stats := ComputeStats(complaints)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 3, stats.Pending, "pending is total minus resolved, folding REJECTED")
	assert.Equal(t, 1, stats.Critical)

	assert.Equal(t, 3, stats.ByDepartment[water])
	assert.Equal(t, 1, stats.ByDepartment["Panchayati Raj"])
	assert.Equal(t, 0, stats.ByDepartment["Electricity (UPCL)"])

	assert.Equal(t, 4, stats.BySubDepartment[domain.GeneralSubDepartment],
		"missing sub-department and missing classification both bucket as General")
	assert.Equal(t, 1, stats.BySubDepartment["Pipelines"])

	assert.Equal(t, 1, stats.ByPriority[domain.PriorityCritical])
	assert.Equal(t, 1, stats.ByPriority[domain.PriorityMedium])
	assert.Equal(t, 3, stats.ByPriority[domain.PriorityLow], "unclassified defaults to Low")
}

func TestComputeStats_Idempotent(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)
	complaints := []domain.Complaint{
		{Status: domain.ComplaintStatusPending, CreatedAt: day,
			Classification: classified("Health & Family Welfare", nil, domain.PriorityCritical)},
		{Status: domain.ComplaintStatusResolved, CreatedAt: day.AddDate(0, 0, 1)},
	}

	first := ComputeStats(complaints)
	second := ComputeStats(complaints)
	assert.Equal(t, first, second)
}

func TestComputeStats_TrendKeepsEncounterOrderAndLastSeven(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	var complaints []domain.Complaint
	// Nine distinct days, newest first, plus one backfilled repeat of day 8.
	for i := 8; i >= 0; i-- {
		complaints = append(complaints, domain.Complaint{
			Status:    domain.ComplaintStatusPending,
			CreatedAt: base.AddDate(0, 0, i),
		})
	}
	complaints = append(complaints, domain.Complaint{
		Status:    domain.ComplaintStatusPending,
		CreatedAt: base.AddDate(0, 0, 8),
	})

	stats := ComputeStats(complaints)

	require.Len(t, stats.DailyTrend, 7)
	// First two encountered days (Jan 9, Jan 8) fall off the window even
	// though they are chronologically newest.
	assert.Equal(t, "Jan 7", stats.DailyTrend[0].Day)
	assert.Equal(t, "Jan 1", stats.DailyTrend[6].Day)
	for _, point := range stats.DailyTrend {
		assert.Equal(t, 1, point.Count, point.Day)
	}
}

func TestComputeStats_TrendAggregatesSameDay(t *testing.T) {
	t.Parallel()

	day := time.Date(2025, time.February, 14, 0, 0, 0, 0, time.UTC)
	complaints := []domain.Complaint{
		{CreatedAt: day, Status: domain.ComplaintStatusPending},
		{CreatedAt: day.Add(5 * time.Hour), Status: domain.ComplaintStatusPending},
		{CreatedAt: day.Add(9 * time.Hour), Status: domain.ComplaintStatusResolved},
	}

	stats := ComputeStats(complaints)
	require.Len(t, stats.DailyTrend, 1)
	assert.Equal(t, TrendPoint{Day: "Feb 14", Count: 3}, stats.DailyTrend[0])
}
