// Package analytics computes dashboard KPI rollups from complaint
// collections. Everything here is a pure fold over the input slice.
package analytics

import "github.com/samadhan-setu/grievance-service/internal/domain"

// TrendPoint is one day bucket of the submission trend.
type TrendPoint struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// Stats is the KPI rollup the dashboards render.
type Stats struct {
	Total           int                     `json:"total"`
	Resolved        int                     `json:"resolved"`
	Pending         int                     `json:"pending"`
	Critical        int                     `json:"critical"`
	ByDepartment    map[string]int          `json:"by_department"`
	BySubDepartment map[string]int          `json:"by_sub_department"`
	ByPriority      map[domain.Priority]int `json:"by_priority"`
	DailyTrend      []TrendPoint            `json:"daily_trend"`
}

// trendWindow caps the daily trend at the last 7 distinct day buckets.
const trendWindow = 7

// dayKeyLayout renders "Jan 2" style bucket labels.
const dayKeyLayout = "Jan 2"

// ComputeStats folds a complaint collection into a Stats rollup. An empty
// collection yields all-zero counters and empty maps.
//
// Pending is defined as total minus resolved, so REJECTED complaints count
// toward neither bucket cleanly; the arithmetic is kept deliberately.
// Trend buckets keep first-encounter order, not calendar order.
func ComputeStats(complaints []domain.Complaint) Stats {
	stats := Stats{
		Total:           len(complaints),
		ByDepartment:    make(map[string]int, len(domain.Departments)),
		BySubDepartment: make(map[string]int),
		ByPriority:      make(map[domain.Priority]int, len(domain.Priorities)),
		DailyTrend:      []TrendPoint{},
	}
	for _, dept := range domain.Departments {
		stats.ByDepartment[dept] = 0
	}
	for _, p := range domain.Priorities {
		stats.ByPriority[p] = 0
	}

	dayCounts := make(map[string]int)
	dayOrder := make([]string, 0)

	for _, c := range complaints {
		if c.Status == domain.ComplaintStatusResolved {
			stats.Resolved++
		}

		priority := c.Classification.EffectivePriority()
		stats.ByPriority[priority]++
		if priority == domain.PriorityCritical && c.Status == domain.ComplaintStatusPending {
			stats.Critical++
		}

		if c.Classification != nil {
			if _, ok := stats.ByDepartment[c.Classification.Department]; ok {
				stats.ByDepartment[c.Classification.Department]++
			}
		}
		stats.BySubDepartment[c.Classification.EffectiveSubDepartment()]++

		day := c.CreatedAt.Format(dayKeyLayout)
		if _, seen := dayCounts[day]; !seen {
			dayOrder = append(dayOrder, day)
		}
		dayCounts[day]++
	}

	stats.Pending = stats.Total - stats.Resolved

	if len(dayOrder) > trendWindow {
		dayOrder = dayOrder[len(dayOrder)-trendWindow:]
	}
	for _, day := range dayOrder {
		stats.DailyTrend = append(stats.DailyTrend, TrendPoint{Day: day, Count: dayCounts[day]})
	}

	return stats
}
