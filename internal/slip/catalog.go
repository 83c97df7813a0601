package slip

import (
	"strings"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

// DefaultPageSize matches the slip grid on the dashboard.
const DefaultPageSize = 6

// FilterState is the per-session view state over the slip catalog. Callers
// reset CurrentPage to 1 whenever SearchTerm or ShowTodayOnly changes;
// Project does not clamp pages past the end and simply returns an empty page
// for them.
type FilterState struct {
	SearchTerm    string
	ShowTodayOnly bool
	CurrentPage   int
}

// Page is what the listing screen renders.
type Page struct {
	PageItems  []domain.MedicalSlip `json:"pageItems"`
	TotalPages int                  `json:"totalPages"`
	TodayCount int                  `json:"todayCount"`
}

// Project derives the visible page from the full slip set. It is a pure
// function of its inputs: today is passed in rather than read from a clock,
// and the fetch order of allSlips is preserved, never re-sorted.
func Project(allSlips []domain.MedicalSlip, filters FilterState, pageSize int, today string) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page := filters.CurrentPage
	if page < 1 {
		page = 1
	}

	var out Page
	term := strings.ToLower(filters.SearchTerm)
	filtered := make([]domain.MedicalSlip, 0, len(allSlips))
	for _, s := range allSlips {
		if s.Date == today {
			// Counted across the whole set, independent of the filters.
			out.TodayCount++
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(s.PatientName), term) &&
			!strings.Contains(strings.ToLower(s.PatientID), term) {
			continue
		}
		if filters.ShowTodayOnly && s.Date != today {
			continue
		}
		filtered = append(filtered, s)
	}

	out.TotalPages = (len(filtered) + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start >= len(filtered) {
		out.PageItems = []domain.MedicalSlip{}
		return out
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	out.PageItems = filtered[start:end]
	return out
}
