package admin

import (
	"strings"
	"time"

	"rampung/internal/domain"
	"rampung/internal/repository"
)

// ListSubmissionsQuery is the parsed query string of the admin listing.
// Status and complexity accept comma-separated values.
type ListSubmissionsQuery struct {
	Status     string `form:"status"`
	Complexity string `form:"complexity"`
	Search     string `form:"search"`
	SortBy     string `form:"sort_by"`
	Order      string `form:"order"`
	Page       int    `form:"page"`
	Limit      int    `form:"limit"`
}

func (q ListSubmissionsQuery) toFilters() repository.SubmissionFilters {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	f := repository.SubmissionFilters{
		Search:   strings.TrimSpace(q.Search),
		SortBy:   q.SortBy,
		SortDesc: q.Order != "asc",
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	for _, s := range splitCSV(q.Status) {
		f.Statuses = append(f.Statuses, domain.SubmissionStatus(s))
	}
	for _, c := range splitCSV(q.Complexity) {
		f.Complexities = append(f.Complexities, domain.ComplexityLevel(c))
	}
	return f
}

func splitCSV(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type ListSubmissionsResponse struct {
	Submissions []domain.Submission `json:"submissions"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	Limit       int                 `json:"limit"`
}

// UpdateSubmissionRequest carries the only three fields the back office may
// change on a submission. Absent fields stay untouched.
type UpdateSubmissionRequest struct {
	Status      *string    `json:"status"`
	AdminNotes  *string    `json:"admin_notes"`
	ContactedAt *time.Time `json:"contacted_at"`
}

type StatsResponse struct {
	TotalSubmissions int64            `json:"total_submissions"`
	ByStatus         map[string]int64 `json:"by_status"`
	NewThisWeek      int64            `json:"new_this_week"`
	PortfolioCount   int64            `json:"portfolio_count"`
	TestimonialCount int64            `json:"testimonial_count"`
}
