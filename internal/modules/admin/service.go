package admin

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strconv"
	"time"

	"rampung/internal/domain"
	"rampung/internal/pkg/logger"
	"rampung/internal/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SubmissionStore is the persistence surface the back office works against.
type SubmissionStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	List(ctx context.Context, f repository.SubmissionFilters) ([]domain.Submission, int64, error)
	Patch(ctx context.Context, id int64, updates map[string]any) (*domain.Submission, error)
	Delete(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}

// ContentCounter reports how many records a content collection holds, for
// the dashboard stats card.
type ContentCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	store        SubmissionStore
	portfolios   ContentCounter
	testimonials ContentCounter
}

func NewService(store SubmissionStore, portfolios, testimonials ContentCounter) *Service {
	return &Service{store: store, portfolios: portfolios, testimonials: testimonials}
}

func (s *Service) List(ctx context.Context, q ListSubmissionsQuery) (*ListSubmissionsResponse, error) {
	f := q.toFilters()
	subs, total, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return &ListSubmissionsResponse{
		Submissions: subs,
		Total:       total,
		Page:        f.Offset/f.Limit + 1,
		Limit:       f.Limit,
	}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Submission, error) {
	sub, err := s.store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sub, err
}

// Update applies the allow-list patch. Score and draft columns are not
// reachable from here.
func (s *Service) Update(ctx context.Context, id int64, req UpdateSubmissionRequest) (*domain.Submission, error) {
	updates := map[string]any{}
	if req.Status != nil {
		status := domain.SubmissionStatus(*req.Status)
		if !domain.ValidSubmissionStatus(status) {
			return nil, ErrInvalidStatus
		}
		updates["status"] = string(status)
	}
	if req.AdminNotes != nil {
		updates["admin_notes"] = *req.AdminNotes
	}
	if req.ContactedAt != nil {
		updates["contacted_at"] = *req.ContactedAt
	}
	if len(updates) == 0 {
		return nil, ErrNoFields
	}

	sub, err := s.store.Patch(ctx, id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	logger.Log.Info("submission updated",
		zap.Int64("id", id),
		zap.String("status", string(sub.Status)),
	)
	return sub, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *Service) Stats(ctx context.Context) (*StatsResponse, error) {
	byStatus, err := s.store.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	statusCounts := make(map[string]int64, len(byStatus))
	for status, n := range byStatus {
		statusCounts[string(status)] = n
		total += n
	}

	newThisWeek, err := s.store.CountCreatedSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}
	portfolioCount, err := s.portfolios.Count(ctx)
	if err != nil {
		return nil, err
	}
	testimonialCount, err := s.testimonials.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalSubmissions: total,
		ByStatus:         statusCounts,
		NewThisWeek:      newThisWeek,
		PortfolioCount:   portfolioCount,
		TestimonialCount: testimonialCount,
	}, nil
}

var exportHeader = []string{
	"id", "created_at", "name", "email", "company",
	"budget_idr", "budget_usd", "platform", "target_user", "features", "timeline",
	"total_score", "complexity_level", "timeline_warning", "needs_multi_tenant",
	"status", "admin_notes", "contacted_at",
}

// ExportCSV renders every submission, newest first, as an RFC 4180 document.
func (s *Service) ExportCSV(ctx context.Context, q ListSubmissionsQuery) ([]byte, error) {
	f := q.toFilters()
	f.Limit = 0
	f.Offset = 0
	f.SortBy = "created_at"
	f.SortDesc = true

	subs, _, err := s.store.List(ctx, f)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range subs {
		if err := w.Write(exportRow(&subs[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func exportRow(sub *domain.Submission) []string {
	features := ""
	for i, f := range sub.Features {
		if i > 0 {
			features += "; "
		}
		features += string(f)
	}

	contacted := ""
	if sub.ContactedAt != nil {
		contacted = sub.ContactedAt.Format(time.RFC3339)
	}

	return []string{
		sub.PublicID,
		sub.CreatedAt.Format(time.RFC3339),
		sub.Name,
		sub.Email,
		sub.Company,
		amountString(sub.BudgetIDR),
		amountString(sub.BudgetUSD),
		string(sub.Platform),
		string(sub.TargetUser),
		features,
		string(sub.Timeline),
		strconv.Itoa(sub.TotalScore),
		string(sub.ComplexityLevel),
		strconv.FormatBool(sub.TimelineWarning),
		strconv.FormatBool(sub.NeedsMultiTenant),
		string(sub.Status),
		sub.AdminNotes,
		contacted,
	}
}

func amountString(n *int64) string {
	if n == nil {
		return ""
	}
	return strconv.FormatInt(*n, 10)
}
