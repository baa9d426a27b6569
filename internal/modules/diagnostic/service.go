package diagnostic

import (
	"context"

	"rampung/internal/domain"
	"rampung/internal/pkg/logger"
	"rampung/internal/pkg/monitoring"
	"rampung/internal/scoring"
	"rampung/internal/wizard"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmissionStore persists accepted submissions.
type SubmissionStore interface {
	Create(ctx context.Context, s *domain.Submission) error
}

// EventPublisher fans a new submission out to listeners, e.g. the admin
// activity feed. A nil publisher is valid and means nobody is listening.
type EventPublisher interface {
	SubmissionCreated(s *domain.Submission)
}

type Service struct {
	store  SubmissionStore
	events EventPublisher
}

func NewService(store SubmissionStore, events EventPublisher) *Service {
	return &Service{store: store, events: events}
}

// Submit runs the full server-side gate over the draft, scores it and
// persists the result. Validation mirrors the wizard's step gates so a
// hand-crafted request cannot bypass what the form enforces.
func (s *Service) Submit(ctx context.Context, d domain.Draft) (*domain.Submission, error) {
	if errs := wizard.ValidateDraft(d); len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	result := scoring.Score(d)
	flags := scoring.DeriveFlags(d, result)

	sub := &domain.Submission{
		PublicID:         uuid.NewString(),
		Name:             d.Name,
		Email:            d.Email,
		Company:          d.Company,
		BudgetIDR:        amountOrNil(d.BudgetIDR),
		BudgetUSD:        amountOrNil(d.BudgetUSD),
		Platform:         d.Platform,
		PlatformOther:    d.PlatformOther,
		TargetUser:       d.TargetUser,
		Features:         append([]domain.Feature(nil), d.Features...),
		Timeline:         d.Timeline,
		ScoreBudget:      result.Budget,
		ScorePlatform:    result.Platform,
		ScoreTargetUser:  result.TargetUser,
		ScoreFeatures:    result.Features,
		ScoreTimeline:    result.Timeline,
		TotalScore:       result.TotalScore,
		ComplexityLevel:  result.ComplexityLevel,
		TimelineWarning:  flags.TimelineWarning,
		NeedsMultiTenant: flags.NeedsMultiTenant,
		Status:           domain.StatusNew,
	}

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, err
	}

	monitoring.SubmissionsReceived.WithLabelValues(string(sub.ComplexityLevel)).Inc()
	logger.Log.Info("diagnostic submission accepted",
		zap.String("public_id", sub.PublicID),
		zap.Int("total_score", sub.TotalScore),
		zap.String("complexity", string(sub.ComplexityLevel)),
	)

	if s.events != nil {
		s.events.SubmissionCreated(sub)
	}
	return sub, nil
}

// AsSubmitter exposes the service through the wizard's submission boundary.
func (s *Service) AsSubmitter() wizard.Submitter {
	return wizard.SubmitterFunc(func(ctx context.Context, d domain.Draft) error {
		_, err := s.Submit(ctx, d)
		return err
	})
}

// amountOrNil keeps absent or zero budgets as NULL rather than 0, so the
// back office can tell "no answer" from "answered zero".
func amountOrNil(raw string) *int64 {
	n := scoring.ParseAmount(raw)
	if n <= 0 {
		return nil
	}
	return &n
}
