package portfolio

import (
	"context"
	"errors"
	"strings"

	"rampung/internal/domain"
	"rampung/internal/pkg/validator"

	"gorm.io/gorm"
)

type Store interface {
	Create(ctx context.Context, p *domain.Portfolio) error
	GetByID(ctx context.Context, id int64) (*domain.Portfolio, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Portfolio, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.Portfolio, error)
	Update(ctx context.Context, p *domain.Portfolio) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req CreatePortfolioRequest) (*domain.Portfolio, error) {
	req.Slug = normalizeSlug(req.Slug)
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if _, err := s.store.GetBySlug(ctx, req.Slug); err == nil {
		return nil, ErrSlugTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := req.toDomain()
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Portfolio, error) {
	p, err := s.store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// GetPublished resolves a public detail page by slug; unpublished items stay
// invisible outside the back office.
func (s *Service) GetPublished(ctx context.Context, slug string) (*domain.Portfolio, error) {
	p, err := s.store.GetBySlug(ctx, normalizeSlug(slug))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !p.IsPublished {
		return nil, ErrNotFound
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, publishedOnly bool) ([]domain.Portfolio, error) {
	return s.store.List(ctx, publishedOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdatePortfolioRequest) (*domain.Portfolio, error) {
	req.Slug = normalizeSlug(req.Slug)
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	if existing, err := s.store.GetBySlug(ctx, req.Slug); err == nil {
		if existing.ID != id {
			return nil, ErrSlugTaken
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	p := req.toDomain()
	p.ID = id
	err := s.store.Update(ctx, p)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	err := s.store.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
