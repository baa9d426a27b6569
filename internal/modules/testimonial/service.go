package testimonial

import (
	"context"
	"errors"

	"rampung/internal/domain"
	"rampung/internal/pkg/validator"

	"gorm.io/gorm"
)

type Store interface {
	Create(ctx context.Context, t *domain.Testimonial) error
	GetByID(ctx context.Context, id int64) (*domain.Testimonial, error)
	List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error)
	Update(ctx context.Context, t *domain.Testimonial) error
	Delete(ctx context.Context, id int64) error
}

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, req CreateTestimonialRequest) (*domain.Testimonial, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	t := req.toDomain()
	if err := s.store.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Testimonial, error) {
	t, err := s.store.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

func (s *Service) List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	return s.store.List(ctx, publishedOnly)
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateTestimonialRequest) (*domain.Testimonial, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, &ValidationError{Fields: errs}
	}

	t := req.toDomain()
	t.ID = id
	err := s.store.Update(ctx, t)
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
