package testimonial

import (
	"context"
	"testing"

	"rampung/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, t *domain.Testimonial) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id int64) (*domain.Testimonial, error) {
	args := m.Called(ctx, id)
	if t := args.Get(0); t != nil {
		return t.(*domain.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) List(ctx context.Context, publishedOnly bool) ([]domain.Testimonial, error) {
	args := m.Called(ctx, publishedOnly)
	if items := args.Get(0); items != nil {
		return items.([]domain.Testimonial), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) Update(ctx context.Context, t *domain.Testimonial) error {
	return m.Called(ctx, t).Error(0)
}

func (m *mockStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func validCreate() CreateTestimonialRequest {
	return CreateTestimonialRequest{
		ClientName:  "Dewi Lestari",
		Quote:       "Delivered exactly what our kitchen staff needed.",
		Rating:      5,
		IsPublished: true,
	}
}

func TestCreate_Valid(t *testing.T) {
	store := new(mockStore)
	store.On("Create", mock.Anything, mock.MatchedBy(func(tt *domain.Testimonial) bool {
		return tt.ClientName == "Dewi Lestari" && tt.Rating == 5
	})).Return(nil)

	svc := NewService(store)
	got, err := svc.Create(context.Background(), validCreate())
	require.NoError(t, err)
	assert.Equal(t, 5, got.Rating)
	store.AssertExpectations(t)
}

func TestCreate_RatingOutOfRange(t *testing.T) {
	store := new(mockStore)
	svc := NewService(store)

	req := validCreate()
	req.Rating = 6

	_, err := svc.Create(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "max", verr.Fields["rating"])
	store.AssertNotCalled(t, "Create")
}

func TestCreate_MissingQuote(t *testing.T) {
	svc := NewService(new(mockStore))

	req := validCreate()
	req.Quote = ""

	_, err := svc.Create(context.Background(), req)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "required", verr.Fields["quote"])
}

func TestUpdate_NotFound(t *testing.T) {
	store := new(mockStore)
	store.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrRecordNotFound)

	svc := NewService(store)
	_, err := svc.Update(context.Background(), 99, validCreate())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_PublishedFlagPassedThrough(t *testing.T) {
	store := new(mockStore)
	store.On("List", mock.Anything, true).Return([]domain.Testimonial{{ID: 1}}, nil)

	svc := NewService(store)
	items, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	store.AssertExpectations(t)
}
