package admin

import (
	"context"
	"strings"
	"testing"
	"time"

	"rampung/internal/domain"
	"rampung/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockSubmissionStore struct {
	mock.Mock
}

func (m *mockSubmissionStore) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	args := m.Called(ctx, id)
	if sub := args.Get(0); sub != nil {
		return sub.(*domain.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubmissionStore) List(ctx context.Context, f repository.SubmissionFilters) ([]domain.Submission, int64, error) {
	args := m.Called(ctx, f)
	if subs := args.Get(0); subs != nil {
		return subs.([]domain.Submission), args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

func (m *mockSubmissionStore) Patch(ctx context.Context, id int64, updates map[string]any) (*domain.Submission, error) {
	args := m.Called(ctx, id, updates)
	if sub := args.Get(0); sub != nil {
		return sub.(*domain.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubmissionStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockSubmissionStore) CountByStatus(ctx context.Context) (map[domain.SubmissionStatus]int64, error) {
	args := m.Called(ctx)
	if counts := args.Get(0); counts != nil {
		return counts.(map[domain.SubmissionStatus]int64), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockSubmissionStore) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func newTestService(store *mockSubmissionStore) (*Service, *mockCounter, *mockCounter) {
	portfolios := new(mockCounter)
	testimonials := new(mockCounter)
	return NewService(store, portfolios, testimonials), portfolios, testimonials
}

func strptr(s string) *string { return &s }

func TestUpdate_AllowListOnly(t *testing.T) {
	store := new(mockSubmissionStore)
	want := &domain.Submission{ID: 7, Status: domain.StatusContacted}
	store.On("Patch", mock.Anything, int64(7), map[string]any{
		"status":      "contacted",
		"admin_notes": "called twice",
	}).Return(want, nil)

	svc, _, _ := newTestService(store)
	got, err := svc.Update(context.Background(), 7, UpdateSubmissionRequest{
		Status:     strptr("contacted"),
		AdminNotes: strptr("called twice"),
	})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	store.AssertExpectations(t)
}

func TestUpdate_RejectsUnknownStatus(t *testing.T) {
	store := new(mockSubmissionStore)
	svc, _, _ := newTestService(store)

	_, err := svc.Update(context.Background(), 7, UpdateSubmissionRequest{Status: strptr("won")})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	store.AssertNotCalled(t, "Patch")
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	store := new(mockSubmissionStore)
	svc, _, _ := newTestService(store)

	_, err := svc.Update(context.Background(), 7, UpdateSubmissionRequest{})
	assert.ErrorIs(t, err, ErrNoFields)
	store.AssertNotCalled(t, "Patch")
}

func TestUpdate_NotFound(t *testing.T) {
	store := new(mockSubmissionStore)
	store.On("Patch", mock.Anything, int64(99), mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc, _, _ := newTestService(store)
	_, err := svc.Update(context.Background(), 99, UpdateSubmissionRequest{Status: strptr("archived")})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGet_TranslatesRecordNotFound(t *testing.T) {
	store := new(mockSubmissionStore)
	store.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	svc, _, _ := newTestService(store)
	_, err := svc.Get(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestList_DefaultsAndPagination(t *testing.T) {
	store := new(mockSubmissionStore)
	store.On("List", mock.Anything, mock.MatchedBy(func(f repository.SubmissionFilters) bool {
		return f.Limit == 20 && f.Offset == 0 && f.SortDesc
	})).Return([]domain.Submission{{ID: 1}}, int64(41), nil)

	svc, _, _ := newTestService(store)
	out, err := svc.List(context.Background(), ListSubmissionsQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(41), out.Total)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 20, out.Limit)
}

func TestList_ParsesCommaSeparatedFilters(t *testing.T) {
	store := new(mockSubmissionStore)
	store.On("List", mock.Anything, mock.MatchedBy(func(f repository.SubmissionFilters) bool {
		return len(f.Statuses) == 2 &&
			f.Statuses[0] == domain.StatusNew &&
			f.Statuses[1] == domain.StatusContacted &&
			len(f.Complexities) == 1 &&
			f.Complexities[0] == domain.ComplexityHigh &&
			f.Offset == 40
	})).Return([]domain.Submission{}, int64(0), nil)

	svc, _, _ := newTestService(store)
	_, err := svc.List(context.Background(), ListSubmissionsQuery{
		Status:     "new, contacted",
		Complexity: "High",
		Page:       3,
	})
	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestStats_Aggregates(t *testing.T) {
	store := new(mockSubmissionStore)
	store.On("CountByStatus", mock.Anything).Return(map[domain.SubmissionStatus]int64{
		domain.StatusNew:       12,
		domain.StatusContacted: 3,
	}, nil)
	store.On("CountCreatedSince", mock.Anything, mock.Anything).Return(int64(5), nil)

	svc, portfolios, testimonials := newTestService(store)
	portfolios.On("Count", mock.Anything).Return(int64(8), nil)
	testimonials.On("Count", mock.Anything).Return(int64(4), nil)

	out, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(15), out.TotalSubmissions)
	assert.Equal(t, int64(12), out.ByStatus["new"])
	assert.Equal(t, int64(5), out.NewThisWeek)
	assert.Equal(t, int64(8), out.PortfolioCount)
	assert.Equal(t, int64(4), out.TestimonialCount)
}

func TestExportCSV_RendersRows(t *testing.T) {
	contacted := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	budget := int64(75000000)
	store := new(mockSubmissionStore)
	store.On("List", mock.Anything, mock.MatchedBy(func(f repository.SubmissionFilters) bool {
		return f.Limit == 0 && f.SortBy == "created_at" && f.SortDesc
	})).Return([]domain.Submission{{
		PublicID:        "abc-123",
		Name:            "Rina, Wijaya",
		Email:           "rina@warungkita.id",
		BudgetIDR:       &budget,
		Platform:        domain.PlatformWebApp,
		TargetUser:      domain.TargetB2C,
		Features:        []domain.Feature{domain.FeatureAuth, domain.FeaturePayment},
		Timeline:        domain.TimelineNormal,
		TotalScore:      14,
		ComplexityLevel: domain.ComplexityMedium,
		Status:          domain.StatusContacted,
		ContactedAt:     &contacted,
		CreatedAt:       time.Date(2026, 8, 19, 9, 0, 0, 0, time.UTC),
	}}, int64(1), nil)

	svc, _, _ := newTestService(store)
	data, err := svc.ExportCSV(context.Background(), ListSubmissionsQuery{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,created_at,name,email"))
	assert.Contains(t, lines[1], `"Rina, Wijaya"`)
	assert.Contains(t, lines[1], "auth; payment")
	assert.Contains(t, lines[1], "75000000")
	assert.Contains(t, lines[1], "2026-08-20T10:00:00Z")
}
