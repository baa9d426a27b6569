package auth

import (
	"context"
	"testing"
	"time"

	"rampung/internal/domain"
	jwtsvc "rampung/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type mockUserStore struct {
	mock.Mock
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*domain.AdminUser, error) {
	args := m.Called(ctx, id)
	if u := args.Get(0); u != nil {
		return u.(*domain.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*domain.AdminUser), args.Error(1)
	}
	return nil, args.Error(1)
}

func testUser(t *testing.T, password string) *domain.AdminUser {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.AdminUser{
		ID:           1,
		Email:        "admin@rampung.space",
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, "admin@rampung.space").Return(testUser(t, "s3cret"), nil)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))
	out, err := svc.Login(context.Background(), "  Admin@Rampung.Space ", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, int64(1), out.User.ID)
}

func TestLogin_TokenRoundTrips(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(testUser(t, "s3cret"), nil)

	jwt := jwtsvc.New("test-secret", time.Hour)
	svc := NewService(users, jwt)
	out, err := svc.Login(context.Background(), "admin@rampung.space", "s3cret")
	require.NoError(t, err)

	claims, err := jwt.ValidateToken(out.Token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(testUser(t, "s3cret"), nil)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))
	_, err := svc.Login(context.Background(), "admin@rampung.space", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByEmail", mock.Anything, mock.Anything).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))
	_, err := svc.Login(context.Background(), "nobody@rampung.space", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestMe_DeletedAccount(t *testing.T) {
	users := new(mockUserStore)
	users.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(users, jwtsvc.New("test-secret", time.Hour))
	_, err := svc.Me(context.Background(), 9)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
