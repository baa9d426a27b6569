package auth

import (
	"context"
	"errors"
	"strings"

	"rampung/internal/domain"
	jwtsvc "rampung/internal/pkg/jwt"
	"rampung/internal/pkg/logger"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*domain.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AdminUser, error)
}

type Service struct {
	users UserStore
	jwt   *jwtsvc.Service
}

func NewService(users UserStore, jwt *jwtsvc.Service) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login checks the credentials and issues a signed token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warn("failed login attempt", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{Token: token, User: user}, nil
}

// Me resolves the authenticated admin from the token's subject id.
func (s *Service) Me(ctx context.Context, adminID int64) (*domain.AdminUser, error) {
	user, err := s.users.GetByID(ctx, adminID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	return user, err
}
