package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/admin"
)

// Service сервис аутентификации администратора
type Service struct {
	adminRepo    AdminRepository
	jwtSecret    []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	adminRepo AdminRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		adminRepo:    adminRepo,
		jwtSecret:    []byte(jwtSecret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Login проверяет учётные данные администратора и выдаёт JWT
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	admin, err := s.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Login: admin %s not found", email)
			return "", ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for %s: %v", email, err)
		return "", fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for admin %s", email)
		return "", ErrInvalidCredentials
	}

	now := s.timeProvider.Now()
	claims := jwt.MapClaims{
		"admin_id": admin.ID,
		"email":    admin.Email,
		"exp":      now.Add(s.tokenTTL).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for admin %s: %v", email, err)
		return "", fmt.Errorf("%w: Login - sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin %s authenticated", email)
	return signed, nil
}

// VerifyToken проверяет JWT и возвращает ID администратора
func (s *Service) VerifyToken(tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	adminID, ok := claims["admin_id"].(float64)
	if !ok {
		return 0, ErrInvalidToken
	}

	return int64(adminID), nil
}
