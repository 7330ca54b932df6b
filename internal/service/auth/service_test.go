package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/NSS-BookingService/internal/domain"
	adminRepo "github.com/m04kA/NSS-BookingService/internal/infra/storage/admin"
)

type stubAdminRepo struct {
	admin *domain.Admin
	err   error
}

func (s *stubAdminRepo) GetByEmail(_ context.Context, _ string) (*domain.Admin, error) {
	return s.admin, s.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T, password string) (*Service, *domain.Admin) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.Admin{
		ID:           5,
		Email:        "admin@salon.example",
		PasswordHash: string(hash),
		Name:         "Администратор",
	}

	svc := NewService(
		&stubAdminRepo{admin: admin},
		"test-secret",
		time.Hour,
		fixedTimeProvider{now: time.Now()},
		nopLogger{},
	)
	return svc, admin
}

func TestService_Login(t *testing.T) {
	t.Run("valid credentials produce verifiable token", func(t *testing.T) {
		svc, admin := newTestService(t, "s3cret")

		token, err := svc.Login(context.Background(), admin.Email, "s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		adminID, err := svc.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, admin.ID, adminID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, admin := newTestService(t, "s3cret")

		_, err := svc.Login(context.Background(), admin.Email, "wrong")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown admin", func(t *testing.T) {
		svc := NewService(
			&stubAdminRepo{err: adminRepo.ErrAdminNotFound},
			"test-secret",
			time.Hour,
			fixedTimeProvider{now: time.Now()},
			nopLogger{},
		)

		_, err := svc.Login(context.Background(), "nobody@salon.example", "s3cret")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestService_VerifyToken(t *testing.T) {
	t.Run("garbage token", func(t *testing.T) {
		svc, _ := newTestService(t, "s3cret")

		_, err := svc.VerifyToken("not-a-jwt")

		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-2 * time.Hour)
		svc := NewService(
			&stubAdminRepo{admin: &domain.Admin{ID: 5, Email: "admin@salon.example"}},
			"test-secret",
			time.Hour,
			fixedTimeProvider{now: past},
			nopLogger{},
		)

		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		require.NoError(t, err)
		svc.adminRepo = &stubAdminRepo{admin: &domain.Admin{
			ID:           5,
			Email:        "admin@salon.example",
			PasswordHash: string(hash),
		}}

		token, err := svc.Login(context.Background(), "admin@salon.example", "s3cret")
		require.NoError(t, err)

		// Токен выписан два часа назад с TTL в час
		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		svc, admin := newTestService(t, "s3cret")

		other := NewService(
			&stubAdminRepo{admin: admin},
			"another-secret",
			time.Hour,
			fixedTimeProvider{now: time.Now()},
			nopLogger{},
		)

		token, err := other.Login(context.Background(), admin.Email, "s3cret")
		require.NoError(t, err)

		_, err = svc.VerifyToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
