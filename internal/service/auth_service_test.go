package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/hostelhub/hostelhub-api/internal/models"
	"github.com/hostelhub/hostelhub-api/internal/repository"
	"github.com/hostelhub/hostelhub-api/internal/store"
	appErrors "github.com/hostelhub/hostelhub-api/pkg/errors"
)

func newAuthServiceForTest(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	repo := repository.NewUserRepository(store.New())
	svc := NewAuthService(repo, nil, nil, AuthConfig{
		Secret:     "test-secret",
		Expiration: time.Hour,
		Issuer:     "hostelhub-api",
	})
	return svc, repo
}

func seedUser(t *testing.T, repo *repository.UserRepository, email, password string, role models.UserRole, active bool) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := &models.User{
		ID:           "user-" + email,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     "Test User",
		Role:         role,
		StudentID:    "stu-1",
		Active:       active,
		CreatedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.Create(user))
	return user
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	user := seedUser(t, repo, "warden@example.com", "warden123", models.RoleWarden, true)

	resp, err := svc.Login(models.LoginRequest{Email: "warden@example.com", Password: "warden123"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)
	require.Equal(t, int64(3600), resp.ExpiresIn)
	require.Equal(t, user.ID, resp.User.ID)
	require.Equal(t, models.RoleWarden, resp.User.Role)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, models.RoleWarden, claims.Role)
	require.Equal(t, "stu-1", claims.StudentID)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo, "warden@example.com", "warden123", models.RoleWarden, true)

	_, err := svc.Login(models.LoginRequest{Email: "warden@example.com", Password: "nope"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthServiceForTest(t)

	_, err := svc.Login(models.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginInactiveAccount(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo, "old@example.com", "old123", models.RoleStudent, false)

	_, err := svc.Login(models.LoginRequest{Email: "old@example.com", Password: "old123"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrInactiveAccount.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsWrongSecret(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	seedUser(t, repo, "warden@example.com", "warden123", models.RoleWarden, true)

	resp, err := svc.Login(models.LoginRequest{Email: "warden@example.com", Password: "warden123"})
	require.NoError(t, err)

	other := NewAuthService(repo, nil, nil, AuthConfig{Secret: "different", Expiration: time.Hour})
	_, err = other.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	require.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceMe(t *testing.T) {
	svc, repo := newAuthServiceForTest(t)
	user := seedUser(t, repo, "warden@example.com", "warden123", models.RoleWarden, true)

	info, err := svc.Me(&models.JWTClaims{UserID: user.ID})
	require.NoError(t, err)
	require.Equal(t, user.Email, info.Email)

	_, err = svc.Me(&models.JWTClaims{UserID: "missing"})
	require.Error(t, err)
	require.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
