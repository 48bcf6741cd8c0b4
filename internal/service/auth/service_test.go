package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/payadjust/payadjust-backend-go/internal/domain/auth"
	"github.com/payadjust/payadjust-backend-go/internal/domain/user"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/jwt"
	"github.com/payadjust/payadjust-backend-go/internal/pkg/validator"
)

type fakeUserRepo struct {
	user.UserRepository
	byEmail map[string]user.User
	byID    map[string]user.User
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func newTestAuthService(t *testing.T, users ...user.User) (auth.AuthService, jwt.Service) {
	repo := &fakeUserRepo{
		byEmail: make(map[string]user.User),
		byID:    make(map[string]user.User),
	}
	for _, u := range users {
		repo.byEmail[u.Email] = u
		repo.byID[u.ID] = u
	}
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "168h")
	return NewAuthService(nil, repo, jwtSvc, nil), jwtSvc
}

func hashOf(t *testing.T, password string) *string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func TestLoginSuccess(t *testing.T) {
	svc, _ := newTestAuthService(t, user.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		FullName:     "Alice Smith",
		PasswordHash: hashOf(t, "password123"),
	})

	tokens, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.Greater(t, tokens.AccessTokenExpiresIn, int64(0))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t, user.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hashOf(t, "password123"),
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLoginOAuthOnlyAccount(t *testing.T) {
	provider := "google"
	providerID := "google-id-1"
	svc, _ := newTestAuthService(t, user.User{
		ID:              "user-1",
		Email:           "alice@example.com",
		PasswordHash:    nil,
		OAuthProvider:   &provider,
		OAuthProviderID: &providerID,
	})

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newTestAuthService(t)

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		FullName:        "Alice Smith",
		Email:           "alice@example.com",
		Password:        "password123",
		ConfirmPassword: "password456",
	})
	require.Error(t, err)

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestRefreshTokenIssuesNewAccessToken(t *testing.T) {
	svc, jwtSvc := newTestAuthService(t, user.User{
		ID:    "user-1",
		Email: "alice@example.com",
	})

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	svc, jwtSvc := newTestAuthService(t, user.User{
		ID:    "user-1",
		Email: "alice@example.com",
	})

	accessToken, _, err := jwtSvc.GenerateAccessToken("user-1", "alice@example.com")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: accessToken})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestRefreshTokenUnknownUser(t *testing.T) {
	svc, jwtSvc := newTestAuthService(t)

	refreshToken, _, err := jwtSvc.GenerateRefreshToken("ghost")
	require.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), auth.RefreshTokenRequest{RefreshToken: refreshToken})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)
}
