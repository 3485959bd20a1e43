package http

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carmarket/internal/config"
	"carmarket/internal/logger"
	"carmarket/internal/service"
	"carmarket/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	loginFn         func(ctx context.Context, creds models.Credentials) (models.User, error)
	signupFn        func(ctx context.Context, creds models.Credentials) (models.User, error)
	createTokenFn   func(ctx context.Context, user models.User) (models.Token, error)
	validateTokenFn func(ctx context.Context, tokenString string) (models.Identity, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

func (m *mockAuthService) Signup(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.signupFn(ctx, creds)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ValidateToken(ctx context.Context, tokenString string) (models.Identity, error) {
	return m.validateTokenFn(ctx, tokenString)
}

// mockCarService implements service.CarService for unit tests.
type mockCarService struct {
	queryFn  func(ctx context.Context, filter models.CarFilter) ([]models.Car, error)
	getFn    func(ctx context.Context, id string) (models.Car, error)
	saveFn   func(ctx context.Context, car models.Car, actingUser models.Identity) (models.Car, error)
	removeFn func(ctx context.Context, id string, actingUser models.Identity) (string, error)
}

func (m *mockCarService) Query(ctx context.Context, filter models.CarFilter) ([]models.Car, error) {
	return m.queryFn(ctx, filter)
}

func (m *mockCarService) Get(ctx context.Context, id string) (models.Car, error) {
	return m.getFn(ctx, id)
}

func (m *mockCarService) Save(ctx context.Context, car models.Car, actingUser models.Identity) (models.Car, error) {
	return m.saveFn(ctx, car, actingUser)
}

func (m *mockCarService) Remove(ctx context.Context, id string, actingUser models.Identity) (string, error) {
	return m.removeFn(ctx, id, actingUser)
}

// mockUserService implements service.UserService for unit tests.
type mockUserService struct {
	getByIDFn     func(ctx context.Context, id string) (models.User, error)
	updateScoreFn func(ctx context.Context, update models.UserUpdate, actingUser models.Identity) (models.User, error)
}

func (m *mockUserService) GetByID(ctx context.Context, id string) (models.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockUserService) UpdateScore(ctx context.Context, update models.UserUpdate, actingUser models.Identity) (models.User, error) {
	return m.updateScoreFn(ctx, update, actingUser)
}

// sessionAuth returns an AuthService mock that accepts exactly one token
// value and resolves it to the given identity.
func sessionAuth(validToken string, identity models.Identity) *mockAuthService {
	return &mockAuthService{
		validateTokenFn: func(_ context.Context, tokenString string) (models.Identity, error) {
			if tokenString != validToken {
				return models.Identity{}, service.ErrTokenIsExpiredOrInvalid
			}
			return identity, nil
		},
	}
}

// newTestHandler builds a Handler over the given service mocks with a
// throwaway static directory containing a recognisable index.html.
func newTestHandler(t *testing.T, svcs *service.Services) *Handler {
	t.Helper()

	staticDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(staticDir, "index.html"), []byte("<html>spa-index</html>"), 0o644))

	cfg := config.Server{
		StaticDir:   staticDir,
		CORSOrigins: []string{"http://localhost:5173"},
	}

	return NewHandler(svcs, cfg, logger.Nop())
}
