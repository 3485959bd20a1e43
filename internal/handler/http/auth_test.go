package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmarket/internal/service"
	"carmarket/internal/store"
	"carmarket/models"
)

var validCreds = models.Credentials{Username: "alice", Password: "pw123", Fullname: "Alice A."}

func credsBody(t *testing.T, creds models.Credentials) string {
	t.Helper()
	b, err := json.Marshal(creds)
	require.NoError(t, err)
	return string(b)
}

func loginCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == LoginTokenCookie {
			return c
		}
	}
	return nil
}

func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			assert.Equal(t, "alice", creds.Username)
			return models.User{ID: "u1", Username: "alice", Password: "hash", Score: 10}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := loginCookie(t, rec)
	require.NotNil(t, cookie, "loginToken cookie expected")
	assert.Equal(t, signedToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
	assert.NotContains(t, rec.Body.String(), "hash", "password hash must never leak")
}

func TestLogin_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrWrongPassword
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Not you!\n", rec.Body.String())
	assert.Nil(t, loginCookie(t, rec))
}

func TestLogin_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{ID: "u1", Username: "alice"}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSignup_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		signupFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			return models.User{ID: "u1", Username: creds.Username, Fullname: creds.Fullname}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{SignedString: signedToken}, nil
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	cookie := loginCookie(t, rec)
	require.NotNil(t, cookie, "signup logs the new user in")
	assert.Equal(t, signedToken, cookie.Value)

	assert.Contains(t, rec.Body.String(), `"_id":"u1"`)
}

// TestSignup_UsernameTaken verifies that a duplicate username is answered
// with 401 and the fixed body, not 409.
func TestSignup_UsernameTaken(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, store.ErrUsernameTaken
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(credsBody(t, validCreds)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Nope!\n", rec.Body.String())
}

func TestSignup_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		signupFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newTestHandler(t, &service.Services{AuthService: auth})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signup", strings.NewReader(`{"username":"alice"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Nope!\n", rec.Body.String())
}

func TestLogout(t *testing.T) {
	h := newTestHandler(t, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "logged-out!", rec.Body.String())

	cookie := loginCookie(t, rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge, "cookie must be expired")
}

func TestGetUser_Success(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, "u1", id)
			return models.User{ID: "u1", Username: "alice", Score: 42}, nil
		},
	}

	h := newTestHandler(t, &service.Services{UserService: users})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"score":42`)
}

func TestGetUser_NotFound(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}

	h := newTestHandler(t, &service.Services{UserService: users})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Cannot get user")
}

func TestGetUser_UnexpectedError(t *testing.T) {
	users := &mockUserService{
		getByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}

	h := newTestHandler(t, &service.Services{UserService: users})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/auth/u1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
