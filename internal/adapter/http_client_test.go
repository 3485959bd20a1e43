package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carmarket/models"
)

const fakeToken = "fake.session.token"

// fakeAPI is a minimal in-memory rendition of the server API used to test the
// client: login/signup hand out the session cookie, mutating car routes
// require it.
type fakeAPI struct {
	t *testing.T

	loginCalls  int
	lastCar     models.Car
	lastFilters map[string]string
}

func (f *fakeAPI) hasSession(r *http.Request) bool {
	cookie, err := r.Cookie("loginToken")
	return err == nil && cookie.Value == fakeToken
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		f.loginCalls++

		var creds models.Credentials
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "pw123" {
			http.Error(w, "Not you!", http.StatusUnauthorized)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "loginToken", Value: fakeToken, Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{ID: "u1", Username: creds.Username})
	})

	mux.HandleFunc("POST /api/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Username == "taken" {
			http.Error(w, "Nope!", http.StatusUnauthorized)
			return
		}

		http.SetCookie(w, &http.Cookie{Name: "loginToken", Value: fakeToken, Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{ID: "u2", Username: creds.Username})
	})

	mux.HandleFunc("POST /api/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "loginToken", Value: "", Path: "/", MaxAge: -1})
		w.Write([]byte("logged-out!"))
	})

	mux.HandleFunc("GET /api/car", func(w http.ResponseWriter, r *http.Request) {
		f.lastFilters = map[string]string{
			"txt":      r.URL.Query().Get("txt"),
			"maxPrice": r.URL.Query().Get("maxPrice"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Car{{ID: "c1", Vendor: "mazda"}})
	})

	mux.HandleFunc("GET /api/car/{carId}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("carId") != "c1" {
			http.Error(w, "car was not found", http.StatusForbidden)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Car{ID: "c1", Vendor: "mazda"})
	})

	mux.HandleFunc("POST /api/car", func(w http.ResponseWriter, r *http.Request) {
		if !f.hasSession(r) {
			http.Error(w, "Cannot add car", http.StatusUnauthorized)
			return
		}

		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&f.lastCar))
		f.lastCar.ID = "c2"
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(f.lastCar)
	})

	mux.HandleFunc("DELETE /api/car/{carId}", func(w http.ResponseWriter, r *http.Request) {
		if !f.hasSession(r) {
			http.Error(w, "Cannot delete car", http.StatusUnauthorized)
			return
		}

		carID := r.PathValue("carId")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.RemoveResult{Msg: "car " + carID + " removed", CarID: carID})
	})

	mux.HandleFunc("PUT /api/user", func(w http.ResponseWriter, r *http.Request) {
		if !f.hasSession(r) {
			http.Error(w, "Cannot update user", http.StatusUnauthorized)
			return
		}

		var update models.UserUpdate
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&update))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.User{ID: update.ID, Score: int64(update.Score)})
	})

	return mux
}

func newTestClient(t *testing.T) (APIClient, *fakeAPI) {
	t.Helper()

	api := &fakeAPI{t: t}
	srv := httptest.NewServer(api.handler())
	t.Cleanup(srv.Close)

	client := NewHTTPAPIClient(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
	return client, api
}

func TestClientLogin_Success(t *testing.T) {
	client, api := newTestClient(t)

	user, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, 1, api.loginCalls)
}

func TestClientLogin_WrongPassword(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "Not you!")
}

func TestClientSignup_Taken(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Signup(context.Background(), models.Credentials{Username: "taken", Password: "pw123"})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// TestClient_SessionCookieReplayed verifies the point of the cookie jar: a
// login followed by a gated call succeeds without manual cookie handling.
func TestClient_SessionCookieReplayed(t *testing.T) {
	client, api := newTestClient(t)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	saved, err := client.AddCar(context.Background(), models.Car{Vendor: "mazda", Speed: 240, Price: 12000})
	require.NoError(t, err)

	assert.Equal(t, "c2", saved.ID)
	assert.Equal(t, "mazda", api.lastCar.Vendor)
}

func TestClientAddCar_WithoutSession(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.AddCar(context.Background(), models.Car{Vendor: "mazda"})
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "Cannot add car")
}

func TestClientQueryCars_FilterParams(t *testing.T) {
	client, api := newTestClient(t)

	cars, err := client.QueryCars(context.Background(), models.CarFilter{Txt: "maz", MaxPrice: 15000, ByPrice: true})
	require.NoError(t, err)

	assert.Len(t, cars, 1)
	assert.Equal(t, "maz", api.lastFilters["txt"])
	assert.Equal(t, "15000", api.lastFilters["maxPrice"])
}

func TestClientQueryCars_NoFilter(t *testing.T) {
	client, api := newTestClient(t)

	_, err := client.QueryCars(context.Background(), models.CarFilter{})
	require.NoError(t, err)

	assert.Empty(t, api.lastFilters["txt"])
	assert.Empty(t, api.lastFilters["maxPrice"])
}

func TestClientGetCar_UnknownIDIsForbidden(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetCar(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestClientRemoveCar(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	result, err := client.RemoveCar(context.Background(), "c1")
	require.NoError(t, err)

	assert.Equal(t, "c1", result.CarID)
	assert.Equal(t, "car c1 removed", result.Msg)
}

func TestClientUpdateScore(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	user, err := client.UpdateScore(context.Background(), models.UserUpdate{ID: "u1", Score: 120})
	require.NoError(t, err)

	assert.Equal(t, int64(120), user.Score)
}

func TestClientLogout(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.Login(context.Background(), models.Credentials{Username: "alice", Password: "pw123"})
	require.NoError(t, err)

	assert.NoError(t, client.Logout(context.Background()))
}
