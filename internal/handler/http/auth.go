package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"carmarket/internal/logger"
	"carmarket/internal/store"
	"carmarket/internal/utils"
	"carmarket/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("login failed")
		http.Error(w, "Not you!", http.StatusUnauthorized)
		return
	}

	log.Debug().Str("id", user.ID).Str("username", user.Username).Msg("user successfully logged in")

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setLoginCookie(w, token.SignedString)
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// every signup failure, duplicate username included, is answered with
	// 401 and this fixed body so clients cannot probe for taken usernames
	registeredUser, err := h.services.AuthService.Signup(ctx, creds)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("signup failed")
		http.Error(w, "Nope!", http.StatusUnauthorized)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.setLoginCookie(w, token.SignedString)
	utils.WriteJSON(w, registeredUser, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     LoginTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})

	utils.WriteText(w, "logged-out!", http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID := chi.URLParam(r, "userId")

	user, err := h.services.UserService.GetByID(ctx, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("userId", userID).Msg("user not found")
			http.Error(w, "Cannot get user", http.StatusNotFound)
			return
		default:
			log.Err(err).Str("userId", userID).Msg("unexpected error occurred during user lookup")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) setLoginCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     LoginTokenCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})
}
