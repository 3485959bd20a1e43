package http

import (
	"encoding/json"
	"net/http"

	"carmarket/internal/logger"
	"carmarket/internal/utils"
	"carmarket/models"
)

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("invalid user payload")
		http.Error(w, "Cannot update user", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateScore(ctx, update, identity)
	if err != nil {
		log.Err(err).Str("userId", update.ID).Msg("Cannot update user")
		http.Error(w, "Cannot update user", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}
