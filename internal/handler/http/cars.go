package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"carmarket/internal/logger"
	"carmarket/internal/utils"
	"carmarket/models"
)

func (h *Handler) listCars(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.CarFilter{Txt: r.URL.Query().Get("txt")}

	// an absent or unparsable maxPrice degrades to "no price filter"
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		if maxPrice, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = maxPrice
			filter.ByPrice = true
		}
	}

	cars, err := h.services.CarService.Query(ctx, filter)
	if err != nil {
		log.Err(err).Msg("Cannot get cars")
		http.Error(w, "Cannot load cars", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, cars, http.StatusOK)
}

func (h *Handler) getCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	carID := chi.URLParam(r, "carId")

	car, err := h.services.CarService.Get(ctx, carID)
	if err != nil {
		// 403, not 404: existing clients depend on this status
		log.Err(err).Str("carId", carID).Msg("Cannot get car")
		http.Error(w, err.Error(), http.StatusForbidden)
		return
	}

	utils.WriteJSON(w, car, http.StatusOK)
}

func (h *Handler) addCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		log.Err(err).Msg("invalid car payload")
		http.Error(w, "Cannot add car", http.StatusBadRequest)
		return
	}

	// an insert never honours a client-supplied id or owner
	car.ID = ""
	car.Owner = models.Identity{}

	savedCar, err := h.services.CarService.Save(ctx, car, identity)
	if err != nil {
		log.Err(err).Msg("Cannot save car")
		http.Error(w, "Cannot add car", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, savedCar, http.StatusOK)
}

func (h *Handler) editCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	var car models.Car
	if err := json.NewDecoder(r.Body).Decode(&car); err != nil {
		log.Err(err).Msg("invalid car payload")
		http.Error(w, "Cannot update car", http.StatusBadRequest)
		return
	}

	savedCar, err := h.services.CarService.Save(ctx, car, identity)
	if err != nil {
		log.Err(err).Str("carId", car.ID).Msg("Cannot save car")
		http.Error(w, "Cannot update car", http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, savedCar, http.StatusOK)
}

func (h *Handler) removeCar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	identity, _ := utils.GetIdentityFromContext(ctx)

	carID := chi.URLParam(r, "carId")

	msg, err := h.services.CarService.Remove(ctx, carID, identity)
	if err != nil {
		// not-found and forbidden both map to 400 with the underlying
		// error appended, which is what existing clients parse
		log.Err(err).Str("carId", carID).Msg("Cannot remove car")
		http.Error(w, "Cannot remove car, "+err.Error(), http.StatusBadRequest)
		return
	}

	utils.WriteJSON(w, models.RemoveResult{Msg: msg, CarID: carID}, http.StatusOK)
}
