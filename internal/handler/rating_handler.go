package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"

	"github.com/go-chi/chi/v5"
)

type RatingHandler struct {
	svc *service.RatingService
}

func NewRatingHandler(s *service.RatingService) *RatingHandler { return &RatingHandler{svc: s} }

type ratingRequest struct {
	RatingName string `json:"ratingName"`
	UserRating int    `json:"userRating"`
	Upperbound int    `json:"upperbound"`
	Subtype    string `json:"subtype"`
	MovieID    string `json:"movieId"`
	Privacy    string `json:"privacy"`
}

// @Summary Crear/actualizar rating
// @Tags ratings
// @Accept json
// @Param body body ratingRequest true "rating"
// @Success 200
// @Security BearerAuth
// @Router /rating/create [post]
func (h *RatingHandler) PostRating(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	outcome, err := h.svc.CreateOrUpdate(r.Context(), service.CreateRatingInput{
		RatingName: req.RatingName,
		UserRating: req.UserRating,
		Upperbound: req.Upperbound,
		Subtype:    req.Subtype,
		Username:   UsernameFromContext(r.Context()),
		MovieID:    req.MovieID,
		Privacy:    req.Privacy,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	// el front espera 200 aunque el rating se haya descartado; solo lo dejamos
	// registrado en el log del server
	switch outcome {
	case service.WriteRejectedRange:
		log.Printf("[rating] descartado por rango: %q valor=%d upperbound=%d", req.RatingName, req.UserRating, req.Upperbound)
	case service.WriteRejectedMovie:
		log.Printf("[rating] descartado, movie inexistente: %s", req.MovieID)
	}
	w.WriteHeader(http.StatusOK)
}

// @Summary Rating agregado más popular de un movie
// @Tags ratings
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {object} models.AggregateRating
// @Failure 404
// @Security BearerAuth
// @Router /rating/mostPopular/{movieId} [get]
func (h *RatingHandler) GetMostPopular(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID := chi.URLParam(r, "movieId")

	agg, err := h.svc.MostPopularForMovie(r.Context(), movieID)
	if errors.Is(err, service.ErrNoRatings) {
		http.Error(w, "no ratings for movie", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(agg)
}

// @Summary Promedio por categoría única con el voto propio del requester
// @Tags ratings
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {array} models.CategoryAverage
// @Security BearerAuth
// @Router /rating/categoryAverages/{movieId} [get]
func (h *RatingHandler) GetCategoryAverages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID := chi.URLParam(r, "movieId")
	username := UsernameFromContext(r.Context())

	list, err := h.svc.CategoryAveragesForMovie(r.Context(), movieID, username)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Ratings de un movie
// @Tags ratings
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {array} models.RatingDoc
// @Security BearerAuth
// @Router /rating/byMovie/{movieId} [get]
func (h *RatingHandler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	list, err := h.svc.ByMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Ratings por nombre de categoría
// @Tags ratings
// @Produce json
// @Param ratingName path string true "ratingName"
// @Success 200 {array} models.RatingDoc
// @Security BearerAuth
// @Router /rating/byName/{ratingName} [get]
func (h *RatingHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	list, err := h.svc.ByName(r.Context(), chi.URLParam(r, "ratingName"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Ratings por nombre y upperbound
// @Tags ratings
// @Produce json
// @Param ratingName path string true "ratingName"
// @Param upperbound path int true "upperbound"
// @Success 200 {array} models.RatingDoc
// @Security BearerAuth
// @Router /rating/byNameAndUpperbound/{ratingName}/{upperbound} [get]
func (h *RatingHandler) GetByNameAndUpperbound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	upperbound, _ := strconv.Atoi(chi.URLParam(r, "upperbound"))
	list, err := h.svc.ByNameAndUpperbound(r.Context(), chi.URLParam(r, "ratingName"), upperbound)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Ratings por upperbound
// @Tags ratings
// @Produce json
// @Param upperbound path int true "upperbound"
// @Success 200 {array} models.RatingDoc
// @Security BearerAuth
// @Router /rating/byUpperbound/{upperbound} [get]
func (h *RatingHandler) GetByUpperbound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	upperbound, _ := strconv.Atoi(chi.URLParam(r, "upperbound"))
	list, err := h.svc.ByUpperbound(r.Context(), upperbound)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
