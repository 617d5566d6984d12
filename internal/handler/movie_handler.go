package handler

import (
	"encoding/json"
	"net/http"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler { return &MovieHandler{svc: s} }

// @Summary Obtener movie por id
// @Tags movies
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {object} models.MovieDoc
// @Failure 404
// @Router /movies/{movieId} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	m, err := h.svc.GetMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if m == nil {
		http.Error(w, "movie not found", http.StatusNotFound)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

type createMovieRequest struct {
	Title       string `json:"title"`
	Director    string `json:"director"`
	ReleaseDate string `json:"releaseDate"`
	Summary     string `json:"summary"`
}

// @Summary Crear movie (admin)
// @Tags movies
// @Accept json
// @Param body body createMovieRequest true "movie"
// @Success 201 {object} map[string]string
// @Security BearerAuth
// @Router /admin/movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req createMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if req.Title == "" {
		http.Error(w, "title required", 400)
		return
	}

	id, err := h.svc.CreateMovie(r.Context(), &models.MovieDoc{
		Title:       req.Title,
		Director:    req.Director,
		ReleaseDate: req.ReleaseDate,
		Summary:     req.Summary,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]string{"movieId": id})
}
