package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type TagHandler struct {
	svc *service.TagService
}

func NewTagHandler(s *service.TagService) *TagHandler { return &TagHandler{svc: s} }

type tagRequest struct {
	TagName string `json:"tagName"`
	MovieID string `json:"movieId"`
	Privacy string `json:"privacy"`
}

// @Summary Crear tag (arranca en upvote; duplicado es no-op)
// @Tags tags
// @Accept json
// @Param body body tagRequest true "tag"
// @Success 200
// @Security BearerAuth
// @Router /tag/create [post]
func (h *TagHandler) PostTag(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	username := UsernameFromContext(r.Context())
	if _, err := h.svc.Create(r.Context(), req.TagName, req.MovieID, username, req.Privacy); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// @Summary Upvotear un tag (lo crea si no existe)
// @Tags tags
// @Accept json
// @Param body body tagRequest true "tag"
// @Success 200
// @Security BearerAuth
// @Router /tag/upvote [post]
func (h *TagHandler) PostUpvote(w http.ResponseWriter, r *http.Request) {
	h.postVote(w, r, h.svc.Upvote)
}

// @Summary Downvotear un tag (lo crea directo en downvote si no existe)
// @Tags tags
// @Accept json
// @Param body body tagRequest true "tag"
// @Success 200
// @Security BearerAuth
// @Router /tag/downvote [post]
func (h *TagHandler) PostDownvote(w http.ResponseWriter, r *http.Request) {
	h.postVote(w, r, h.svc.Downvote)
}

func (h *TagHandler) postVote(w http.ResponseWriter, r *http.Request, vote func(ctx context.Context, username, tagName, movieID string) error) {
	w.Header().Set("Content-Type", "application/json")
	var req tagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	username := UsernameFromContext(r.Context())
	if err := vote(r.Context(), username, req.TagName, req.MovieID); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	w.WriteHeader(http.StatusOK)
}

type tagStateResponse struct {
	TagName  string           `json:"tagName"`
	MovieID  string           `json:"movieId"`
	Username string           `json:"username"`
	State    models.VoteState `json:"state"`
}

// @Summary Estado del voto del requester para un tag
// @Tags tags
// @Produce json
// @Param movieId path string true "movieId"
// @Param tagName path string true "tagName"
// @Success 200 {object} tagStateResponse
// @Security BearerAuth
// @Router /tag/state/{movieId}/{tagName} [get]
func (h *TagHandler) GetState(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID := chi.URLParam(r, "movieId")
	tagName := chi.URLParam(r, "tagName")
	username := UsernameFromContext(r.Context())

	state, err := h.svc.State(r.Context(), username, movieID, tagName)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(tagStateResponse{
		TagName:  tagName,
		MovieID:  movieID,
		Username: username,
		State:    state,
	})
}

// @Summary Scores de tags para el modal del movie
// @Tags tags
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {array} models.TagScore
// @Security BearerAuth
// @Router /tag/scores/{movieId} [get]
func (h *TagHandler) GetScores(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	movieID := chi.URLParam(r, "movieId")
	username := UsernameFromContext(r.Context())

	list, err := h.svc.ScoresForMovieModal(r.Context(), username, movieID)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Tags de un movie
// @Tags tags
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {array} models.TagDoc
// @Security BearerAuth
// @Router /tag/byMovie/{movieId} [get]
func (h *TagHandler) GetByMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	list, err := h.svc.ByMovie(r.Context(), chi.URLParam(r, "movieId"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Tags por nombre
// @Tags tags
// @Produce json
// @Param tagName path string true "tagName"
// @Success 200 {array} models.TagDoc
// @Security BearerAuth
// @Router /tag/byName/{tagName} [get]
func (h *TagHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	list, err := h.svc.ByName(r.Context(), chi.URLParam(r, "tagName"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// @Summary Tags creados por un usuario
// @Tags tags
// @Produce json
// @Param username path string true "username"
// @Success 200 {array} models.TagDoc
// @Security BearerAuth
// @Router /tag/byUser/{username} [get]
func (h *TagHandler) GetByUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	list, err := h.svc.ByUser(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Scores de tags en vivo (WebSocket)
// @Tags tags
// @Produce json
// @Param movieId path string true "movieId"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /tag/ws/scores/{movieId} [get]
func (h *TagHandler) GetScoresWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "no se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	movieID := chi.URLParam(r, "movieId")
	username := UsernameFromContext(r.Context())

	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	// primer snapshot inmediato, después uno por tick hasta que el cliente
	// cierre o falle el write
	for {
		list, err := h.svc.ScoresForMovieModal(r.Context(), username, movieID)
		if err != nil {
			_ = conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
			return
		}
		if err := conn.WriteJSON(map[string]any{
			"type":        "scores",
			"movieId":     movieID,
			"scores":      list,
			"generatedAt": time.Now(),
		}); err != nil {
			return
		}

		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}
