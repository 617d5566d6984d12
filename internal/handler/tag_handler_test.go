package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret  = "test-secret"
	testMovieID = "64a10000000000000000aaaa"
)

// stubs mínimos para armar un TagService real detrás del router

type stubMovieLookup struct{}

func (stubMovieLookup) Resolve(_ context.Context, movieID string) (string, bool, error) {
	if movieID == testMovieID {
		return "The Thing", true, nil
	}
	return "", false, nil
}
func (stubMovieLookup) RegisterRatingCategory(context.Context, string, string) error { return nil }
func (stubMovieLookup) RegisterTagName(context.Context, string, string) error        { return nil }

type stubTagStore struct {
	mu   sync.Mutex
	rows []models.TagDoc
}

func (s *stubTagStore) locate(movieID, tagName, username string) int {
	for i, t := range s.rows {
		if t.MovieID == movieID && t.TagName == tagName && t.Username == username {
			return i
		}
	}
	return -1
}

func (s *stubTagStore) Get(_ context.Context, movieID, tagName, username string) (*models.TagDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.locate(movieID, tagName, username); i >= 0 {
		t := s.rows[i]
		return &t, nil
	}
	return nil, nil
}

func (s *stubTagStore) CreateIfAbsent(_ context.Context, doc models.TagDoc) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locate(doc.MovieID, doc.TagName, doc.Username) >= 0 {
		return false, nil
	}
	s.rows = append(s.rows, doc)
	return true, nil
}

func (s *stubTagStore) SetState(_ context.Context, doc models.TagDoc) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.locate(doc.MovieID, doc.TagName, doc.Username); i >= 0 {
		s.rows[i].State = doc.State
		return false, nil
	}
	s.rows = append(s.rows, doc)
	return true, nil
}

func (s *stubTagStore) ByMovie(_ context.Context, movieID string) ([]models.TagDoc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.TagDoc
	for _, t := range s.rows {
		if t.MovieID == movieID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *stubTagStore) ByName(context.Context, string) ([]models.TagDoc, error) { return nil, nil }
func (s *stubTagStore) ByUser(context.Context, string) ([]models.TagDoc, error) { return nil, nil }

func testToken(t *testing.T, username, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  username,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newTestRouter() (*chi.Mux, *stubTagStore) {
	store := &stubTagStore{}
	svc := service.NewTagService(store, stubMovieLookup{})
	h := NewTagHandler(svc)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(JWTAuth(testSecret))
		r.Post("/tag/create", h.PostTag)
		r.Post("/tag/upvote", h.PostUpvote)
		r.Post("/tag/downvote", h.PostDownvote)
		r.Get("/tag/state/{movieId}/{tagName}", h.GetState)
		r.Get("/tag/scores/{movieId}", h.GetScores)
	})
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestTagEndpointsRequireAuth(t *testing.T) {
	r, _ := newTestRouter()

	rec := doJSON(t, r, http.MethodPost, "/tag/create", "", tagRequest{TagName: "rainy", MovieID: testMovieID})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTagVoteFlow(t *testing.T) {
	r, store := newTestRouter()
	token := testToken(t, "Sierra", "user")

	rec := doJSON(t, r, http.MethodPost, "/tag/create", token, tagRequest{TagName: "rainy", MovieID: testMovieID, Privacy: "public"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPost, "/tag/downvote", token, tagRequest{TagName: "rainy", MovieID: testMovieID})
	require.Equal(t, http.StatusOK, rec.Code)

	// una sola fila, en downvote, con el username normalizado del token
	require.Len(t, store.rows, 1)
	assert.Equal(t, "sierra", store.rows[0].Username)
	assert.Equal(t, models.StateDownvote, store.rows[0].State)

	rec = doJSON(t, r, http.MethodGet, "/tag/state/"+testMovieID+"/rainy", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var state tagStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, models.StateDownvote, state.State)
}

func TestTagScoresEndpoint(t *testing.T) {
	r, _ := newTestRouter()

	for _, u := range []string{"u1", "u2", "u3"} {
		rec := doJSON(t, r, http.MethodPost, "/tag/upvote", testToken(t, u, "user"), tagRequest{TagName: "Funny", MovieID: testMovieID})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := doJSON(t, r, http.MethodPost, "/tag/downvote", testToken(t, "u4", "user"), tagRequest{TagName: "Funny", MovieID: testMovieID})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/tag/scores/"+testMovieID, testToken(t, "u4", "user"), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var scores []models.TagScore
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &scores))
	require.Len(t, scores, 1)
	assert.Equal(t, 2, scores[0].Score)
	assert.Equal(t, models.StateDownvote, scores[0].State)
}
