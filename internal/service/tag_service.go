package service

import (
	"context"
	"sort"
	"strings"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
)

// TagService implementa la máquina de estados de votos por clave
// (movieId, tagName, username): sin fila -> upvote -> downvote, con flips
// entre upvote y downvote y sin vuelta a "sin fila". Los usernames de tags
// siempre se normalizan a minúsculas.
type TagService struct {
	tags   TagStore
	movies MovieLookup
}

func NewTagService(t TagStore, m MovieLookup) *TagService {
	return &TagService{tags: t, movies: m}
}

// Create inserta el tag con estado upvote. Si el movie no existe o el usuario
// ya tiene este tag en este movie, no pasa nada (no es error). Devuelve true
// si realmente se insertó.
func (s *TagService) Create(ctx context.Context, tagName, movieID, username, privacy string) (bool, error) {
	username = strings.ToLower(username)

	title, ok, err := s.movies.Resolve(ctx, movieID)
	if err != nil || !ok {
		return false, err
	}

	created, err := s.tags.CreateIfAbsent(ctx, models.TagDoc{
		Username:   username,
		TagName:    tagName,
		MovieID:    movieID,
		MovieTitle: title,
		Privacy:    privacy,
		State:      models.StateUpvote,
	})
	if err != nil || !created {
		return false, err
	}

	if err := s.movies.RegisterTagName(ctx, movieID, tagName); err != nil {
		return true, err
	}
	return true, nil
}

// Upvote deja el voto del usuario en upvote: crea la fila si no existía
// (privacy public), flipea un downvote, y es no-op si ya estaba en upvote.
func (s *TagService) Upvote(ctx context.Context, username, tagName, movieID string) error {
	return s.setState(ctx, username, tagName, movieID, models.StateUpvote)
}

// Downvote es el espejo: si la fila no existe se crea directamente en
// downvote con un solo write, sin pasar por un upvote intermedio visible.
func (s *TagService) Downvote(ctx context.Context, username, tagName, movieID string) error {
	return s.setState(ctx, username, tagName, movieID, models.StateDownvote)
}

func (s *TagService) setState(ctx context.Context, username, tagName, movieID string, state models.VoteState) error {
	username = strings.ToLower(username)

	title, ok, err := s.movies.Resolve(ctx, movieID)
	if err != nil || !ok {
		return err
	}

	created, err := s.tags.SetState(ctx, models.TagDoc{
		Username:   username,
		TagName:    tagName,
		MovieID:    movieID,
		MovieTitle: title,
		Privacy:    "public",
		State:      state,
	})
	if err != nil {
		return err
	}
	if created {
		return s.movies.RegisterTagName(ctx, movieID, tagName)
	}
	return nil
}

// State devuelve upvote/downvote, o noTag si el usuario nunca votó ese tag.
func (s *TagService) State(ctx context.Context, username, movieID, tagName string) (models.VoteState, error) {
	t, err := s.tags.Get(ctx, movieID, tagName, strings.ToLower(username))
	if err != nil {
		return models.StateNoTag, err
	}
	if t == nil {
		return models.StateNoTag, nil
	}
	return t.State, nil
}

// ScoresForMovieModal arma el modal del movie: un score por tagName
// (upvotes - downvotes de todos los usuarios) más el estado del voto del
// requester. Ordenado por score descendente y tagName ascendente en empates.
func (s *TagService) ScoresForMovieModal(ctx context.Context, requesterUsername, movieID string) ([]models.TagScore, error) {
	requesterUsername = strings.ToLower(requesterUsername)

	rows, err := s.tags.ByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]int)
	personal := make(map[string]models.VoteState)
	for _, t := range rows {
		if t.State == models.StateUpvote {
			scores[t.TagName]++
		} else {
			scores[t.TagName]--
		}
		if t.Username == requesterUsername {
			personal[t.TagName] = t.State
		}
	}

	out := make([]models.TagScore, 0, len(scores))
	for name, score := range scores {
		state, voted := personal[name]
		if !voted {
			state = models.StateNoTag
		}
		out = append(out, models.TagScore{
			TagName: name,
			MovieID: movieID,
			Score:   score,
			State:   state,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].TagName < out[j].TagName
	})
	return out, nil
}

// Proyecciones sin lógica.

func (s *TagService) ByMovie(ctx context.Context, movieID string) ([]models.TagDoc, error) {
	return s.tags.ByMovie(ctx, movieID)
}

func (s *TagService) ByName(ctx context.Context, tagName string) ([]models.TagDoc, error) {
	return s.tags.ByName(ctx, tagName)
}

func (s *TagService) ByUser(ctx context.Context, username string) ([]models.TagDoc, error) {
	return s.tags.ByUser(ctx, strings.ToLower(username))
}
