package service

import (
	"context"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/cache"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/repository"
)

// MovieService es el colaborador de catálogo que consumen RatingService y
// TagService (implementa MovieLookup). El resolve id->título se cachea en
// Redis porque se dispara en cada write de rating/tag; los agregados en sí
// nunca se cachean.
type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(m *repository.MovieRepository) *MovieService {
	return &MovieService{movies: m}
}

const resolveTTLSeconds = 300

func resolveKey(movieID string) string { return "movie:title:" + movieID }

func (s *MovieService) Resolve(ctx context.Context, movieID string) (string, bool, error) {
	var title string
	if hit, err := cache.GetJSON(ctx, resolveKey(movieID), &title); err == nil && hit {
		return title, true, nil
	}

	m, err := s.movies.GetByHexID(ctx, movieID)
	if err != nil {
		return "", false, err
	}
	if m == nil {
		return "", false, nil
	}

	_ = cache.SetJSON(ctx, resolveKey(movieID), m.Title, resolveTTLSeconds)
	return m.Title, true, nil
}

func (s *MovieService) RegisterRatingCategory(ctx context.Context, movieID, ratingName string) error {
	return s.movies.RegisterRatingCategory(ctx, movieID, ratingName)
}

func (s *MovieService) RegisterTagName(ctx context.Context, movieID, tagName string) error {
	return s.movies.RegisterTagName(ctx, movieID, tagName)
}

func (s *MovieService) GetMovie(ctx context.Context, movieID string) (*models.MovieDoc, error) {
	return s.movies.GetByHexID(ctx, movieID)
}

func (s *MovieService) CreateMovie(ctx context.Context, m *models.MovieDoc) (string, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	m.CreatedAt = now
	m.UpdatedAt = now
	if m.RatingCategoryNames == nil {
		m.RatingCategoryNames = []string{}
	}
	if m.TagNames == nil {
		m.TagNames = []string{}
	}

	return s.movies.Insert(ctx, m)
}
