package service

import (
	"context"
	"sort"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/repository"
)

// MaintenanceService reconstruye las listas ratingCategoryNames/tagNames de
// cada movie a partir de las colecciones reales. Las listas se mantienen
// incrementalmente en cada primer write, pero un import manual o un borrado a
// mano en Mongo las puede dejar desfasadas.
type MaintenanceService struct {
	movies  *repository.MovieRepository
	ratings RatingStore
	tags    TagStore
}

func NewMaintenanceService(m *repository.MovieRepository, r RatingStore, t TagStore) *MaintenanceService {
	return &MaintenanceService{movies: m, ratings: r, tags: t}
}

// RebuildNameLists recalcula las listas de todos los movies y devuelve
// cuántos se actualizaron.
func (s *MaintenanceService) RebuildNameLists(ctx context.Context) (int, error) {
	movies, err := s.movies.All(ctx)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, m := range movies {
		movieID := m.ID.Hex()

		ratings, err := s.ratings.ByMovie(ctx, movieID)
		if err != nil {
			return updated, err
		}
		categories := make(map[string]struct{})
		for _, r := range ratings {
			categories[r.RatingName] = struct{}{}
		}

		tags, err := s.tags.ByMovie(ctx, movieID)
		if err != nil {
			return updated, err
		}
		tagNames := make(map[string]struct{})
		for _, t := range tags {
			tagNames[t.TagName] = struct{}{}
		}

		if err := s.movies.SetNameLists(ctx, m.ID, sortedKeys(categories), sortedKeys(tagNames)); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
