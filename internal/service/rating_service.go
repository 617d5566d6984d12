package service

import (
	"context"
	"sort"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
)

// WriteOutcome dice qué pasó realmente con un create/update de rating. El
// endpoint responde 200 igual en todos los casos (compatibilidad con el
// front), pero internamente no queremos confundir "escribí" con "descarté".
type WriteOutcome int

const (
	WriteCreated WriteOutcome = iota
	WriteUpdated
	WriteRejectedRange
	WriteRejectedMovie
)

type RatingService struct {
	ratings RatingStore
	movies  MovieLookup
}

func NewRatingService(r RatingStore, m MovieLookup) *RatingService {
	return &RatingService{ratings: r, movies: m}
}

type CreateRatingInput struct {
	RatingName string
	UserRating int
	Upperbound int
	Subtype    string
	Username   string
	MovieID    string
	Privacy    string
}

// CreateOrUpdate aplica la regla de upsert: una sola fila por
// (movieId, ratingName, upperbound, username); si ya existía solo se pisa el
// valor. Un valor fuera de [1, upperbound] o un movie inexistente se descarta
// sin escribir nada.
func (s *RatingService) CreateOrUpdate(ctx context.Context, in CreateRatingInput) (WriteOutcome, error) {
	if in.Upperbound < 1 || in.UserRating < 1 || in.UserRating > in.Upperbound {
		return WriteRejectedRange, nil
	}

	title, ok, err := s.movies.Resolve(ctx, in.MovieID)
	if err != nil {
		return WriteRejectedMovie, err
	}
	if !ok {
		return WriteRejectedMovie, nil
	}

	created, err := s.ratings.Upsert(ctx, models.RatingDoc{
		Username:   in.Username,
		RatingName: in.RatingName,
		UserRating: in.UserRating,
		Upperbound: in.Upperbound,
		MovieID:    in.MovieID,
		MovieTitle: title,
		Subtype:    in.Subtype,
		Privacy:    in.Privacy,
	})
	if err != nil {
		return WriteCreated, err
	}
	if !created {
		return WriteUpdated, nil
	}

	// primera vez que este usuario crea la fila: registrar el nombre de la
	// categoría en el movie (idempotente si otro usuario ya la registró)
	if err := s.movies.RegisterRatingCategory(ctx, in.MovieID, in.RatingName); err != nil {
		return WriteCreated, err
	}
	return WriteCreated, nil
}

// MostPopularForMovie sintetiza el resumen del movie en dos pasos de moda:
// primero gana la ratingName con más filas, después el upperbound con más
// filas dentro de esa name, y recién ahí se promedia. Empates se resuelven
// por name ascendente y upperbound ascendente para que el resultado sea
// reproducible.
func (s *RatingService) MostPopularForMovie(ctx context.Context, movieID string) (models.AggregateRating, error) {
	rows, err := s.ratings.ByMovie(ctx, movieID)
	if err != nil {
		return models.AggregateRating{}, err
	}
	if len(rows) == 0 {
		return models.AggregateRating{}, ErrNoRatings
	}

	nameCounts := make(map[string]int)
	for _, r := range rows {
		nameCounts[r.RatingName]++
	}
	bestName := ""
	bestNameCount := 0
	for name, c := range nameCounts {
		if c > bestNameCount || (c == bestNameCount && name < bestName) {
			bestName, bestNameCount = name, c
		}
	}

	ubCounts := make(map[int]int)
	for _, r := range rows {
		if r.RatingName == bestName {
			ubCounts[r.Upperbound]++
		}
	}
	bestUB := 0
	bestUBCount := 0
	for ub, c := range ubCounts {
		if c > bestUBCount || (c == bestUBCount && ub < bestUB) {
			bestUB, bestUBCount = ub, c
		}
	}

	sum := 0
	count := 0
	for _, r := range rows {
		if r.RatingName == bestName && r.Upperbound == bestUB {
			sum += r.UserRating
			count++
		}
	}

	return models.AggregateRating{
		RatingName: bestName,
		Upperbound: bestUB,
		AvgRating:  float64(sum) / float64(count),
	}, nil
}

type categoryKey struct {
	name       string
	upperbound int
}

// CategoryAveragesForMovie devuelve un promedio por cada categoría única
// (ratingName, upperbound) del movie. Si el requester votó en una categoría,
// su valor y username vienen en ese elemento; si no, solo el promedio.
func (s *RatingService) CategoryAveragesForMovie(ctx context.Context, movieID, requesterUsername string) ([]models.CategoryAverage, error) {
	rows, err := s.ratings.ByMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	groups := make(map[categoryKey][]models.RatingDoc)
	for _, r := range rows {
		k := categoryKey{name: r.RatingName, upperbound: r.Upperbound}
		groups[k] = append(groups[k], r)
	}

	out := make([]models.CategoryAverage, 0, len(groups))
	for k, g := range groups {
		avg := models.CategoryAverage{
			MovieID:    movieID,
			RatingName: k.name,
			Upperbound: k.upperbound,
			Subtype:    g[0].Subtype,
		}
		sum := 0
		for _, r := range g {
			sum += r.UserRating
			if r.Username == requesterUsername {
				v := r.UserRating
				avg.UserRating = &v
				avg.Username = requesterUsername
			}
		}
		avg.AvgRating = float64(sum) / float64(len(g))
		out = append(out, avg)
	}

	// orden estable entre llamadas: name asc, upperbound asc
	sort.Slice(out, func(i, j int) bool {
		if out[i].RatingName != out[j].RatingName {
			return out[i].RatingName < out[j].RatingName
		}
		return out[i].Upperbound < out[j].Upperbound
	})
	return out, nil
}

// Proyecciones sin lógica, directo al store.

func (s *RatingService) ByMovie(ctx context.Context, movieID string) ([]models.RatingDoc, error) {
	return s.ratings.ByMovie(ctx, movieID)
}

func (s *RatingService) ByNameAndUpperbound(ctx context.Context, ratingName string, upperbound int) ([]models.RatingDoc, error) {
	return s.ratings.ByNameAndUpperbound(ctx, ratingName, upperbound)
}

func (s *RatingService) ByName(ctx context.Context, ratingName string) ([]models.RatingDoc, error) {
	return s.ratings.ByName(ctx, ratingName)
}

func (s *RatingService) ByUpperbound(ctx context.Context, upperbound int) ([]models.RatingDoc, error) {
	return s.ratings.ByUpperbound(ctx, upperbound)
}
