package service

import (
	"context"
	"errors"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
)

// ErrNoRatings se devuelve cuando se pide el agregado "más popular" de un
// movie que no tiene ningún rating. Distinto de un error de store.
var ErrNoRatings = errors.New("el movie no tiene ratings")

// RatingStore es el contrato de persistencia de ratings. Lo implementa
// repository.RatingRepository; los tests usan un fake en memoria.
type RatingStore interface {
	// Upsert hace un write condicional por clave de identidad.
	// Devuelve true si la fila fue creada (false si solo pisó userRating).
	Upsert(ctx context.Context, doc models.RatingDoc) (bool, error)
	ByMovie(ctx context.Context, movieID string) ([]models.RatingDoc, error)
	ByNameAndUpperbound(ctx context.Context, ratingName string, upperbound int) ([]models.RatingDoc, error)
	ByName(ctx context.Context, ratingName string) ([]models.RatingDoc, error)
	ByUpperbound(ctx context.Context, upperbound int) ([]models.RatingDoc, error)
}

// TagStore es el contrato de persistencia de tags.
type TagStore interface {
	Get(ctx context.Context, movieID, tagName, username string) (*models.TagDoc, error)
	// CreateIfAbsent inserta solo si la clave no existe; nunca toca el estado
	// de una fila existente. Devuelve true si insertó.
	CreateIfAbsent(ctx context.Context, doc models.TagDoc) (bool, error)
	// SetState deja la fila en doc.State; si no existe la crea directamente en
	// ese estado. Devuelve true si la creó.
	SetState(ctx context.Context, doc models.TagDoc) (bool, error)
	ByMovie(ctx context.Context, movieID string) ([]models.TagDoc, error)
	ByName(ctx context.Context, tagName string) ([]models.TagDoc, error)
	ByUser(ctx context.Context, username string) ([]models.TagDoc, error)
}

// MovieLookup es el colaborador de catálogo: el core solo necesita saber si el
// movie existe (y su título) y registrar nombres nuevos para el hint de UI.
type MovieLookup interface {
	Resolve(ctx context.Context, movieID string) (title string, ok bool, err error)
	RegisterRatingCategory(ctx context.Context, movieID, ratingName string) error
	RegisterTagName(ctx context.Context, movieID, tagName string) error
}
