package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const movieID = "64a10000000000000000aaaa"

func newRatingFixture() (*RatingService, *fakeRatingStore, *fakeMovieLookup) {
	store := &fakeRatingStore{}
	movies := newFakeMovieLookup(map[string]string{movieID: "The Thing"})
	return NewRatingService(store, movies), store, movies
}

func submit(t *testing.T, svc *RatingService, name string, value, upperbound int, username string) WriteOutcome {
	t.Helper()
	outcome, err := svc.CreateOrUpdate(context.Background(), CreateRatingInput{
		RatingName: name,
		UserRating: value,
		Upperbound: upperbound,
		Subtype:    "scale",
		Username:   username,
		MovieID:    movieID,
		Privacy:    "public",
	})
	require.NoError(t, err)
	return outcome
}

func TestCreateOrUpdateUpsert(t *testing.T) {
	svc, store, _ := newRatingFixture()

	outcome := submit(t, svc, "Stickiness", 7, 10, "sierra")
	assert.Equal(t, WriteCreated, outcome)

	// mismo (movie, name, upperbound, user) con otro valor: pisa, no duplica
	outcome = submit(t, svc, "Stickiness", 9, 10, "sierra")
	assert.Equal(t, WriteUpdated, outcome)

	require.Len(t, store.rows, 1)
	assert.Equal(t, 9, store.rows[0].UserRating)
	assert.Equal(t, "The Thing", store.rows[0].MovieTitle)
}

func TestCreateOrUpdateRangeRejection(t *testing.T) {
	svc, store, _ := newRatingFixture()

	for _, tc := range []struct {
		name       string
		value      int
		upperbound int
	}{
		{"cero", 0, 10},
		{"negativo", -3, 10},
		{"arriba del upperbound", 11, 10},
		{"upperbound invalido", 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			outcome, err := svc.CreateOrUpdate(context.Background(), CreateRatingInput{
				RatingName: "Stickiness",
				UserRating: tc.value,
				Upperbound: tc.upperbound,
				Username:   "sierra",
				MovieID:    movieID,
			})
			require.NoError(t, err)
			assert.Equal(t, WriteRejectedRange, outcome)
		})
	}
	assert.Empty(t, store.rows)
}

func TestCreateOrUpdateUnknownMovie(t *testing.T) {
	svc, store, _ := newRatingFixture()

	outcome, err := svc.CreateOrUpdate(context.Background(), CreateRatingInput{
		RatingName: "Stickiness",
		UserRating: 5,
		Upperbound: 10,
		Username:   "sierra",
		MovieID:    "64a10000000000000000ffff",
	})
	require.NoError(t, err)
	// el caller no distingue esto de un write exitoso: el outcome interno sí
	assert.Equal(t, WriteRejectedMovie, outcome)
	assert.Empty(t, store.rows)
}

func TestCreateOrUpdateRegistersCategoryOnFirstInsert(t *testing.T) {
	svc, _, movies := newRatingFixture()

	submit(t, svc, "Stickiness", 7, 10, "sierra")
	submit(t, svc, "Stickiness", 9, 10, "sierra") // update: no re-registra
	submit(t, svc, "Stickiness", 4, 10, "marco")  // otro usuario, misma categoría

	assert.Equal(t, []string{"Stickiness"}, movies.categories[movieID])
}

func TestMostPopularModeSelection(t *testing.T) {
	svc, _, _ := newRatingFixture()

	// {A,5}x3, {A,10}x1, {B,5}x2 -> gana A por cantidad, dentro de A gana
	// upperbound 5, y el promedio usa solo esas tres filas
	submit(t, svc, "A", 3, 5, "u1")
	submit(t, svc, "A", 4, 5, "u2")
	submit(t, svc, "A", 5, 5, "u3")
	submit(t, svc, "A", 9, 10, "u1")
	submit(t, svc, "B", 1, 5, "u1")
	submit(t, svc, "B", 2, 5, "u2")

	agg, err := svc.MostPopularForMovie(context.Background(), movieID)
	require.NoError(t, err)
	assert.Equal(t, "A", agg.RatingName)
	assert.Equal(t, 5, agg.Upperbound)
	assert.InDelta(t, 4.0, agg.AvgRating, 1e-9)
}

func TestMostPopularTieBreaks(t *testing.T) {
	svc, _, _ := newRatingFixture()

	// empate 2-2 entre nombres: gana el menor lexicográfico ("alpha")
	submit(t, svc, "beta", 1, 5, "u1")
	submit(t, svc, "beta", 2, 5, "u2")
	submit(t, svc, "alpha", 3, 5, "u1")
	submit(t, svc, "alpha", 3, 10, "u2")

	agg, err := svc.MostPopularForMovie(context.Background(), movieID)
	require.NoError(t, err)
	assert.Equal(t, "alpha", agg.RatingName)
	// empate 1-1 entre upperbounds de alpha: gana el menor (5)
	assert.Equal(t, 5, agg.Upperbound)
	assert.InDelta(t, 3.0, agg.AvgRating, 1e-9)
}

func TestMostPopularNoRatings(t *testing.T) {
	svc, _, _ := newRatingFixture()

	_, err := svc.MostPopularForMovie(context.Background(), movieID)
	assert.ErrorIs(t, err, ErrNoRatings)
}

func TestCategoryAverages(t *testing.T) {
	svc, _, _ := newRatingFixture()

	// misma ratingName con distinto upperbound = categorías distintas
	submit(t, svc, "Stickiness", 8, 10, "alice")
	submit(t, svc, "Stickiness", 6, 10, "bob")
	submit(t, svc, "Stickiness", 1, 5, "bob")
	submit(t, svc, "Rewatchable", 1, 1, "bob")

	list, err := svc.CategoryAveragesForMovie(context.Background(), movieID, "alice")
	require.NoError(t, err)
	require.Len(t, list, 3)

	// orden determinista: name asc, upperbound asc
	assert.Equal(t, "Rewatchable", list[0].RatingName)
	assert.Equal(t, "Stickiness", list[1].RatingName)
	assert.Equal(t, 5, list[1].Upperbound)
	assert.Equal(t, "Stickiness", list[2].RatingName)
	assert.Equal(t, 10, list[2].Upperbound)

	// alice votó solo en (Stickiness, 10): ahí viene su valor, en el resto no
	require.NotNil(t, list[2].UserRating)
	assert.Equal(t, 8, *list[2].UserRating)
	assert.Equal(t, "alice", list[2].Username)
	assert.InDelta(t, 7.0, list[2].AvgRating, 1e-9)

	assert.Nil(t, list[0].UserRating)
	assert.Empty(t, list[0].Username)
	assert.Nil(t, list[1].UserRating)
	assert.InDelta(t, 1.0, list[1].AvgRating, 1e-9)
}

func TestStoreErrorIsNotNoData(t *testing.T) {
	store := &fakeRatingStore{err: errors.New("mongo: socket timeout")}
	svc := NewRatingService(store, newFakeMovieLookup(map[string]string{movieID: "The Thing"}))

	_, err := svc.MostPopularForMovie(context.Background(), movieID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoRatings)
}

func TestProjections(t *testing.T) {
	svc, _, _ := newRatingFixture()

	submit(t, svc, "Stickiness", 8, 10, "alice")
	submit(t, svc, "Pacing", 2, 5, "alice")

	byName, err := svc.ByName(context.Background(), "Stickiness")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	byUB, err := svc.ByUpperbound(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, byUB, 1)
	assert.Equal(t, "Pacing", byUB[0].RatingName)

	both, err := svc.ByNameAndUpperbound(context.Background(), "Pacing", 5)
	require.NoError(t, err)
	require.Len(t, both, 1)

	byMovie, err := svc.ByMovie(context.Background(), movieID)
	require.NoError(t, err)
	assert.Len(t, byMovie, 2)
}
