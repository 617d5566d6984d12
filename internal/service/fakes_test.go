package service

import (
	"context"
	"sync"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
)

// Fakes en memoria de los stores. Los locks importan: el test de concurrencia
// martilla Upsert/SetState desde varias goroutines.

type fakeMovieLookup struct {
	mu         sync.Mutex
	titles     map[string]string
	categories map[string][]string
	tagNames   map[string][]string
}

func newFakeMovieLookup(titles map[string]string) *fakeMovieLookup {
	return &fakeMovieLookup{
		titles:     titles,
		categories: make(map[string][]string),
		tagNames:   make(map[string][]string),
	}
}

func (f *fakeMovieLookup) Resolve(_ context.Context, movieID string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	title, ok := f.titles[movieID]
	return title, ok, nil
}

func appendIfNew(list []string, name string) []string {
	for _, n := range list {
		if n == name {
			return list
		}
	}
	return append(list, name)
}

func (f *fakeMovieLookup) RegisterRatingCategory(_ context.Context, movieID, ratingName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories[movieID] = appendIfNew(f.categories[movieID], ratingName)
	return nil
}

func (f *fakeMovieLookup) RegisterTagName(_ context.Context, movieID, tagName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tagNames[movieID] = appendIfNew(f.tagNames[movieID], tagName)
	return nil
}

type fakeRatingStore struct {
	mu   sync.Mutex
	rows []models.RatingDoc
	err  error
}

func (f *fakeRatingStore) Upsert(_ context.Context, doc models.RatingDoc) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	for i, r := range f.rows {
		if r.MovieID == doc.MovieID && r.RatingName == doc.RatingName &&
			r.Upperbound == doc.Upperbound && r.Username == doc.Username {
			f.rows[i].UserRating = doc.UserRating
			return false, nil
		}
	}
	f.rows = append(f.rows, doc)
	return true, nil
}

func (f *fakeRatingStore) filter(keep func(models.RatingDoc) bool) ([]models.RatingDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []models.RatingDoc
	for _, r := range f.rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeRatingStore) ByMovie(_ context.Context, movieID string) ([]models.RatingDoc, error) {
	return f.filter(func(r models.RatingDoc) bool { return r.MovieID == movieID })
}

func (f *fakeRatingStore) ByNameAndUpperbound(_ context.Context, name string, ub int) ([]models.RatingDoc, error) {
	return f.filter(func(r models.RatingDoc) bool { return r.RatingName == name && r.Upperbound == ub })
}

func (f *fakeRatingStore) ByName(_ context.Context, name string) ([]models.RatingDoc, error) {
	return f.filter(func(r models.RatingDoc) bool { return r.RatingName == name })
}

func (f *fakeRatingStore) ByUpperbound(_ context.Context, ub int) ([]models.RatingDoc, error) {
	return f.filter(func(r models.RatingDoc) bool { return r.Upperbound == ub })
}

type fakeTagStore struct {
	mu   sync.Mutex
	rows []models.TagDoc
}

func (f *fakeTagStore) locate(movieID, tagName, username string) int {
	for i, t := range f.rows {
		if t.MovieID == movieID && t.TagName == tagName && t.Username == username {
			return i
		}
	}
	return -1
}

func (f *fakeTagStore) Get(_ context.Context, movieID, tagName, username string) (*models.TagDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.locate(movieID, tagName, username); i >= 0 {
		t := f.rows[i]
		return &t, nil
	}
	return nil, nil
}

func (f *fakeTagStore) CreateIfAbsent(_ context.Context, doc models.TagDoc) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.locate(doc.MovieID, doc.TagName, doc.Username) >= 0 {
		return false, nil
	}
	f.rows = append(f.rows, doc)
	return true, nil
}

func (f *fakeTagStore) SetState(_ context.Context, doc models.TagDoc) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if i := f.locate(doc.MovieID, doc.TagName, doc.Username); i >= 0 {
		f.rows[i].State = doc.State
		return false, nil
	}
	f.rows = append(f.rows, doc)
	return true, nil
}

func (f *fakeTagStore) filter(keep func(models.TagDoc) bool) ([]models.TagDoc, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.TagDoc
	for _, t := range f.rows {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTagStore) ByMovie(_ context.Context, movieID string) ([]models.TagDoc, error) {
	return f.filter(func(t models.TagDoc) bool { return t.MovieID == movieID })
}

func (f *fakeTagStore) ByName(_ context.Context, tagName string) ([]models.TagDoc, error) {
	return f.filter(func(t models.TagDoc) bool { return t.TagName == tagName })
}

func (f *fakeTagStore) ByUser(_ context.Context, username string) ([]models.TagDoc, error) {
	return f.filter(func(t models.TagDoc) bool { return t.Username == username })
}
