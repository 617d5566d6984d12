package repository

import (
	"context"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/db"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TagRepository struct {
	col *mongo.Collection
}

func NewTagRepository() *TagRepository {
	return &TagRepository{col: db.DB().Collection("tags")}
}

func tagKeyFilter(movieID, tagName, username string) bson.M {
	return bson.M{
		"movieId":  movieID,
		"tagName":  tagName,
		"username": username,
	}
}

func (r *TagRepository) Get(ctx context.Context, movieID, tagName, username string) (*models.TagDoc, error) {
	var t models.TagDoc
	err := r.col.FindOne(ctx, tagKeyFilter(movieID, tagName, username)).Decode(&t)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateIfAbsent inserta el tag solo si no existe fila para la clave
// (movieId, tagName, username). Un create duplicado no toca el estado actual.
// Devuelve true cuando realmente se insertó.
func (r *TagRepository) CreateIfAbsent(ctx context.Context, doc models.TagDoc) (bool, error) {
	update := bson.M{
		"$setOnInsert": bson.M{
			"movieTitle":      doc.MovieTitle,
			"privacy":         doc.Privacy,
			"state":           doc.State,
			"dateTimeCreated": primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	res, err := r.col.UpdateOne(ctx,
		tagKeyFilter(doc.MovieID, doc.TagName, doc.Username),
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

// SetState deja la fila en doc.State con un único write: si no existe la crea
// directamente en ese estado (un downvote sobre tag inexistente nunca pasa por
// un upvote intermedio visible). Devuelve true cuando la fila fue creada.
func (r *TagRepository) SetState(ctx context.Context, doc models.TagDoc) (bool, error) {
	update := bson.M{
		"$set": bson.M{"state": doc.State},
		"$setOnInsert": bson.M{
			"movieTitle":      doc.MovieTitle,
			"privacy":         doc.Privacy,
			"dateTimeCreated": primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	res, err := r.col.UpdateOne(ctx,
		tagKeyFilter(doc.MovieID, doc.TagName, doc.Username),
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *TagRepository) find(ctx context.Context, filter bson.M) ([]models.TagDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.TagDoc
	for cur.Next(ctx) {
		var t models.TagDoc
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, cur.Err()
}

func (r *TagRepository) ByMovie(ctx context.Context, movieID string) ([]models.TagDoc, error) {
	return r.find(ctx, bson.M{"movieId": movieID})
}

func (r *TagRepository) ByName(ctx context.Context, tagName string) ([]models.TagDoc, error) {
	return r.find(ctx, bson.M{"tagName": tagName})
}

func (r *TagRepository) ByUser(ctx context.Context, username string) ([]models.TagDoc, error) {
	return r.find(ctx, bson.M{"username": username})
}
