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

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

// Upsert escribe el rating con un solo UpdateOne condicional sobre la clave de
// identidad (movieId, ratingName, upperbound, username). Si la fila ya existía
// solo se pisa userRating; subtype, privacy y fecha quedan como estaban.
// Devuelve true cuando la fila fue creada.
func (r *RatingRepository) Upsert(ctx context.Context, doc models.RatingDoc) (bool, error) {
	filter := bson.M{
		"movieId":    doc.MovieID,
		"ratingName": doc.RatingName,
		"upperbound": doc.Upperbound,
		"username":   doc.Username,
	}
	update := bson.M{
		"$set": bson.M{"userRating": doc.UserRating},
		"$setOnInsert": bson.M{
			"movieTitle":      doc.MovieTitle,
			"subtype":         doc.Subtype,
			"privacy":         doc.Privacy,
			"dateTimeCreated": primitive.NewDateTimeFromTime(time.Now()),
		},
	}

	res, err := r.col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return false, err
	}
	return res.UpsertedCount > 0, nil
}

func (r *RatingRepository) find(ctx context.Context, filter bson.M) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var rd models.RatingDoc
		if err := cur.Decode(&rd); err != nil {
			return nil, err
		}
		out = append(out, rd)
	}
	return out, cur.Err()
}

func (r *RatingRepository) ByMovie(ctx context.Context, movieID string) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"movieId": movieID})
}

func (r *RatingRepository) ByNameAndUpperbound(ctx context.Context, ratingName string, upperbound int) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"ratingName": ratingName, "upperbound": upperbound})
}

func (r *RatingRepository) ByName(ctx context.Context, ratingName string) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"ratingName": ratingName})
}

func (r *RatingRepository) ByUpperbound(ctx context.Context, upperbound int) ([]models.RatingDoc, error) {
	return r.find(ctx, bson.M{"upperbound": upperbound})
}
