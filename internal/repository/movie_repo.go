package repository

import (
	"context"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/db"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

// GetByHexID busca el movie por el hex string de su ObjectId. Un hex inválido
// se trata igual que un movie inexistente: (nil, nil).
func (r *MovieRepository) GetByHexID(ctx context.Context, movieID string) (*models.MovieDoc, error) {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil, nil
	}

	var m models.MovieDoc
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&m)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MovieRepository) Insert(ctx context.Context, m *models.MovieDoc) (string, error) {
	res, err := r.col.InsertOne(ctx, m)
	if err != nil {
		return "", err
	}
	oid := res.InsertedID.(primitive.ObjectID)
	return oid.Hex(), nil
}

// addToNameList agrega name al array `field` del movie si todavía no estaba.
// $addToSet es idempotente, no hace falta leer antes de escribir.
func (r *MovieRepository) addToNameList(ctx context.Context, movieID, field, name string) error {
	oid, err := primitive.ObjectIDFromHex(movieID)
	if err != nil {
		return nil
	}
	_, err = r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$addToSet": bson.M{field: name}},
	)
	return err
}

func (r *MovieRepository) RegisterRatingCategory(ctx context.Context, movieID, ratingName string) error {
	return r.addToNameList(ctx, movieID, "ratingCategoryNames", ratingName)
}

func (r *MovieRepository) RegisterTagName(ctx context.Context, movieID, tagName string) error {
	return r.addToNameList(ctx, movieID, "tagNames", tagName)
}

func (r *MovieRepository) All(ctx context.Context) ([]models.MovieDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

// SetNameLists pisa las dos listas de nombres (lo usa el rebuild de admin).
func (r *MovieRepository) SetNameLists(ctx context.Context, id primitive.ObjectID, categories, tags []string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"ratingCategoryNames": categories,
			"tagNames":            tags,
		}},
	)
	return err
}
