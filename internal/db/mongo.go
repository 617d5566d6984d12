package db

import (
	"context"
	"log"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/config"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var mongoClient *mongo.Client
var mongoDB *mongo.Database

func InitMongo(cfg *config.Config) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("[mongo] error conectando: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("[mongo] ping falló: %v", err)
	}

	mongoClient = client
	mongoDB = client.Database(cfg.MongoDB)
	log.Printf("[mongo] conectado a %s / DB=%s\n", cfg.MongoURI, cfg.MongoDB)
}

func DB() *mongo.Database {
	return mongoDB
}

// EnsureIndexes crea los índices únicos sobre las claves de identidad de
// ratings y tags. Con el índice único, el upsert condicional de los repos es
// atómico por clave: dos writers concurrentes nunca dejan dos filas.
func EnsureIndexes(ctx context.Context) error {
	ratingKey := mongo.IndexModel{
		Keys: bson.D{
			{Key: "movieId", Value: 1},
			{Key: "ratingName", Value: 1},
			{Key: "upperbound", Value: 1},
			{Key: "username", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := mongoDB.Collection("ratings").Indexes().CreateOne(ctx, ratingKey); err != nil {
		return err
	}

	tagKey := mongo.IndexModel{
		Keys: bson.D{
			{Key: "movieId", Value: 1},
			{Key: "tagName", Value: 1},
			{Key: "username", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	if _, err := mongoDB.Collection("tags").Indexes().CreateOne(ctx, tagKey); err != nil {
		return err
	}

	userKey := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	_, err := mongoDB.Collection("users").Indexes().CreateOne(ctx, userKey)
	return err
}
