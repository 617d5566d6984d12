package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Lo que está en Mongo: una opinión de un usuario en una categoría de un movie.
// La identidad es (movieId, ratingName, upperbound, username); la misma
// ratingName con otro upperbound es otra categoría.
type RatingDoc struct {
	Username        string             `json:"username" bson:"username"`
	RatingName      string             `json:"ratingName" bson:"ratingName"`
	UserRating      int                `json:"userRating" bson:"userRating"`
	Upperbound      int                `json:"upperbound" bson:"upperbound"`
	MovieID         string             `json:"movieId" bson:"movieId"`
	MovieTitle      string             `json:"movieTitle" bson:"movieTitle"`
	Subtype         string             `json:"subtype" bson:"subtype"`
	Privacy         string             `json:"privacy" bson:"privacy"`
	DateTimeCreated primitive.DateTime `json:"dateTimeCreated" bson:"dateTimeCreated"`
}

// Resumen sintetizado por selección de moda (ver RatingService.MostPopularForMovie).
type AggregateRating struct {
	RatingName string  `json:"ratingName"`
	Upperbound int     `json:"upperbound"`
	AvgRating  float64 `json:"avgRating"`
}

// Promedio de una categoría (ratingName, upperbound) con la personalización
// del requester: UserRating/Username solo vienen si él mismo votó en el grupo.
type CategoryAverage struct {
	MovieID    string  `json:"movieId"`
	RatingName string  `json:"ratingName"`
	Upperbound int     `json:"upperbound"`
	Subtype    string  `json:"subtype"`
	AvgRating  float64 `json:"avgRating"`
	UserRating *int    `json:"userRating,omitempty"`
	Username   string  `json:"username,omitempty"`
}
