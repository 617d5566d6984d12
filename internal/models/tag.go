package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Estado del voto de un usuario sobre un tag.
type VoteState string

const (
	StateUpvote   VoteState = "upvote"
	StateDownvote VoteState = "downvote"
	// StateNoTag nunca se persiste: es lo que se responde cuando no hay fila.
	StateNoTag VoteState = "noTag"
)

// Un tag de un usuario sobre un movie. Identidad (movieId, tagName, username);
// el username siempre se guarda en minúsculas.
type TagDoc struct {
	Username        string             `json:"username" bson:"username"`
	TagName         string             `json:"tagName" bson:"tagName"`
	MovieID         string             `json:"movieId" bson:"movieId"`
	MovieTitle      string             `json:"movieTitle" bson:"movieTitle"`
	Privacy         string             `json:"privacy" bson:"privacy"`
	State           VoteState          `json:"state" bson:"state"`
	DateTimeCreated primitive.DateTime `json:"dateTimeCreated" bson:"dateTimeCreated"`
}

// Score agregado de un tagName en un movie: upvotes - downvotes de todos los
// usuarios, más el estado del voto del requester para pintar el modal.
type TagScore struct {
	TagName string    `json:"tagName"`
	MovieID string    `json:"movieId"`
	Score   int       `json:"totalCount"`
	State   VoteState `json:"state"`
}
