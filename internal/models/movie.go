package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Documento de catálogo. El core solo necesita "existe y tiene título"; el
// resto de campos se sirven tal cual al front. Las listas de nombres son un
// hint de UI: se agregan nombres la primera vez que aparecen en un rating/tag.
type MovieDoc struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title               string             `json:"title" bson:"title"`
	Director            string             `json:"director,omitempty" bson:"director,omitempty"`
	ReleaseDate         string             `json:"releaseDate,omitempty" bson:"releaseDate,omitempty"`
	Summary             string             `json:"summary,omitempty" bson:"summary,omitempty"`
	RatingCategoryNames []string           `json:"ratingCategoryNames" bson:"ratingCategoryNames"`
	TagNames            []string           `json:"tagNames" bson:"tagNames"`
	CreatedAt           string             `json:"createdAt" bson:"createdAt"`
	UpdatedAt           string             `json:"updatedAt" bson:"updatedAt"`
}
