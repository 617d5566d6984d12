package models

type UserDoc struct {
	Username     string `json:"username" bson:"username"`
	PasswordHash string `json:"passwordHash" bson:"passwordHash"`
	Role         string `json:"role" bson:"role"`
	CreatedAt    string `json:"createdAt" bson:"createdAt"`
}
