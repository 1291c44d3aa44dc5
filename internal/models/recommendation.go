package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RecMovie es una película ya resuelta dentro de una respuesta de
// recomendación.
type RecMovie struct {
	MovieID int      `bson:"movieId" json:"movieId"`
	Title   string   `bson:"title" json:"title"`
	Genres  []string `bson:"genres" json:"genres"`
}

// Recommendation es el historial que se guarda en Mongo por cada
// respuesta servida (no rompe el request si falla el insert).
type Recommendation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    *int               `bson:"userId,omitempty" json:"userId,omitempty"` // nil = usuario nuevo
	Strategy  string             `bson:"strategy" json:"strategy"`                 // knn|cluster|popular
	K         int                `bson:"k" json:"k"`
	Items     []RecMovie         `bson:"items" json:"items"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}
