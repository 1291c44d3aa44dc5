package models

// RatingStats se mantiene incrementalmente con cada rating nuevo o
// actualizado; /movies/top ordena por estos campos sin recalcular.
type RatingStats struct {
	Average     float64 `json:"average" bson:"average"`
	Count       int     `json:"count" bson:"count"`
	LastRatedAt string  `json:"lastRatedAt,omitempty" bson:"lastRatedAt,omitempty"`
}

type MovieDoc struct {
	MovieID     int          `json:"movieId" bson:"movieId"`
	Title       string       `json:"title" bson:"title"`
	Genres      []string     `json:"genres" bson:"genres"`
	RatingStats *RatingStats `json:"ratingStats,omitempty" bson:"ratingStats,omitempty"`
	CreatedAt   string       `json:"createdAt" bson:"createdAt"`
	UpdatedAt   string       `json:"updatedAt" bson:"updatedAt"`
}

// Payload para crear una película (lo que exponemos en la API)
type MovieCreateRequest struct {
	Title  string   `json:"title"` // obligatorio
	Genres []string `json:"genres,omitempty"`
}
