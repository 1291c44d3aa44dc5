package models

// Lo que está en Mongo
type RatingDoc struct {
	UserID    int     `json:"userId" bson:"userId"`
	MovieID   int     `json:"movieId" bson:"movieId"`
	Rating    float64 `json:"rating" bson:"rating"`
	Timestamp int64   `json:"timestamp" bson:"timestamp"`
}

// Evento de visualización: solo determina el set de "ya vistas",
// nunca entra al puntaje.
type WatchedDoc struct {
	UserID    int    `json:"userId" bson:"userId"`
	MovieID   int    `json:"movieId" bson:"movieId"`
	WatchedAt string `json:"watchedAt" bson:"watchedAt"`
}
