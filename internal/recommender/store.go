package recommender

import "context"

// Rating es una observación (usuario, película, puntaje) tal como
// sale del almacén. El motor no asume unicidad por par: si hay
// duplicados, la última observación gana.
type Rating struct {
	UserID  int
	MovieID int
	Score   float64
}

// Movie es la ficha mínima que el motor devuelve ya resuelta.
// El género no participa en ningún algoritmo actual, pero es
// parte del registro.
type Movie struct {
	ID     int
	Title  string
	Genres []string
}

// Store es todo lo que el motor necesita leer del mundo exterior.
// Lo implementa el adaptador Mongo en internal/service; los tests
// usan un fake en memoria.
type Store interface {
	ListUserIDs(ctx context.Context) ([]int, error)
	ListMovieIDs(ctx context.Context) ([]int, error)
	AllRatings(ctx context.Context) ([]Rating, error)
	RatingsForUser(ctx context.Context, userID int) ([]Rating, error)
	RatingsForMovie(ctx context.Context, movieID int) ([]float64, error)
	// WatchedMovieIDs devuelve el set de películas ya vistas
	// (historial de visualización, no de ratings).
	WatchedMovieIDs(ctx context.Context, userID int) (map[int]struct{}, error)
	// GetMovie devuelve nil, nil si la película ya no existe.
	GetMovie(ctx context.Context, movieID int) (*Movie, error)
}
