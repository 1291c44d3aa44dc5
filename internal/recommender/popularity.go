package recommender

import (
	"context"
	"sort"
)

// popularityRank ordena todas las películas por su rating promedio,
// descendente. Las películas sin ningún rating quedan afuera (nunca
// se puntúan como 0). Empates conservan el orden de listado del
// Store, así la salida es estable entre invocaciones con los mismos
// datos. Con cero ratings en todo el sistema devuelve vacío: es el
// único caso en que el recomendador entero puede no devolver nada.
func (e *Engine) popularityRank(ctx context.Context, n int) ([]int, error) {
	movieIDs, err := e.store.ListMovieIDs(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		movieID int
		avg     float64
	}
	var ranked []scored

	for _, movieID := range movieIDs {
		scores, err := e.store.RatingsForMovie(ctx, movieID)
		if err != nil {
			return nil, err
		}
		if len(scores) == 0 {
			continue
		}
		var sum float64
		for _, s := range scores {
			sum += s
		}
		ranked = append(ranked, scored{movieID: movieID, avg: sum / float64(len(scores))})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].avg > ranked[j].avg })

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]int, 0, len(ranked))
	for _, s := range ranked {
		out = append(out, s.movieID)
	}
	return out, nil
}
