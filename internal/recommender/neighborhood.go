package recommender

import (
	"context"
	"sort"
)

// topPeers es cuántos vecinos (usuarios con mayor similitud) se
// consideran para puntuar candidatos.
const topPeers = 10

// neighborhoodRank implementa el filtrado colaborativo por vecindad:
// puntúa películas a partir de los ratings de los usuarios más
// parecidos al objetivo. El set de exclusión acá es el historial de
// VISTAS, no el de ratings (el cluster hace lo contrario; la
// diferencia viene del comportamiento original y está documentada).
//
// Si en algún paso no queda nada que recomendar, delega en el
// ranking por popularidad en vez de fallar.
func (e *Engine) neighborhoodRank(ctx context.Context, userID int, targetRatings []Rating, n int) ([]int, error) {
	watched, err := e.store.WatchedMovieIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	target := ratingsToMap(targetRatings)

	byUser, peerIDs, err := e.groupRatingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// similitud contra cada otro usuario con ratings; solo
	// correlaciones estrictamente positivas
	type peer struct {
		userID int
		sim    float64
	}
	var peers []peer
	for _, otherID := range peerIDs {
		sim := Similarity(target, ratingsToMap(byUser[otherID]))
		if sim > 0 {
			peers = append(peers, peer{userID: otherID, sim: sim})
		}
	}
	if len(peers) == 0 {
		return e.popularityRank(ctx, n)
	}

	// peerIDs ya viene ordenado ascendente, así que el sort estable
	// desempata similitudes iguales por userId más chico
	sort.SliceStable(peers, func(i, j int) bool { return peers[i].sim > peers[j].sim })
	if len(peers) > topPeers {
		peers = peers[:topPeers]
	}

	// acumular rating*sim por película no vista; una película puede
	// recibir aportes de varios vecinos
	contribs := make(map[int][]float64)
	var order []int // orden de primer aporte, para el desempate
	for _, p := range peers {
		for _, r := range byUser[p.userID] {
			if _, seen := watched[r.MovieID]; seen {
				continue
			}
			if _, ok := contribs[r.MovieID]; !ok {
				order = append(order, r.MovieID)
			}
			contribs[r.MovieID] = append(contribs[r.MovieID], r.Score*p.sim)
		}
	}
	if len(order) == 0 {
		return e.popularityRank(ctx, n)
	}

	// promedio simple de los aportes ponderados (NO se divide por la
	// suma de similitudes: así puntúa el comportamiento original)
	scores := make(map[int]float64, len(order))
	for movieID, ws := range contribs {
		var sum float64
		for _, w := range ws {
			sum += w
		}
		scores[movieID] = sum / float64(len(ws))
	}

	sort.SliceStable(order, func(i, j int) bool { return scores[order[i]] > scores[order[j]] })
	if len(order) > n {
		order = order[:n]
	}
	return order, nil
}

// groupRatingsByUser junta todos los ratings del sistema por usuario
// (menos el objetivo), con los ratings de cada uno ordenados por
// movieId y los ids de usuario ascendentes, para que todo el
// pipeline sea determinista.
func (e *Engine) groupRatingsByUser(ctx context.Context, excludeUserID int) (map[int][]Rating, []int, error) {
	all, err := e.store.AllRatings(ctx)
	if err != nil {
		return nil, nil, err
	}

	byUser := make(map[int][]Rating)
	for _, r := range all {
		if r.UserID == excludeUserID {
			continue
		}
		byUser[r.UserID] = append(byUser[r.UserID], r)
	}

	ids := make([]int, 0, len(byUser))
	for id := range byUser {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		rs := byUser[id]
		sort.Slice(rs, func(i, j int) bool { return rs[i].MovieID < rs[j].MovieID })
	}
	return byUser, ids, nil
}

// ratingsToMap colapsa una secuencia de ratings a movieId→score
// (la última observación gana, igual que en la matriz).
func ratingsToMap(rs []Rating) map[int]float64 {
	m := make(map[int]float64, len(rs))
	for _, r := range rs {
		m[r.MovieID] = r.Score
	}
	return m
}
