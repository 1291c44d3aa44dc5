package recommender

import (
	"context"
	"math"
)

// UserCluster y MovieCluster son espacios de etiquetas
// independientes: el k-means corre dos veces (filas y columnas de la
// misma matriz) y nada garantiza que la etiqueta 3 de usuarios
// signifique lo mismo que la etiqueta 3 de películas. La estrategia
// por cluster las une por igualdad numérica porque así se comporta
// el modelo original; los tipos separados evitan mezclarlas por
// accidente en el resto del código.
type UserCluster int

type MovieCluster int

// model es el estado entrenado: la matriz activa más las dos
// asignaciones de clusters. Una vez publicado es de solo lectura;
// un retrain arma un model nuevo y lo intercambia entero.
type model struct {
	matrix        *Matrix
	userClusters  []UserCluster  // por fila
	movieClusters []MovieCluster // por columna
}

// buildModel arma un model desde cero: matriz, estandarización
// global y doble k-means. No toca el estado del motor.
func (e *Engine) buildModel(ctx context.Context, k int) (*model, error) {
	userIDs, err := e.store.ListUserIDs(ctx)
	if err != nil {
		return nil, err
	}
	movieIDs, err := e.store.ListMovieIDs(ctx)
	if err != nil {
		return nil, err
	}
	ratings, err := e.store.AllRatings(ctx)
	if err != nil {
		return nil, err
	}

	matrix, err := BuildMatrix(userIDs, movieIDs, ratings)
	if err != nil {
		return nil, err
	}

	// estandarización por media y desviación GLOBALES (no por fila)
	normalizeGlobal(matrix.Data)

	// k se recorta para que el clustering siga siendo válido
	if k > matrix.Rows()-1 {
		k = matrix.Rows() - 1
	}
	if k < 1 {
		k = 1
	}

	rowLabels := e.clusterFn(matrix.Data, k, e.seed)
	colLabels := e.clusterFn(matrix.Transpose(), k, e.seed)

	m := &model{
		matrix:        matrix,
		userClusters:  make([]UserCluster, len(rowLabels)),
		movieClusters: make([]MovieCluster, len(colLabels)),
	}
	for i, l := range rowLabels {
		m.userClusters[i] = UserCluster(l)
	}
	for j, l := range colLabels {
		m.movieClusters[j] = MovieCluster(l)
	}
	return m, nil
}

// normalizeGlobal estandariza in place con la media y desviación de
// toda la matriz; el +1e-10 evita dividir por cero con datos
// degenerados.
func normalizeGlobal(data [][]float64) {
	var sum float64
	var count int
	for _, row := range data {
		for _, v := range row {
			sum += v
			count++
		}
	}
	if count == 0 {
		return
	}
	mean := sum / float64(count)

	var acc float64
	for _, row := range data {
		for _, v := range row {
			d := v - mean
			acc += d * d
		}
	}
	std := math.Sqrt(acc/float64(count)) + 1e-10

	for _, row := range data {
		for j, v := range row {
			row[j] = (v - mean) / std
		}
	}
}

// clusterRankKnown recomienda por co-membresía de cluster para un
// usuario que está en la matriz: toma las películas cuya etiqueta de
// columna coincide con la etiqueta de fila del usuario, excluyendo
// las que ya PUNTUÓ (acá el set de exclusión son los ratings, no el
// historial de vistas). Si no alcanza para n, completa con cualquier
// película sin puntuar en orden de columna.
func (m *model) clusterRankKnown(row int, rated map[int]float64, n int) []int {
	userLabel := m.userClusters[row]

	var out []int
	picked := make(map[int]struct{})
	for j, movieID := range m.matrix.MovieIDs {
		if int(m.movieClusters[j]) != int(userLabel) {
			continue
		}
		if _, ok := rated[movieID]; ok {
			continue
		}
		out = append(out, movieID)
		picked[movieID] = struct{}{}
	}

	if len(out) < n {
		for _, movieID := range m.matrix.MovieIDs {
			if _, ok := rated[movieID]; ok {
				continue
			}
			if _, ok := picked[movieID]; ok {
				continue
			}
			out = append(out, movieID)
			picked[movieID] = struct{}{}
		}
	}

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// clusterRankNew recomienda para un usuario desconocido: el cluster
// de películas con más miembros, en orden de columna (ningún orden
// derivado de ratings). Empates los gana la etiqueta más baja.
func (m *model) clusterRankNew(n int) []int {
	counts := make(map[MovieCluster]int)
	for _, l := range m.movieClusters {
		counts[l]++
	}

	var largest MovieCluster
	best := -1
	for _, l := range m.movieClusters {
		if counts[l] > best || (counts[l] == best && l < largest) {
			largest, best = l, counts[l]
		}
	}

	var out []int
	for j, movieID := range m.matrix.MovieIDs {
		if m.movieClusters[j] != largest {
			continue
		}
		out = append(out, movieID)
		if len(out) == n {
			break
		}
	}
	return out
}
