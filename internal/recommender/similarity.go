package recommender

import (
	"math"
	"sort"
)

// Similarity calcula la afinidad entre dos usuarios a partir de sus
// ratings (mapas movieId→puntaje), restringida a las películas que
// ambos puntuaron. Devuelve un valor en [-1, 1], o exactamente 0.0
// cuando no se puede calcular nada con sentido:
//
//   - menos de 2 películas en común,
//   - varianza cero en cualquiera de los dos lados,
//   - correlación indefinida (NaN).
//
// Es simétrica: Similarity(a, b) == Similarity(b, a).
func Similarity(a, b map[int]float64) float64 {
	// intersección ordenada por movieId para que el resultado sea
	// reproducible corrida a corrida
	var common []int
	for movieID := range a {
		if _, ok := b[movieID]; ok {
			common = append(common, movieID)
		}
	}
	if len(common) < 2 {
		return 0.0
	}
	sort.Ints(common)

	xs := make([]float64, len(common))
	ys := make([]float64, len(common))
	for i, movieID := range common {
		xs[i] = a[movieID]
		ys[i] = b[movieID]
	}

	meanX, stdX := meanStd(xs)
	meanY, stdY := meanStd(ys)
	if stdX == 0 || stdY == 0 {
		// puntajes constantes de un lado: no hay señal
		return 0.0
	}

	for i := range xs {
		xs[i] = (xs[i] - meanX) / stdX
		ys[i] = (ys[i] - meanY) / stdY
	}

	corr := pearson(xs, ys)
	if math.IsNaN(corr) {
		return 0.0
	}
	return corr
}

// meanStd devuelve media y desviación estándar poblacional (divide
// por n, no n-1, igual que np.std).
func meanStd(xs []float64) (mean, std float64) {
	n := float64(len(xs))
	for _, v := range xs {
		mean += v
	}
	mean /= n

	var acc float64
	for _, v := range xs {
		d := v - mean
		acc += d * d
	}
	return mean, math.Sqrt(acc / n)
}

// pearson calcula el coeficiente de correlación de dos vectores del
// mismo largo. Sobre vectores ya z-normalizados equivale a la
// correlación de los crudos, pero reproducimos el doble paso del
// cálculo original.
func pearson(xs, ys []float64) float64 {
	n := float64(len(xs))

	var sumX, sumY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / n
	meanY := sumY / n

	var cov, varX, varY float64
	for i := range xs {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	return cov / math.Sqrt(varX*varY)
}
