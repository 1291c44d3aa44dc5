package recommender

import (
	"math"
	"math/rand/v2"
)

const (
	kmeansMaxIter   = 100
	kmeansRestarts  = 10
	kmeansThreshold = 1e-6
)

// ClusterFunc es la frontera enchufable del particionado no
// supervisado: recibe puntos, k y una semilla, devuelve una etiqueta
// por punto. El motor solo depende de esta firma, no de que abajo
// haya k-means.
type ClusterFunc func(data [][]float64, k int, seed uint64) []int

// KMeans particiona los puntos en k grupos. Corre kmeansRestarts
// reinicios con semillas derivadas y se queda con la partición de
// menor varianza intra-cluster (inercia). Determinista para una
// misma semilla.
func KMeans(data [][]float64, k int, seed uint64) []int {
	if len(data) == 0 || k <= 0 {
		return nil
	}
	if k > len(data) {
		k = len(data)
	}

	best := make([]int, len(data))
	bestInertia := math.Inf(1)

	for restart := 0; restart < kmeansRestarts; restart++ {
		rng := rand.New(rand.NewPCG(seed, uint64(restart)))
		assignments, inertia := kmeansOnce(data, k, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			copy(best, assignments)
		}
	}
	return best
}

// kmeansOnce corre una sola pasada de Lloyd con init k-means++ y
// devuelve las asignaciones junto con la inercia final.
func kmeansOnce(data [][]float64, k int, rng *rand.Rand) ([]int, float64) {
	centroids := seedCentroids(data, k, rng)
	assignments := make([]int, len(data))

	for iter := 0; iter < kmeansMaxIter; iter++ {
		for i, point := range data {
			assignments[i] = nearestCentroid(point, centroids)
		}

		next := recomputeCentroids(data, assignments, k, centroids)
		moved := maxCentroidShift(centroids, next)
		centroids = next
		if moved < kmeansThreshold {
			break
		}
	}

	var inertia float64
	for i, point := range data {
		inertia += sqDist(point, centroids[assignments[i]])
	}
	return assignments, inertia
}

// seedCentroids elige centros iniciales con k-means++: el primero al
// azar, los siguientes con probabilidad proporcional a la distancia
// cuadrada al centro ya elegido más cercano.
func seedCentroids(data [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(data)
	dim := len(data[0])

	centroids := make([][]float64, k)
	centroids[0] = append(make([]float64, 0, dim), data[rng.IntN(n)]...)

	dists := make([]float64, n)
	for c := 1; c < k; c++ {
		var total float64
		for i, point := range data {
			min := math.Inf(1)
			for _, cen := range centroids[:c] {
				if d := sqDist(point, cen); d < min {
					min = d
				}
			}
			dists[i] = min
			total += min
		}

		chosen := 0
		if total > 0 {
			target := rng.Float64() * total
			var acc float64
			for i, d := range dists {
				acc += d
				if acc >= target {
					chosen = i
					break
				}
			}
		} else {
			// todos los puntos coinciden con algún centro
			chosen = rng.IntN(n)
		}
		centroids[c] = append(make([]float64, 0, dim), data[chosen]...)
	}
	return centroids
}

func nearestCentroid(point []float64, centroids [][]float64) int {
	best, bestDist := 0, math.Inf(1)
	for i, cen := range centroids {
		if d := sqDist(point, cen); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// recomputeCentroids promedia los puntos de cada cluster; un cluster
// que quedó vacío conserva su centro anterior.
func recomputeCentroids(data [][]float64, assignments []int, k int, old [][]float64) [][]float64 {
	dim := len(data[0])
	next := make([][]float64, k)
	counts := make([]int, k)
	for i := range next {
		next[i] = make([]float64, dim)
	}

	for i, point := range data {
		c := assignments[i]
		counts[c]++
		for j, v := range point {
			next[c][j] += v
		}
	}

	for c := range next {
		if counts[c] == 0 {
			next[c] = old[c]
			continue
		}
		for j := range next[c] {
			next[c][j] /= float64(counts[c])
		}
	}
	return next
}

func maxCentroidShift(old, next [][]float64) float64 {
	var max float64
	for i := range old {
		if d := math.Sqrt(sqDist(old[i], next[i])); d > max {
			max = d
		}
	}
	return max
}

func sqDist(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
