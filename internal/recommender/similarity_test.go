package recommender

import (
	"math"
	"testing"
)

func TestSimilarityIdenticalRatings(t *testing.T) {
	// dos usuarios que puntúan igual las mismas tres películas
	// tienen que dar 1.0, no 0.0
	a := map[int]float64{1: 5, 2: 3, 3: 4}
	b := map[int]float64{1: 5, 2: 3, 3: 4}

	got := Similarity(a, b)
	if math.Abs(got-1.0) > 1e-9 {
		t.Fatalf("Similarity = %v, esperaba 1.0", got)
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	a := map[int]float64{1: 5, 2: 2, 3: 4, 4: 1}
	b := map[int]float64{1: 3, 2: 4, 3: 2, 5: 5}

	if Similarity(a, b) != Similarity(b, a) {
		t.Fatalf("no es simétrica: %v vs %v", Similarity(a, b), Similarity(b, a))
	}
}

func TestSimilarityInsufficientOverlap(t *testing.T) {
	cases := []struct {
		name string
		a, b map[int]float64
	}{
		{"sin intersección", map[int]float64{1: 5}, map[int]float64{2: 5}},
		{"una sola en común", map[int]float64{1: 5, 2: 3}, map[int]float64{1: 4, 3: 2}},
		{"mapas vacíos", map[int]float64{}, map[int]float64{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Similarity(tc.a, tc.b); got != 0.0 {
				t.Fatalf("Similarity = %v, esperaba exactamente 0.0", got)
			}
		})
	}
}

func TestSimilarityZeroVariance(t *testing.T) {
	// un lado con puntajes constantes en las co-puntuadas → 0.0
	a := map[int]float64{1: 3, 2: 3, 3: 3}
	b := map[int]float64{1: 5, 2: 1, 3: 4}

	if got := Similarity(a, b); got != 0.0 {
		t.Fatalf("Similarity = %v, esperaba exactamente 0.0", got)
	}
	if got := Similarity(b, a); got != 0.0 {
		t.Fatalf("Similarity invertida = %v, esperaba exactamente 0.0", got)
	}
}

func TestSimilarityNegativeCorrelation(t *testing.T) {
	// gustos opuestos → correlación negativa cercana a -1
	a := map[int]float64{1: 5, 2: 4, 3: 1}
	b := map[int]float64{1: 1, 2: 2, 3: 5}

	got := Similarity(a, b)
	if got >= 0 {
		t.Fatalf("Similarity = %v, esperaba negativa", got)
	}
	if got < -1-1e-9 {
		t.Fatalf("Similarity = %v, fuera de rango", got)
	}
}

func TestSimilarityWithinRange(t *testing.T) {
	a := map[int]float64{1: 5, 2: 1, 3: 3, 4: 4, 5: 2}
	b := map[int]float64{1: 4, 2: 2, 3: 5, 4: 1, 5: 3}

	got := Similarity(a, b)
	if got < -1-1e-9 || got > 1+1e-9 {
		t.Fatalf("Similarity = %v, fuera de [-1, 1]", got)
	}
}
