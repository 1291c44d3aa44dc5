package recommender

import (
	"errors"
	"testing"
)

func TestBuildMatrixBasic(t *testing.T) {
	users := []int{10, 20, 30}
	movies := []int{100, 200}
	ratings := []Rating{
		{UserID: 10, MovieID: 100, Score: 4},
		{UserID: 20, MovieID: 200, Score: 3},
		{UserID: 30, MovieID: 100, Score: 5},
	}

	m, err := BuildMatrix(users, movies, ratings)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	if m.Rows() != 3 || m.Cols() != 2 {
		t.Fatalf("dimensiones %dx%d, esperaba 3x2", m.Rows(), m.Cols())
	}
	if m.Data[0][0] != 4 || m.Data[1][1] != 3 || m.Data[2][0] != 5 {
		t.Fatalf("celdas mal dispersadas: %v", m.Data)
	}
}

func TestBuildMatrixPruneKeepsMappings(t *testing.T) {
	// el usuario 20 y la película 200 no tienen ratings: deben caer
	// y los mapeos tienen que seguir alineados
	users := []int{10, 20, 30}
	movies := []int{100, 200, 300}
	ratings := []Rating{
		{UserID: 10, MovieID: 100, Score: 4},
		{UserID: 30, MovieID: 300, Score: 2},
		{UserID: 10, MovieID: 300, Score: 1},
		{UserID: 30, MovieID: 100, Score: 5},
	}

	m, err := BuildMatrix(users, movies, ratings)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Fatalf("dimensiones %dx%d, esperaba 2x2", m.Rows(), m.Cols())
	}
	if m.UserIDs[0] != 10 || m.UserIDs[1] != 30 {
		t.Fatalf("UserIDs desalineados: %v", m.UserIDs)
	}
	if m.MovieIDs[0] != 100 || m.MovieIDs[1] != 300 {
		t.Fatalf("MovieIDs desalineados: %v", m.MovieIDs)
	}
	// la celda del usuario 30 / película 300 tiene que haber seguido
	// a sus ids después de la limpieza
	if m.Data[1][1] != 2 {
		t.Fatalf("celda (30,300) = %v, esperaba 2", m.Data[1][1])
	}
}

func TestBuildMatrixLastWriteWins(t *testing.T) {
	users := []int{1, 2}
	movies := []int{100, 200}
	ratings := []Rating{
		{UserID: 1, MovieID: 100, Score: 2},
		{UserID: 1, MovieID: 100, Score: 5}, // duplicado: pisa al anterior
		{UserID: 2, MovieID: 200, Score: 3},
	}

	m, err := BuildMatrix(users, movies, ratings)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	if m.Data[0][0] != 5 {
		t.Fatalf("duplicado no pisó: %v", m.Data[0][0])
	}
}

func TestBuildMatrixSkipsOrphanRatings(t *testing.T) {
	users := []int{1, 2}
	movies := []int{100, 200}
	ratings := []Rating{
		{UserID: 1, MovieID: 100, Score: 4},
		{UserID: 2, MovieID: 200, Score: 3},
		{UserID: 99, MovieID: 100, Score: 5},  // usuario borrado
		{UserID: 1, MovieID: 999, Score: 1},   // película borrada
	}

	m, err := BuildMatrix(users, movies, ratings)
	if err != nil {
		t.Fatalf("BuildMatrix: %v", err)
	}
	if m.Rows() != 2 || m.Cols() != 2 {
		t.Fatalf("dimensiones %dx%d, esperaba 2x2", m.Rows(), m.Cols())
	}
}

func TestBuildMatrixInsufficientData(t *testing.T) {
	cases := []struct {
		name    string
		users   []int
		movies  []int
		ratings []Rating
	}{
		{"sin usuarios", nil, []int{1}, []Rating{{UserID: 1, MovieID: 1, Score: 1}}},
		{"sin películas", []int{1}, nil, []Rating{{UserID: 1, MovieID: 1, Score: 1}}},
		{"sin ratings", []int{1, 2}, []int{1, 2}, nil},
		{
			"una sola fila activa",
			[]int{1, 2},
			[]int{10, 20},
			[]Rating{
				{UserID: 1, MovieID: 10, Score: 3},
				{UserID: 1, MovieID: 20, Score: 4},
			},
		},
		{
			"una sola columna activa",
			[]int{1, 2},
			[]int{10, 20},
			[]Rating{
				{UserID: 1, MovieID: 10, Score: 3},
				{UserID: 2, MovieID: 10, Score: 4},
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := BuildMatrix(tc.users, tc.movies, tc.ratings)
			if !errors.Is(err, ErrInsufficientData) {
				t.Fatalf("err = %v, esperaba ErrInsufficientData", err)
			}
		})
	}
}

func TestTranspose(t *testing.T) {
	m := &Matrix{
		Data:     [][]float64{{1, 2, 3}, {4, 5, 6}},
		UserIDs:  []int{1, 2},
		MovieIDs: []int{10, 20, 30},
	}
	tr := m.Transpose()
	if len(tr) != 3 || len(tr[0]) != 2 {
		t.Fatalf("dimensiones transpuestas mal: %v", tr)
	}
	if tr[2][1] != 6 || tr[0][0] != 1 {
		t.Fatalf("transpuesta mal: %v", tr)
	}
}
