package recommender

import "errors"

// ErrInsufficientData indica que no hay suficientes usuarios/películas
// activos para armar una matriz útil (mínimo 2x2 después de limpiar).
var ErrInsufficientData = errors.New("recommender: datos insuficientes para construir la matriz")

// Matrix es la matriz densa usuario×película junto con los mapeos
// índice→id. Los mapeos se mantienen en paralelo con cada fila/columna
// eliminada: UserIDs[i] es el dueño de Data[i], MovieIDs[j] el de la
// columna j. Romper ese invariante rompe todo lo demás.
type Matrix struct {
	Data     [][]float64
	UserIDs  []int
	MovieIDs []int
}

// Rows devuelve la cantidad de usuarios activos.
func (m *Matrix) Rows() int { return len(m.Data) }

// Cols devuelve la cantidad de películas activas.
func (m *Matrix) Cols() int {
	if len(m.Data) == 0 {
		return 0
	}
	return len(m.Data[0])
}

// UserRow devuelve el índice de fila de un userId, o -1.
func (m *Matrix) UserRow(userID int) int {
	for i, id := range m.UserIDs {
		if id == userID {
			return i
		}
	}
	return -1
}

// BuildMatrix arma la matriz de ratings: reserva |users|×|movies| en
// cero, dispersa cada rating en su celda (la última observación de un
// par (user, movie) pisa a la anterior) y después elimina filas y
// columnas totalmente en cero.
//
// Función pura: no toca el Store ni estado compartido.
func BuildMatrix(userIDs, movieIDs []int, ratings []Rating) (*Matrix, error) {
	if len(userIDs) == 0 || len(movieIDs) == 0 || len(ratings) == 0 {
		return nil, ErrInsufficientData
	}

	userIdx := make(map[int]int, len(userIDs))
	for i, id := range userIDs {
		userIdx[id] = i
	}
	movieIdx := make(map[int]int, len(movieIDs))
	for j, id := range movieIDs {
		movieIdx[id] = j
	}

	data := make([][]float64, len(userIDs))
	for i := range data {
		data[i] = make([]float64, len(movieIDs))
	}

	for _, r := range ratings {
		i, okU := userIdx[r.UserID]
		j, okM := movieIdx[r.MovieID]
		if !okU || !okM {
			// rating huérfano (usuario o película borrados): se ignora
			continue
		}
		data[i][j] = r.Score
	}

	m := &Matrix{
		Data:     data,
		UserIDs:  append([]int(nil), userIDs...),
		MovieIDs: append([]int(nil), movieIDs...),
	}
	m.pruneZeroRows()
	m.pruneZeroCols()

	if m.Rows() < 2 || m.Cols() < 2 {
		return nil, ErrInsufficientData
	}
	return m, nil
}

// pruneZeroRows elimina usuarios sin ningún rating observado,
// manteniendo UserIDs alineado.
func (m *Matrix) pruneZeroRows() {
	keptData := m.Data[:0]
	keptIDs := m.UserIDs[:0]
	for i, row := range m.Data {
		if anyNonZero(row) {
			keptData = append(keptData, row)
			keptIDs = append(keptIDs, m.UserIDs[i])
		}
	}
	m.Data = keptData
	m.UserIDs = keptIDs
}

// pruneZeroCols elimina películas sin ningún rating observado,
// manteniendo MovieIDs alineado.
func (m *Matrix) pruneZeroCols() {
	cols := 0
	if len(m.Data) > 0 {
		cols = len(m.Data[0])
	}

	keep := make([]bool, cols)
	for j := 0; j < cols; j++ {
		for i := range m.Data {
			if m.Data[i][j] != 0 {
				keep[j] = true
				break
			}
		}
	}

	keptIDs := m.MovieIDs[:0]
	for j := 0; j < cols; j++ {
		if keep[j] {
			keptIDs = append(keptIDs, m.MovieIDs[j])
		}
	}
	m.MovieIDs = keptIDs

	for i, row := range m.Data {
		kept := row[:0]
		for j := 0; j < cols; j++ {
			if keep[j] {
				kept = append(kept, row[j])
			}
		}
		m.Data[i] = kept
	}
}

func anyNonZero(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return true
		}
	}
	return false
}

// Transpose devuelve la matriz película×usuario (para clusterizar
// columnas con el mismo k-means que las filas).
func (m *Matrix) Transpose() [][]float64 {
	rows, cols := m.Rows(), m.Cols()
	t := make([][]float64, cols)
	for j := 0; j < cols; j++ {
		t[j] = make([]float64, rows)
		for i := 0; i < rows; i++ {
			t[j][i] = m.Data[i][j]
		}
	}
	return t
}
