package recommender

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

// fakeStore es un Store en memoria con órdenes de listado fijos,
// suficiente para ejercitar el motor sin Mongo.
type fakeStore struct {
	userIDs []int
	movies  []Movie
	ratings []Rating
	watched map[int]map[int]struct{}
	// ids que "dejaron de existir" entre el puntaje y la resolución
	missing map[int]struct{}
}

func (f *fakeStore) ListUserIDs(ctx context.Context) ([]int, error) {
	return append([]int(nil), f.userIDs...), nil
}

func (f *fakeStore) ListMovieIDs(ctx context.Context) ([]int, error) {
	out := make([]int, 0, len(f.movies))
	for _, m := range f.movies {
		out = append(out, m.ID)
	}
	return out, nil
}

func (f *fakeStore) AllRatings(ctx context.Context) ([]Rating, error) {
	return append([]Rating(nil), f.ratings...), nil
}

func (f *fakeStore) RatingsForUser(ctx context.Context, userID int) ([]Rating, error) {
	var out []Rating
	for _, r := range f.ratings {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) RatingsForMovie(ctx context.Context, movieID int) ([]float64, error) {
	var out []float64
	for _, r := range f.ratings {
		if r.MovieID == movieID {
			out = append(out, r.Score)
		}
	}
	return out, nil
}

func (f *fakeStore) WatchedMovieIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	out := make(map[int]struct{})
	for id := range f.watched[userID] {
		out[id] = struct{}{}
	}
	return out, nil
}

func (f *fakeStore) GetMovie(ctx context.Context, movieID int) (*Movie, error) {
	if _, gone := f.missing[movieID]; gone {
		return nil, nil
	}
	for _, m := range f.movies {
		if m.ID == movieID {
			cp := m
			return &cp, nil
		}
	}
	return nil, nil
}

func movieIDs(ms []Movie) []int {
	out := make([]int, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.ID)
	}
	return out
}

func ctxb() context.Context { return context.Background() }

// ====== popularidad / cold start ======

func TestRecommendNewUserRanksByAverage(t *testing.T) {
	store := &fakeStore{
		userIDs: []int{1, 2},
		movies:  []Movie{{ID: 10, Title: "a"}, {ID: 20, Title: "b"}, {ID: 30, Title: "c"}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 2},
			{UserID: 2, MovieID: 10, Score: 2},
			{UserID: 1, MovieID: 20, Score: 5},
			{UserID: 2, MovieID: 20, Score: 4},
			// la 30 no tiene ratings: queda afuera, no puntúa 0
		},
	}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), NewUser(), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if want := []int{20, 10}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendPopularityStable(t *testing.T) {
	store := &fakeStore{
		userIDs: []int{1, 2},
		movies:  []Movie{{ID: 10}, {ID: 20}, {ID: 30}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 3},
			{UserID: 1, MovieID: 20, Score: 3}, // empate con la 10
			{UserID: 2, MovieID: 30, Score: 5},
		},
	}
	e := NewEngine(store)

	a, err := e.Recommend(ctxb(), NewUser(), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	b, err := e.Recommend(ctxb(), NewUser(), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if !reflect.DeepEqual(movieIDs(a), movieIDs(b)) {
		t.Fatalf("ranking inestable: %v vs %v", movieIDs(a), movieIDs(b))
	}
	// empate 10/20 resuelto por orden de listado del store
	if want := []int{30, 10, 20}; !reflect.DeepEqual(movieIDs(a), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(a), want)
	}
}

func TestRecommendUserWithoutRatingsMatchesNewUser(t *testing.T) {
	store := &fakeStore{
		userIDs: []int{1, 2, 3},
		movies:  []Movie{{ID: 10}, {ID: 20}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 4},
			{UserID: 2, MovieID: 20, Score: 5},
		},
	}
	e := NewEngine(store)

	// el usuario 3 existe pero no tiene ratings
	known, err := e.Recommend(ctxb(), KnownUser(3), 5)
	if err != nil {
		t.Fatalf("Recommend(known): %v", err)
	}
	anon, err := e.Recommend(ctxb(), NewUser(), 5)
	if err != nil {
		t.Fatalf("Recommend(new): %v", err)
	}
	if !reflect.DeepEqual(movieIDs(known), movieIDs(anon)) {
		t.Fatalf("sin ratings ≠ usuario nuevo: %v vs %v", movieIDs(known), movieIDs(anon))
	}
}

func TestRecommendSingleRatedMovie(t *testing.T) {
	// una sola película puntuada (4.0 por U1), U2 nuevo sin ratings:
	// recommend(U2, 5) devuelve exactamente [M1]
	store := &fakeStore{
		userIDs: []int{1, 2},
		movies:  []Movie{{ID: 1, Title: "M1"}, {ID: 2, Title: "M2"}},
		ratings: []Rating{{UserID: 1, MovieID: 1, Score: 4}},
	}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), KnownUser(2), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if want := []int{1}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendEmptySystem(t *testing.T) {
	// cero ratings en todo el sistema: lista vacía, sin error
	store := &fakeStore{
		userIDs: []int{1},
		movies:  []Movie{{ID: 10}, {ID: 20}},
	}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), NewUser(), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ids = %v, esperaba vacío", movieIDs(got))
	}
}

// ====== vecindad ======

func neighborhoodStore() *fakeStore {
	// usuario 1 puntuó y vio 10 y 20; sus vecinos puntúan alto
	// otras películas
	return &fakeStore{
		userIDs: []int{1, 2, 3, 4},
		movies:  []Movie{{ID: 10}, {ID: 20}, {ID: 30}, {ID: 40}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 5},
			{UserID: 1, MovieID: 20, Score: 3},

			// vecino idéntico: sim = 1
			{UserID: 2, MovieID: 10, Score: 5},
			{UserID: 2, MovieID: 20, Score: 3},
			{UserID: 2, MovieID: 30, Score: 4},
			{UserID: 2, MovieID: 40, Score: 2},

			// gustos opuestos: sim negativa, no participa
			{UserID: 3, MovieID: 10, Score: 1},
			{UserID: 3, MovieID: 20, Score: 5},
			{UserID: 3, MovieID: 40, Score: 5},

			// otro vecino idéntico que también puntuó la 30
			{UserID: 4, MovieID: 10, Score: 5},
			{UserID: 4, MovieID: 20, Score: 3},
			{UserID: 4, MovieID: 30, Score: 2},
		},
		watched: map[int]map[int]struct{}{
			1: {10: {}, 20: {}},
		},
	}
}

func TestRecommendNeighborhoodScoresAndExcludesWatched(t *testing.T) {
	e := NewEngine(neighborhoodStore())

	got, err := e.Recommend(ctxb(), KnownUser(1), 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	ids := movieIDs(got)

	// 30: aportes 4*1 y 2*1 → promedio 3; 40: aporte 2*1 → 2
	if want := []int{30, 40}; !reflect.DeepEqual(ids, want) {
		t.Fatalf("ids = %v, esperaba %v", ids, want)
	}
	for _, id := range ids {
		if id == 10 || id == 20 {
			t.Fatalf("apareció una película ya vista: %v", ids)
		}
	}
}

func TestRecommendAtMostNNoDuplicates(t *testing.T) {
	e := NewEngine(neighborhoodStore())

	got, err := e.Recommend(ctxb(), KnownUser(1), 1)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) > 1 {
		t.Fatalf("devolvió %d ítems, pedí 1", len(got))
	}

	got, err = e.Recommend(ctxb(), KnownUser(1), 50)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	seen := make(map[int]struct{})
	for _, m := range got {
		if _, dup := seen[m.ID]; dup {
			t.Fatalf("id duplicado %d en %v", m.ID, movieIDs(got))
		}
		seen[m.ID] = struct{}{}
	}
}

func TestRecommendNoPositivePeersFallsBack(t *testing.T) {
	// el único otro usuario tiene gustos opuestos: sin vecinos
	// positivos cae a popularidad
	store := &fakeStore{
		userIDs: []int{1, 2},
		movies:  []Movie{{ID: 10}, {ID: 20}, {ID: 30}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 5},
			{UserID: 1, MovieID: 20, Score: 1},
			{UserID: 2, MovieID: 10, Score: 1},
			{UserID: 2, MovieID: 20, Score: 5},
			{UserID: 2, MovieID: 30, Score: 4},
		},
	}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), KnownUser(1), 5)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// popularidad: 10 y 20 promedian 3, la 30 da 4
	if want := []int{30, 10, 20}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendDropsUnresolvedMovies(t *testing.T) {
	store := neighborhoodStore()
	store.missing = map[int]struct{}{30: {}}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), KnownUser(1), 3)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	// la 30 puntuaba primera pero ya no resuelve: se descarta sin
	// romper el request
	if want := []int{40}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendNonPositiveCountUsesDefault(t *testing.T) {
	store := &fakeStore{
		userIDs: []int{1},
		movies: []Movie{
			{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}, {ID: 7},
		},
		ratings: []Rating{
			{UserID: 1, MovieID: 1, Score: 5},
			{UserID: 1, MovieID: 2, Score: 5},
			{UserID: 1, MovieID: 3, Score: 5},
			{UserID: 1, MovieID: 4, Score: 5},
			{UserID: 1, MovieID: 5, Score: 5},
			{UserID: 1, MovieID: 6, Score: 5},
			{UserID: 1, MovieID: 7, Score: 5},
		},
	}
	e := NewEngine(store)

	got, err := e.Recommend(ctxb(), NewUser(), 0)
	if err != nil {
		t.Fatalf("Recommend: %v", err)
	}
	if len(got) != DefaultN {
		t.Fatalf("len = %d, esperaba el default %d", len(got), DefaultN)
	}
}

// ====== clusters ======

func clusterStore() *fakeStore {
	return &fakeStore{
		userIDs: []int{1, 2, 3},
		movies:  []Movie{{ID: 10}, {ID: 20}, {ID: 30}, {ID: 40}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 5},
			{UserID: 1, MovieID: 20, Score: 4},
			{UserID: 2, MovieID: 10, Score: 5},
			{UserID: 2, MovieID: 30, Score: 2},
			{UserID: 3, MovieID: 30, Score: 1},
			{UserID: 3, MovieID: 40, Score: 2},
		},
	}
}

// splitClusterFn etiqueta la primera mitad como 0 y el resto como 1,
// para que los tests no dependan de dónde caen los centroides.
func splitClusterFn(data [][]float64, k int, seed uint64) []int {
	labels := make([]int, len(data))
	for i := range labels {
		if i >= len(labels)/2 {
			labels[i] = 1
		}
	}
	return labels
}

func TestTrainClampsClusterCount(t *testing.T) {
	e := NewEngine(clusterStore())

	// 3 filas activas: pedir 10 clusters se recorta a rows-1, no falla
	if err := e.Train(ctxb(), 10); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if !e.Trained() {
		t.Fatal("el modelo quedó sin entrenar")
	}
}

func TestTrainInsufficientDataKeepsEngineUntrained(t *testing.T) {
	store := &fakeStore{
		userIDs: []int{1},
		movies:  []Movie{{ID: 10}},
		ratings: []Rating{{UserID: 1, MovieID: 10, Score: 5}},
	}
	e := NewEngine(store)

	err := e.Train(ctxb(), 3)
	if !errors.Is(err, ErrInsufficientData) {
		t.Fatalf("err = %v, esperaba ErrInsufficientData", err)
	}
	if e.Trained() {
		t.Fatal("no debería haber modelo")
	}
}

func TestRecommendByClusterUntrainedFallsBackToPopularity(t *testing.T) {
	// matriz inviable (1 usuario activo): el entrenamiento lazy falla
	// y la estrategia cae a popularidad en vez de romper el request
	store := &fakeStore{
		userIDs: []int{1, 2},
		movies:  []Movie{{ID: 10}, {ID: 20}},
		ratings: []Rating{
			{UserID: 1, MovieID: 10, Score: 5},
			{UserID: 1, MovieID: 20, Score: 2},
		},
	}
	e := NewEngine(store)

	got, err := e.RecommendByCluster(ctxb(), KnownUser(1), 5)
	if err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}
	if want := []int{10, 20}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendByClusterKnownUserExcludesRated(t *testing.T) {
	e := NewEngine(clusterStore()).WithClusterFunc(splitClusterFn)
	if err := e.Train(ctxb(), 2); err != nil {
		t.Fatalf("Train: %v", err)
	}

	// usuario 1 (fila 0 → cluster 0): películas de cluster 0 son
	// 10 y 20, ambas ya puntuadas → completa con las no puntuadas
	// en orden de columna (30, 40)
	got, err := e.RecommendByCluster(ctxb(), KnownUser(1), 5)
	if err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}
	if want := []int{30, 40}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendByClusterCoMembership(t *testing.T) {
	e := NewEngine(clusterStore()).WithClusterFunc(splitClusterFn)
	if err := e.Train(ctxb(), 2); err != nil {
		t.Fatalf("Train: %v", err)
	}

	// usuario 2 (fila 1 → cluster 1): películas de cluster 1 son
	// 30 y 40; la 30 ya está puntuada → queda la 40, y el resto se
	// completa en orden de columna con lo no puntuado (20)
	got, err := e.RecommendByCluster(ctxb(), KnownUser(2), 2)
	if err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}
	if want := []int{40, 20}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestRecommendByClusterNewUserLargestCluster(t *testing.T) {
	// cinco películas: splitClusterFn deja 2 en el cluster 0 y 3 en
	// el 1 → el cluster más grande es el 1
	store := clusterStore()
	store.movies = append(store.movies, Movie{ID: 50})
	store.ratings = append(store.ratings, Rating{UserID: 3, MovieID: 50, Score: 3})

	e := NewEngine(store).WithClusterFunc(splitClusterFn)
	if err := e.Train(ctxb(), 2); err != nil {
		t.Fatalf("Train: %v", err)
	}

	got, err := e.RecommendByCluster(ctxb(), NewUser(), 2)
	if err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}
	// primeras N del cluster más grande en orden de columna
	if want := []int{30, 40}; !reflect.DeepEqual(movieIDs(got), want) {
		t.Fatalf("ids = %v, esperaba %v", movieIDs(got), want)
	}
}

func TestLazyTrainingRunsOnce(t *testing.T) {
	calls := 0
	counting := func(data [][]float64, k int, seed uint64) []int {
		calls++
		return splitClusterFn(data, k, seed)
	}

	e := NewEngine(clusterStore()).WithClusterFunc(counting)

	if _, err := e.RecommendByCluster(ctxb(), NewUser(), 3); err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}
	if _, err := e.RecommendByCluster(ctxb(), KnownUser(1), 3); err != nil {
		t.Fatalf("RecommendByCluster: %v", err)
	}

	// un entrenamiento = dos corridas (filas y columnas); el segundo
	// request no debe reentrenar
	if calls != 2 {
		t.Fatalf("clusterFn corrió %d veces, esperaba 2", calls)
	}
}

func TestTrainReplacesModel(t *testing.T) {
	calls := 0
	counting := func(data [][]float64, k int, seed uint64) []int {
		calls++
		return splitClusterFn(data, k, seed)
	}

	e := NewEngine(clusterStore()).WithClusterFunc(counting)
	if err := e.Train(ctxb(), 2); err != nil {
		t.Fatalf("Train: %v", err)
	}
	if err := e.Train(ctxb(), 2); err != nil {
		t.Fatalf("Train: %v", err)
	}
	// dos retrains explícitos = cuatro corridas; el modelo se
	// reconstruye entero cada vez
	if calls != 4 {
		t.Fatalf("clusterFn corrió %d veces, esperaba 4", calls)
	}
}
