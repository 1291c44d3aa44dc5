package recommender

import (
	"context"
	"log"
	"sync"
)

const (
	// DefaultN es la cantidad de recomendaciones si el caller no pide
	// otra cosa (o pide una cantidad no positiva).
	DefaultN = 5
	// DefaultClusters es el k del modelo de clusters.
	DefaultClusters = 3
	// clusterSeed fija la semilla del k-means para que entrenar dos
	// veces con los mismos datos dé el mismo modelo.
	clusterSeed = 42
)

// UserSelector distingue "usuario conocido" de "usuario nuevo" sin
// mezclar un valor centinela con los ids numéricos.
type UserSelector struct {
	known bool
	id    int
}

// KnownUser selecciona un usuario existente por id.
func KnownUser(id int) UserSelector { return UserSelector{known: true, id: id} }

// NewUser selecciona el caso cold-start (sin historial).
func NewUser() UserSelector { return UserSelector{} }

// Known devuelve el id y si el selector apunta a un usuario conocido.
func (s UserSelector) Known() (int, bool) { return s.id, s.known }

// Engine es el punto de entrada del recomendador. Mantiene el modelo
// de clusters como estado cacheado a nivel proceso: se entrena lazy
// en el primer uso de la estrategia por cluster (una sola vez, bajo
// mutex) o explícitamente vía Train, que reemplaza el modelo entero
// de forma atómica. El modelo publicado nunca se muta.
type Engine struct {
	store     Store
	clusterFn ClusterFunc
	seed      uint64
	defaultK  int

	mu    sync.Mutex
	model *model
}

// NewEngine crea un motor sobre un Store. El particionado es k-means
// propio con semilla fija; se puede reemplazar con WithClusterFunc.
func NewEngine(store Store) *Engine {
	return &Engine{
		store:     store,
		clusterFn: KMeans,
		seed:      clusterSeed,
		defaultK:  DefaultClusters,
	}
}

// WithClusterFunc cambia el algoritmo de particionado (tests,
// experimentos). Devuelve el mismo motor para encadenar.
func (e *Engine) WithClusterFunc(fn ClusterFunc) *Engine {
	e.clusterFn = fn
	return e
}

// WithDefaultClusters cambia el k usado cuando Train recibe k<=0 y en
// el entrenamiento lazy. Valores no positivos se ignoran.
func (e *Engine) WithDefaultClusters(k int) *Engine {
	if k > 0 {
		e.defaultK = k
	}
	return e
}

// Trained informa si hay un modelo de clusters publicado.
func (e *Engine) Trained() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.model != nil
}

// Train (re)entrena el modelo de clusters con k grupos. Si los datos
// no alcanzan devuelve ErrInsufficientData y deja el modelo anterior
// (si había) intacto. Idempotente para los mismos datos y k.
func (e *Engine) Train(ctx context.Context, k int) error {
	if k <= 0 {
		k = e.defaultK
	}
	m, err := e.buildModel(ctx, k)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.model = m
	e.mu.Unlock()
	return nil
}

// Recommend es la operación principal: elige estrategia según el
// historial y garantiza una respuesta (posiblemente vacía), nunca un
// error por "no hay nada que recomendar".
//
//	usuario nuevo            → popularidad
//	conocido sin ratings     → popularidad
//	conocido con ratings     → vecindad (con fallback a popularidad)
//
// La estrategia por cluster no se elige sola: es el punto de entrada
// alternativo RecommendByCluster.
func (e *Engine) Recommend(ctx context.Context, sel UserSelector, n int) ([]Movie, error) {
	n = clampN(n)

	userID, known := sel.Known()
	if !known {
		return e.popularMovies(ctx, n)
	}

	ratings, err := e.store.RatingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ratings) == 0 {
		// sin historial se degrada igual que un usuario nuevo
		return e.popularMovies(ctx, n)
	}

	ids, err := e.neighborhoodRank(ctx, userID, ratings, n)
	if err != nil {
		return nil, err
	}
	return e.resolveMovies(ctx, ids)
}

// RecommendByCluster sirve por co-membresía de clusters. Entrena
// lazy si hace falta; si ni así hay modelo (datos insuficientes),
// cae a popularidad en vez de fallar el request.
func (e *Engine) RecommendByCluster(ctx context.Context, sel UserSelector, n int) ([]Movie, error) {
	n = clampN(n)

	m := e.lazyModel(ctx)
	if m == nil {
		return e.popularMovies(ctx, n)
	}

	userID, known := sel.Known()
	if !known {
		return e.resolveMovies(ctx, m.clusterRankNew(n))
	}

	ratings, err := e.store.RatingsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	row := m.matrix.UserRow(userID)
	if len(ratings) == 0 || row < 0 {
		// usuario sin ratings o fuera de la matriz activa: mismo
		// tratamiento que un usuario nuevo
		return e.resolveMovies(ctx, m.clusterRankNew(n))
	}

	return e.resolveMovies(ctx, m.clusterRankKnown(row, ratingsToMap(ratings), n))
}

// lazyModel devuelve el modelo publicado, entrenando una única vez
// bajo el mutex si todavía no existe. Un entrenamiento fallido por
// datos insuficientes deja el motor sin modelo y no se propaga.
func (e *Engine) lazyModel(ctx context.Context) *model {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.model != nil {
		return e.model
	}

	m, err := e.buildModel(ctx, e.defaultK)
	if err != nil {
		log.Printf("[recommender] entrenamiento lazy falló: %v", err)
		return nil
	}
	e.model = m
	return m
}

// popularMovies corre el fallback de popularidad y resuelve ids.
func (e *Engine) popularMovies(ctx context.Context, n int) ([]Movie, error) {
	ids, err := e.popularityRank(ctx, n)
	if err != nil {
		return nil, err
	}
	return e.resolveMovies(ctx, ids)
}

// resolveMovies convierte ids en fichas. Un id que ya no resuelve
// (película borrada entre medio) se descarta en silencio, no tumba
// el request.
func (e *Engine) resolveMovies(ctx context.Context, ids []int) ([]Movie, error) {
	out := make([]Movie, 0, len(ids))
	for _, id := range ids {
		m, err := e.store.GetMovie(ctx, id)
		if err != nil {
			return nil, err
		}
		if m == nil {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func clampN(n int) int {
	if n <= 0 {
		return DefaultN
	}
	return n
}
