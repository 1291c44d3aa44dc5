package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/cache"
	"github.com/HilalAksungur/movie-recommender/internal/models"
	"github.com/HilalAksungur/movie-recommender/internal/recommender"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
)

const (
	DefaultK = 5
	MaxK     = 50 // por seguridad, no deja pedir 1000 ítems

	StrategyKNN     = "knn"
	StrategyCluster = "cluster"
)

type RecommendService struct {
	engine  *recommender.Engine
	users   *repository.UserRepository
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	engine *recommender.Engine,
	users *repository.UserRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		engine:  engine,
		users:   users,
		recRepo: recRepo,
	}
}

// ErrUserNotFound se traduce a 404 en el handler; adentro del motor
// un usuario sin historial y uno inexistente degradan igual, pero en
// el borde del servicio sí distinguimos.
var ErrUserNotFound = fmt.Errorf("usuario no encontrado")

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID   int
	NewUser  bool
	K        int
	Strategy string // knn (default) | cluster
	Refresh  bool
}

func cacheKey(req RecRequest) string {
	// Cachea por usuario + k + estrategia (refresh solo decide si
	// usar el cache, no entra en la key)
	if req.NewUser {
		return fmt.Sprintf("rec:new:k:%d:s:%s", req.K, req.Strategy)
	}
	return fmt.Sprintf("rec:user:%d:k:%d:s:%s", req.UserID, req.K, req.Strategy)
}

// Recommend valida el pedido, resuelve la estrategia contra el motor
// y mantiene cache Redis + historial en Mongo alrededor.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) ([]models.RecMovie, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}
	if req.Strategy == "" {
		req.Strategy = StrategyKNN
	}

	// un id que no existe es 404 en el borde del servicio
	if !req.NewUser {
		u, err := s.users.FindByID(ctx, req.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, ErrUserNotFound
		}
	}

	// 1) Cache Redis (solo si refresh = false)
	var cached []models.RecMovie
	if !req.Refresh {
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return cached, nil
		}
	}

	// 2) Motor
	sel := recommender.NewUser()
	if !req.NewUser {
		sel = recommender.KnownUser(req.UserID)
	}

	var (
		recs []recommender.Movie
		err  error
	)
	switch req.Strategy {
	case StrategyCluster:
		recs, err = s.engine.RecommendByCluster(ctx, sel, req.K)
	case StrategyKNN:
		recs, err = s.engine.Recommend(ctx, sel, req.K)
	default:
		return nil, fmt.Errorf("estrategia desconocida: %q", req.Strategy)
	}
	if err != nil {
		return nil, err
	}

	items := make([]models.RecMovie, 0, len(recs))
	for _, m := range recs {
		items = append(items, models.RecMovie{
			MovieID: m.ID,
			Title:   m.Title,
			Genres:  m.Genres,
		})
	}

	// 3) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			Strategy:  req.Strategy,
			K:         req.K,
			Items:     items,
			CreatedAt: time.Now(),
		}
		if !req.NewUser {
			uid := req.UserID
			hist.UserID = &uid
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 4) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), items, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return items, nil
}

// ====== Retrain explícito ======

// Train reentrena el modelo de clusters y tira el cache de
// recomendaciones viejo. Datos insuficientes se reportan tal cual al
// caller (el modelo previo queda como estaba).
func (s *RecommendService) Train(ctx context.Context, k int) error {
	if err := s.engine.Train(ctx, k); err != nil {
		return err
	}
	if err := cache.InvalidateRecommendations(ctx); err != nil {
		log.Printf("error invalidando cache de recomendaciones: %v", err)
	}
	return nil
}

// History lista las recomendaciones servidas a un usuario.
func (s *RecommendService) History(ctx context.Context, userID int, limit int64) ([]models.Recommendation, error) {
	return s.recRepo.FindByUser(ctx, userID, limit)
}
