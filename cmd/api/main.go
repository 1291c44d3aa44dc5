package main

import (
	"log"
	"net/http"

	_ "github.com/HilalAksungur/movie-recommender/docs" // swagger docs

	"github.com/HilalAksungur/movie-recommender/internal/cache"
	"github.com/HilalAksungur/movie-recommender/internal/config"
	"github.com/HilalAksungur/movie-recommender/internal/db"
	"github.com/HilalAksungur/movie-recommender/internal/handler"
	"github.com/HilalAksungur/movie-recommender/internal/recommender"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
	"github.com/HilalAksungur/movie-recommender/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie Recommender API
// @version 1.0
// @description API de recomendación de películas (vecindad + clusters, Mongo, Redis)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	watchedRepo := repository.NewWatchedRepository()
	recRepo := repository.NewRecommendationRepository()

	// motor de recomendación sobre el adaptador de repos
	store := service.NewStore(userRepo, movieRepo, ratingRepo, watchedRepo)
	engine := recommender.NewEngine(store).WithDefaultClusters(cfg.Clusters)

	// services
	userSvc := service.NewUserService(userRepo, watchedRepo, movieRepo)
	movieSvc := service.NewMovieService(movieRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo)
	recSvc := service.NewRecommendService(engine, userRepo, recRepo)

	// handlers
	userH := handler.NewUserHandler(userSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	recH := handler.NewRecommendHandler(recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// Usuarios
	r.Post("/users", userH.Create)
	r.Get("/users", userH.List)
	r.Route("/users/{id}", func(r chi.Router) {
		r.Get("/", userH.GetByID)

		r.Get("/ratings", ratingH.GetRatings)
		r.Post("/ratings", ratingH.PostRating)

		r.Get("/watched", userH.GetWatched)
		r.Post("/watched", userH.MarkWatched)

		// HTTP normal
		r.Get("/recommendations", recH.GetRecommendations)
		r.Get("/recommendations/history", recH.GetHistory)

		// WebSocket
		r.Get("/ws/recommendations", recH.GetRecommendationsWS)
	})

	// Películas
	r.Post("/movies", movieH.CreateMovie)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}", movieH.GetMovie)

	// Recomendador
	r.Get("/recommendations/new", recH.GetNewUserRecommendations)
	r.Post("/recommender/train", recH.Train)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
