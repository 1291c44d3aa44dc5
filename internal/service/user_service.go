package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/models"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
)

type UserService struct {
	users   *repository.UserRepository
	watched *repository.WatchedRepository
	movies  *repository.MovieRepository
}

func NewUserService(
	u *repository.UserRepository,
	w *repository.WatchedRepository,
	m *repository.MovieRepository,
) *UserService {
	return &UserService{users: u, watched: w, movies: m}
}

// Create da de alta un usuario con username único.
func (s *UserService) Create(ctx context.Context, username string) (*models.UserDoc, error) {
	if username == "" {
		return nil, fmt.Errorf("username requerido")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("username ya registrado")
	}

	nextID, err := s.users.GetNextUserID(ctx)
	if err != nil {
		return nil, err
	}

	u := &models.UserDoc{
		UserID:    nextID,
		Username:  username,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByID(ctx context.Context, userID int) (*models.UserDoc, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]models.UserDoc, error) {
	return s.users.List(ctx, limit, offset)
}

// MarkWatched registra un evento de visualización; valida que la
// película exista para no acumular vistas huérfanas.
func (s *UserService) MarkWatched(ctx context.Context, userID, movieID int) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	m, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("movie %d no encontrada", movieID)
	}

	return s.watched.MarkWatched(ctx, userID, movieID)
}

func (s *UserService) WatchedMovies(ctx context.Context, userID int) ([]models.WatchedDoc, error) {
	return s.watched.GetByUser(ctx, userID)
}
