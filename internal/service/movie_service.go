package service

import (
	"context"
	"fmt"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/models"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
)

var ErrMovieAlreadyExists = fmt.Errorf("ya existe una película con ese título")

type MovieService struct {
	movies *repository.MovieRepository
}

func NewMovieService(m *repository.MovieRepository) *MovieService {
	return &MovieService{movies: m}
}

func (s *MovieService) GetMovie(ctx context.Context, id int) (*models.MovieDoc, error) {
	return s.movies.GetByID(ctx, id)
}

func (s *MovieService) CreateMovie(ctx context.Context, req *models.MovieCreateRequest) (*models.MovieDoc, error) {
	dup, err := s.movies.Search(ctx, req.Title, "", 1, 0)
	if err != nil {
		return nil, err
	}
	for _, d := range dup {
		if d.Title == req.Title {
			return nil, ErrMovieAlreadyExists
		}
	}

	nextID, err := s.movies.GetNextMovieID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	m := &models.MovieDoc{
		MovieID:   nextID,
		Title:     req.Title,
		Genres:    req.Genres,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.movies.Insert(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MovieService) Search(
	ctx context.Context,
	q, genre string,
	limit, offset int,
) ([]models.MovieDoc, error) {
	return s.movies.Search(ctx, q, genre, limit, offset)
}

func (s *MovieService) Top(ctx context.Context, metric string, limit int) ([]models.MovieDoc, error) {
	return s.movies.Top(ctx, metric, limit)
}
