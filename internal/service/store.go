package service

import (
	"context"

	"github.com/HilalAksungur/movie-recommender/internal/recommender"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
)

// mongoStore adapta los repositorios Mongo a la interfaz Store que
// consume el motor. El motor no sabe nada de Mongo.
type mongoStore struct {
	users   *repository.UserRepository
	movies  *repository.MovieRepository
	ratings *repository.RatingRepository
	watched *repository.WatchedRepository
}

func NewStore(
	users *repository.UserRepository,
	movies *repository.MovieRepository,
	ratings *repository.RatingRepository,
	watched *repository.WatchedRepository,
) recommender.Store {
	return &mongoStore{
		users:   users,
		movies:  movies,
		ratings: ratings,
		watched: watched,
	}
}

func (s *mongoStore) ListUserIDs(ctx context.Context) ([]int, error) {
	return s.users.ListIDs(ctx)
}

func (s *mongoStore) ListMovieIDs(ctx context.Context) ([]int, error) {
	return s.movies.ListIDs(ctx)
}

func (s *mongoStore) AllRatings(ctx context.Context) ([]recommender.Rating, error) {
	docs, err := s.ratings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]recommender.Rating, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommender.Rating{UserID: d.UserID, MovieID: d.MovieID, Score: d.Rating})
	}
	return out, nil
}

func (s *mongoStore) RatingsForUser(ctx context.Context, userID int) ([]recommender.Rating, error) {
	docs, err := s.ratings.GetAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]recommender.Rating, 0, len(docs))
	for _, d := range docs {
		out = append(out, recommender.Rating{UserID: d.UserID, MovieID: d.MovieID, Score: d.Rating})
	}
	return out, nil
}

func (s *mongoStore) RatingsForMovie(ctx context.Context, movieID int) ([]float64, error) {
	return s.ratings.GetByMovie(ctx, movieID)
}

func (s *mongoStore) WatchedMovieIDs(ctx context.Context, userID int) (map[int]struct{}, error) {
	return s.watched.MovieIDSet(ctx, userID)
}

func (s *mongoStore) GetMovie(ctx context.Context, movieID int) (*recommender.Movie, error) {
	doc, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return &recommender.Movie{ID: doc.MovieID, Title: doc.Title, Genres: doc.Genres}, nil
}
