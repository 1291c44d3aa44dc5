package repository

import (
	"context"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/db"
	"github.com/HilalAksungur/movie-recommender/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RatingRepository struct {
	col *mongo.Collection
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{col: db.DB().Collection("ratings")}
}

func (r *RatingRepository) UpsertRating(ctx context.Context, userID, movieID int, rating float64) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": bson.M{
			"rating": rating,
			// guardamos epoch (int64)
			"timestamp": time.Now().Unix(),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *RatingRepository) GetOne(ctx context.Context, userID, movieID int) (*models.RatingDoc, error) {
	var rd models.RatingDoc
	err := r.col.FindOne(ctx, bson.M{"userId": userID, "movieId": movieID}).Decode(&rd)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	return &rd, err
}

// helpers de casteo seguro (Mongo puede devolver int32/int64/float64
// según cómo se cargó el dato)
func asInt(v any) int {
	switch x := v.(type) {
	case int32:
		return int(x)
	case int64:
		return int(x)
	case float64:
		return int(x)
	default:
		return 0
	}
}

func asInt64(v any) int64 {
	switch x := v.(type) {
	case int32:
		return int64(x)
	case int64:
		return x
	case float64:
		return int64(x)
	default:
		return 0
	}
}

func asFloat64(v any) float64 {
	switch x := v.(type) {
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

func (r *RatingRepository) decodeAll(ctx context.Context, cur *mongo.Cursor) ([]models.RatingDoc, error) {
	defer cur.Close(ctx)

	var out []models.RatingDoc
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, err
		}

		out = append(out, models.RatingDoc{
			UserID:    asInt(raw["userId"]),
			MovieID:   asInt(raw["movieId"]),
			Rating:    asFloat64(raw["rating"]),
			Timestamp: asInt64(raw["timestamp"]),
		})
	}
	return out, cur.Err()
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID, limit, offset int) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().
			SetSort(bson.D{{Key: "movieId", Value: 1}}).
			SetLimit(int64(limit)).
			SetSkip(int64(offset)),
	)
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}

func (r *RatingRepository) GetAllByUser(ctx context.Context, userID int) ([]models.RatingDoc, error) {
	return r.GetByUser(ctx, userID, 10000, 0)
}

// GetByMovie devuelve solo los puntajes de una película (para el
// promedio de popularidad).
func (r *RatingRepository) GetByMovie(ctx context.Context, movieID int) ([]float64, error) {
	cur, err := r.col.Find(ctx, bson.M{"movieId": movieID})
	if err != nil {
		return nil, err
	}
	docs, err := r.decodeAll(ctx, cur)
	if err != nil {
		return nil, err
	}

	out := make([]float64, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Rating)
	}
	return out, nil
}

// GetAll trae todos los ratings del sistema en orden estable
// (userId, movieId): es la entrada de la matriz y de la vecindad.
func (r *RatingRepository) GetAll(ctx context.Context) ([]models.RatingDoc, error) {
	cur, err := r.col.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{
			{Key: "userId", Value: 1},
			{Key: "movieId", Value: 1},
		}),
	)
	if err != nil {
		return nil, err
	}
	return r.decodeAll(ctx, cur)
}
