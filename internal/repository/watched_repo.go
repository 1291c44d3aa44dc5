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

type WatchedRepository struct {
	col *mongo.Collection
}

func NewWatchedRepository() *WatchedRepository {
	return &WatchedRepository{col: db.DB().Collection("watched")}
}

// MarkWatched registra (o re-registra) que el usuario vio la
// película; el upsert evita duplicar el evento por vista repetida.
func (r *WatchedRepository) MarkWatched(ctx context.Context, userID, movieID int) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"userId": userID, "movieId": movieID},
		bson.M{"$set": bson.M{
			"watchedAt": time.Now().UTC().Format(time.RFC3339),
		}},
		options.Update().SetUpsert(true),
	)
	return err
}

func (r *WatchedRepository) GetByUser(ctx context.Context, userID int) ([]models.WatchedDoc, error) {
	cur, err := r.col.Find(ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.D{{Key: "movieId", Value: 1}}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.WatchedDoc
	for cur.Next(ctx) {
		var w models.WatchedDoc
		if err := cur.Decode(&w); err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, cur.Err()
}

// MovieIDSet devuelve el set de películas ya vistas por el usuario.
func (r *WatchedRepository) MovieIDSet(ctx context.Context, userID int) (map[int]struct{}, error) {
	docs, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make(map[int]struct{}, len(docs))
	for _, d := range docs {
		out[d.MovieID] = struct{}{}
	}
	return out, nil
}
