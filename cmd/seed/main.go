// Comando seed: carga un dataset de ejemplo en Mongo (usuarios,
// películas, ratings y vistas) para probar el recomendador en local.
// Determinista para una misma semilla (-seed).
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"time"

	"github.com/HilalAksungur/movie-recommender/internal/config"
	"github.com/HilalAksungur/movie-recommender/internal/db"
	"github.com/HilalAksungur/movie-recommender/internal/models"
	"github.com/HilalAksungur/movie-recommender/internal/repository"
)

type seedMovie struct {
	title string
	genre string
}

var catalog = []seedMovie{
	// Sci-Fi
	{"The Matrix", "Sci-Fi"},
	{"Inception", "Sci-Fi"},
	{"Interstellar", "Sci-Fi"},
	{"Star Wars: A New Hope", "Sci-Fi"},
	{"Blade Runner", "Sci-Fi"},
	{"The Terminator", "Sci-Fi"},
	{"Avatar", "Sci-Fi"},
	{"Dune", "Sci-Fi"},
	{"The Fifth Element", "Sci-Fi"},
	{"District 9", "Sci-Fi"},

	// Action
	{"The Dark Knight", "Action"},
	{"Die Hard", "Action"},
	{"Mad Max: Fury Road", "Action"},
	{"John Wick", "Action"},
	{"The Avengers", "Action"},
	{"Mission: Impossible", "Action"},
	{"The Bourne Identity", "Action"},
	{"Gladiator", "Action"},
	{"Kill Bill", "Action"},
	{"The Raid", "Action"},

	// Drama
	{"The Shawshank Redemption", "Drama"},
	{"The Godfather", "Drama"},
	{"Forrest Gump", "Drama"},
	{"Pulp Fiction", "Drama"},
	{"Schindler's List", "Drama"},
	{"Fight Club", "Drama"},
	{"Goodfellas", "Drama"},
	{"The Green Mile", "Drama"},
	{"The Departed", "Drama"},
	{"American Beauty", "Drama"},

	// Horror
	{"The Shining", "Horror"},
	{"The Exorcist", "Horror"},
	{"Get Out", "Horror"},
	{"Hereditary", "Horror"},
	{"A Quiet Place", "Horror"},
	{"The Conjuring", "Horror"},
	{"It", "Horror"},
	{"The Babadook", "Horror"},
	{"Sinister", "Horror"},
	{"Insidious", "Horror"},

	// Comedy
	{"The Hangover", "Comedy"},
	{"Superbad", "Comedy"},
	{"Bridesmaids", "Comedy"},
	{"Anchorman", "Comedy"},
	{"Step Brothers", "Comedy"},
	{"The Grand Budapest Hotel", "Comedy"},
	{"Airplane!", "Comedy"},
	{"Monty Python and the Holy Grail", "Comedy"},
	{"The Big Lebowski", "Comedy"},
	{"Groundhog Day", "Comedy"},

	// Romance
	{"Titanic", "Romance"},
	{"The Notebook", "Romance"},
	{"Pride and Prejudice", "Romance"},
	{"La La Land", "Romance"},
	{"Before Sunrise", "Romance"},
	{"Eternal Sunshine of the Spotless Mind", "Romance"},
	{"500 Days of Summer", "Romance"},
	{"The Fault in Our Stars", "Romance"},
	{"Crazy, Stupid, Love", "Romance"},
	{"About Time", "Romance"},

	// Thriller
	{"Se7en", "Thriller"},
	{"The Silence of the Lambs", "Thriller"},
	{"Gone Girl", "Thriller"},
	{"Shutter Island", "Thriller"},
	{"The Sixth Sense", "Thriller"},
	{"Memento", "Thriller"},
	{"Zodiac", "Thriller"},
	{"The Girl with the Dragon Tattoo", "Thriller"},
	{"Prisoners", "Thriller"},
	{"The Prestige", "Thriller"},
}

func main() {
	var (
		numUsers = flag.Int("users", 50, "cantidad de usuarios a generar")
		seed     = flag.Uint64("seed", 7, "semilla del generador")
	)
	flag.Parse()

	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	rng := rand.New(rand.NewPCG(*seed, *seed))

	users := repository.NewUserRepository()
	movies := repository.NewMovieRepository()
	ratings := repository.NewRatingRepository()
	watched := repository.NewWatchedRepository()

	now := time.Now().UTC().Format(time.RFC3339)

	// películas
	for i, sm := range catalog {
		m := &models.MovieDoc{
			MovieID:   i + 1,
			Title:     sm.title,
			Genres:    []string{sm.genre},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := movies.Insert(ctx, m); err != nil {
			log.Fatalf("[seed] insertando película %q: %v", sm.title, err)
		}
	}
	log.Printf("[seed] %d películas insertadas", len(catalog))

	// usuarios
	for i := 1; i <= *numUsers; i++ {
		u := &models.UserDoc{
			UserID:    i,
			Username:  fmt.Sprintf("user%d", i),
			CreatedAt: now,
		}
		if err := users.Insert(ctx, u); err != nil {
			log.Fatalf("[seed] insertando usuario %d: %v", i, err)
		}
	}
	log.Printf("[seed] %d usuarios insertados", *numUsers)

	// ratings + vistas: cada usuario tiene un género preferido y
	// puntúa 5-10 películas, sesgado hacia su género (mejores notas
	// ahí); puntuar implica haber visto
	genres := make([]string, 0, len(catalog)/10)
	byGenre := make(map[string][]int) // género → movieIDs
	for i, sm := range catalog {
		if _, ok := byGenre[sm.genre]; !ok {
			genres = append(genres, sm.genre)
		}
		byGenre[sm.genre] = append(byGenre[sm.genre], i+1)
	}

	totalRatings := 0
	for userID := 1; userID <= *numUsers; userID++ {
		preferred := genres[rng.IntN(len(genres))]

		n := 5 + rng.IntN(6)
		rated := make(map[int]struct{}, n)
		for len(rated) < n {
			var movieID int
			var score float64
			if rng.Float64() < 0.7 {
				ids := byGenre[preferred]
				movieID = ids[rng.IntN(len(ids))]
				score = 3.5 + rng.Float64()*1.5
			} else {
				movieID = 1 + rng.IntN(len(catalog))
				score = 1.0 + rng.Float64()*4.0
			}
			if _, dup := rated[movieID]; dup {
				continue
			}
			rated[movieID] = struct{}{}

			if err := ratings.UpsertRating(ctx, userID, movieID, score); err != nil {
				log.Fatalf("[seed] insertando rating: %v", err)
			}
			if err := watched.MarkWatched(ctx, userID, movieID); err != nil {
				log.Fatalf("[seed] insertando vista: %v", err)
			}
			totalRatings++
		}
	}

	// el usuario 1 además vio algunas películas sin puntuarlas (para
	// que el set de exclusión por vistas difiera del de ratings)
	for _, idx := range rng.Perm(len(catalog))[:8] {
		if err := watched.MarkWatched(ctx, 1, idx+1); err != nil {
			log.Fatalf("[seed] insertando vista extra: %v", err)
		}
	}

	// recalcular stats por película (el alta por API lo hace
	// incremental; acá lo hacemos de una al final)
	for i := range catalog {
		movieID := i + 1
		scores, err := ratings.GetByMovie(ctx, movieID)
		if err != nil {
			log.Fatalf("[seed] leyendo ratings de %d: %v", movieID, err)
		}
		if len(scores) == 0 {
			continue
		}
		var sum float64
		for _, s := range scores {
			sum += s
		}
		m, err := movies.GetByID(ctx, movieID)
		if err != nil || m == nil {
			log.Fatalf("[seed] releyendo película %d: %v", movieID, err)
		}
		m.RatingStats = &models.RatingStats{
			Average:     sum / float64(len(scores)),
			Count:       len(scores),
			LastRatedAt: now,
		}
		if err := movies.Update(ctx, m); err != nil {
			log.Fatalf("[seed] actualizando stats de %d: %v", movieID, err)
		}
	}

	log.Printf("[seed] %d ratings insertados. Listo.", totalRatings)
}
