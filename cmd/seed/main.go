// Seed llena la base con movies y actividad de demo para poder probar el
// front y los agregados sin cargar datos a mano. Se puede correr las veces
// que haga falta: los movies se insertan una sola vez (se busca por título) y
// los writes de ratings/tags son upserts.
package main

import (
	"context"
	"log"
	"time"

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/config"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/db"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/models"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/repository"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"
)

type seedMovie struct {
	title    string
	director string
	release  string
	summary  string
}

var seedMovies = []seedMovie{
	{"The Thing", "John Carpenter", "1982-06-25", "Una base antártica encuentra algo que no debería descongelarse."},
	{"Blade Runner", "Ridley Scott", "1982-06-25", "Un blade runner persigue replicantes por Los Ángeles."},
	{"Raiders of the Lost Ark", "Steven Spielberg", "1981-06-12", "Un arqueólogo le gana una carrera al Tercer Reich."},
	{"The Princess Bride", "Rob Reiner", "1987-09-25", "Un cuento con espadachines, gigantes y venganza."},
	{"Alien", "Ridley Scott", "1979-05-25", "En el espacio nadie puede oír tus gritos."},
	{"Jaws", "Steven Spielberg", "1975-06-20", "Van a necesitar un bote más grande."},
}

type seedRating struct {
	movie      string
	name       string
	value      int
	upperbound int
	subtype    string
	username   string
}

var seedRatings = []seedRating{
	{"The Thing", "Stickiness", 9, 10, "scale", "sierra"},
	{"The Thing", "Stickiness", 7, 10, "scale", "marco"},
	{"The Thing", "Stickiness", 10, 10, "scale", "petra"},
	{"The Thing", "Rewatchable", 1, 1, "yes-no", "sierra"},
	{"Blade Runner", "How Harrison Ford is it", 5, 5, "scale", "marco"},
	{"Blade Runner", "How Harrison Ford is it", 4, 5, "scale", "petra"},
	{"Blade Runner", "Pacing", 6, 10, "scale", "sierra"},
	{"Raiders of the Lost Ark", "How Harrison Ford is it", 5, 5, "scale", "sierra"},
	{"Jaws", "Scariness", 8, 10, "scale", "petra"},
}

type seedTag struct {
	movie    string
	tag      string
	username string
	downvote bool
}

var seedTags = []seedTag{
	{"The Thing", "body horror", "sierra", false},
	{"The Thing", "body horror", "marco", false},
	{"The Thing", "slow burn", "petra", true},
	{"Blade Runner", "rainy", "sierra", false},
	{"Blade Runner", "slow burn", "marco", false},
	{"Jaws", "beach movie", "petra", false},
	{"Jaws", "beach movie", "marco", true},
}

func main() {
	cfg := config.Load()
	db.InitMongo(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := db.EnsureIndexes(ctx); err != nil {
		log.Fatalf("[seed] error creando índices: %v", err)
	}

	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	tagRepo := repository.NewTagRepository()

	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieSvc)
	tagSvc := service.NewTagService(tagRepo, movieSvc)

	// usuarios demo (password = username, esto es solo para desarrollo)
	for _, u := range []string{"sierra", "marco", "petra"} {
		if _, err := authSvc.Register(ctx, u, u, "user"); err != nil {
			log.Printf("[seed] usuario %s: %v", u, err)
		}
	}
	if _, err := authSvc.Register(ctx, "admin", "admin", "admin"); err != nil {
		log.Printf("[seed] usuario admin: %v", err)
	}

	// movies: insertar solo los que faltan, guardando título -> hexId
	ids := make(map[string]string)
	existing, err := movieRepo.All(ctx)
	if err != nil {
		log.Fatalf("[seed] error listando movies: %v", err)
	}
	for _, m := range existing {
		ids[m.Title] = m.ID.Hex()
	}
	for _, sm := range seedMovies {
		if _, ok := ids[sm.title]; ok {
			continue
		}
		id, err := movieSvc.CreateMovie(ctx, &models.MovieDoc{
			Title:       sm.title,
			Director:    sm.director,
			ReleaseDate: sm.release,
			Summary:     sm.summary,
		})
		if err != nil {
			log.Fatalf("[seed] error insertando %q: %v", sm.title, err)
		}
		ids[sm.title] = id
	}
	log.Printf("[seed] %d movies listos", len(ids))

	for _, sr := range seedRatings {
		outcome, err := ratingSvc.CreateOrUpdate(ctx, service.CreateRatingInput{
			RatingName: sr.name,
			UserRating: sr.value,
			Upperbound: sr.upperbound,
			Subtype:    sr.subtype,
			Username:   sr.username,
			MovieID:    ids[sr.movie],
			Privacy:    "public",
		})
		if err != nil {
			log.Fatalf("[seed] error con rating %q de %s: %v", sr.name, sr.username, err)
		}
		if outcome == service.WriteRejectedRange || outcome == service.WriteRejectedMovie {
			log.Printf("[seed] rating %q de %s descartado (outcome=%d)", sr.name, sr.username, outcome)
		}
	}
	log.Printf("[seed] %d ratings aplicados", len(seedRatings))

	for _, st := range seedTags {
		if st.downvote {
			err = tagSvc.Downvote(ctx, st.username, st.tag, ids[st.movie])
		} else {
			err = tagSvc.Upvote(ctx, st.username, st.tag, ids[st.movie])
		}
		if err != nil {
			log.Fatalf("[seed] error con tag %q de %s: %v", st.tag, st.username, err)
		}
	}
	log.Printf("[seed] %d tags aplicados", len(seedTags))
}
