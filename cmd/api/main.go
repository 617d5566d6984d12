package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "github.com/OlianaSteffenella/HCI-521-Reel-Ratings/docs" // swagger docs

	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/cache"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/config"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/db"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/handler"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/repository"
	"github.com/OlianaSteffenella/HCI-521-Reel-Ratings/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Reel Ratings API
// @version 1.0
// @description Backend de ratings y tags de movies (Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// índices únicos sobre las claves de identidad de ratings/tags
	idxCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := db.EnsureIndexes(idxCtx); err != nil {
		log.Fatalf("[mongo] error creando índices: %v", err)
	}
	cancel()

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	tagRepo := repository.NewTagRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieSvc)
	tagSvc := service.NewTagService(tagRepo, movieSvc)
	maintSvc := service.NewMaintenanceService(movieRepo, ratingRepo, tagRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	tagH := handler.NewTagHandler(tagSvc)
	maintH := handler.NewMaintenanceHandler(maintSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	r.Get("/movies/{movieId}", movieH.GetMovie)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Ratings ----
		r.Route("/rating", func(r chi.Router) {
			r.Post("/create", ratingH.PostRating)
			r.Get("/mostPopular/{movieId}", ratingH.GetMostPopular)
			r.Get("/categoryAverages/{movieId}", ratingH.GetCategoryAverages)
			r.Get("/byMovie/{movieId}", ratingH.GetByMovie)
			r.Get("/byName/{ratingName}", ratingH.GetByName)
			r.Get("/byNameAndUpperbound/{ratingName}/{upperbound}", ratingH.GetByNameAndUpperbound)
			r.Get("/byUpperbound/{upperbound}", ratingH.GetByUpperbound)
		})

		// ---- Tags ----
		r.Route("/tag", func(r chi.Router) {
			r.Post("/create", tagH.PostTag)
			r.Post("/upvote", tagH.PostUpvote)
			r.Post("/downvote", tagH.PostDownvote)
			r.Get("/state/{movieId}/{tagName}", tagH.GetState)
			r.Get("/scores/{movieId}", tagH.GetScores)
			r.Get("/byMovie/{movieId}", tagH.GetByMovie)
			r.Get("/byName/{tagName}", tagH.GetByName)
			r.Get("/byUser/{username}", tagH.GetByUser)

			// WebSocket con snapshots periódicos del modal
			r.Get("/ws/scores/{movieId}", tagH.GetScoresWS)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Post("/admin/movies", movieH.CreateMovie)
			r.Post("/admin/maintenance/rebuild-name-lists", maintH.PostRebuildNameLists)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
