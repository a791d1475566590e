package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/config"
	"github.com/iliyamo/artist-directory/internal/database"
	"github.com/iliyamo/artist-directory/internal/handler"
	"github.com/iliyamo/artist-directory/internal/middleware"
	"github.com/iliyamo/artist-directory/internal/queue"
	"github.com/iliyamo/artist-directory/internal/repository"
	"github.com/iliyamo/artist-directory/internal/router"
)

func main() {
	// Load .env when present; real environments set variables directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis powers the response cache and the rate limiter. Both
	// middlewares degrade to pass-through when Redis is unavailable or
	// disabled by config.
	rdb := config.NewRedisClient()
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	artists := repository.NewArtistRepo(db)
	subs := repository.NewSubscriptionRepo(db)
	bookings := repository.NewBookingRepo(db)

	auth := handler.NewAuthHandler(cfg, users, tokens)
	public := &handler.PublicHandler{Artists: artists, Subs: subs}
	booking := handler.NewBookingHandler(cfg, bookings)
	dashboard := handler.NewDashboardHandler(cfg, artists, subs, bookings)
	admin := handler.NewAdminHandler(artists, subs)

	// The booking consumer drains the queue and sends notification
	// emails. It reconnects on its own; a permanent failure only kills
	// the goroutine, never the API.
	go func() {
		if err := queue.StartBookingConsumer(cfg); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, cfg.JWTSecret)
	router.RegisterPublic(e, public, booking, cache, limit)
	router.RegisterArtist(e, dashboard, cfg.JWTSecret)
	router.RegisterAdmin(e, admin, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
