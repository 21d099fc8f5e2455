package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/acehidan/bingo/config"
	"github.com/acehidan/bingo/domain"
	"github.com/acehidan/bingo/game"
	"github.com/acehidan/bingo/migrations"
	"github.com/acehidan/bingo/storage"
)

type listingReader interface {
	ListListings(ctx context.Context) ([]domain.RoomListing, error)
}

func CreateServer(allowedOrigins []string) *gin.Engine {
	r := gin.New()
	r.GET("/health", func(ctx *gin.Context) { ctx.String(200, "healthy") })

	r.Use(func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		// Non-browser clients send no Origin header.
		if origin == "" || slices.Contains(allowedOrigins, origin) {
			ctx.Next()
			return
		}
		ctx.String(http.StatusForbidden, "forbidden origin")
		ctx.Abort()
	})

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{
			"Content-Type",
			"Upgrade",
			"Connection",
			"Sec-WebSocket-Key",
			"Sec-WebSocket-Version",
			"Sec-WebSocket-Extensions",
			"Sec-WebSocket-Protocol",
		},
	}))

	return r
}

func listGamesHandler(listings listingReader) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if listings == nil {
			ctx.JSON(http.StatusOK, []domain.RoomListing{})
			return
		}
		games, err := listings.ListListings(ctx.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("failed to list games")
			ctx.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "unknown-error"})
			return
		}
		ctx.JSON(http.StatusOK, games)
	}
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	gin.SetMode(cfg.GinMode)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var listings game.ListingStore
	var reader listingReader
	if cfg.PostgresURL != "" {
		if err := migrations.Migrate(cfg.PostgresURL); err != nil {
			log.Fatal().Err(err).Msg("failed to migrate database")
		}
		repo, err := storage.NewPostgresRepo(ctx, cfg.PostgresURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to postgres")
		}
		defer repo.Close()
		listings = repo
		reader = repo
	} else {
		log.Warn().Msg("no postgres url configured, lobby listing disabled")
	}

	store := game.NewRoomStore()
	scheduler := game.NewCallScheduler(game.NewTickerGen())
	hub := game.NewHub(store, scheduler, listings)

	started := make(chan struct{})
	go hub.Run(ctx, started)
	<-started

	r := CreateServer(cfg.AllowedOrigins)
	handler := game.NewHandler(hub)
	r.GET("/ws", handler.ServeWS)
	r.GET("/games", listGamesHandler(reader))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown failed")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("server failed")
	}
}
