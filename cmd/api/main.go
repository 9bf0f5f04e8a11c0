package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/thefaderoom/faderoom-api/internal/config"
	dbpkg "github.com/thefaderoom/faderoom-api/internal/db"
	"github.com/thefaderoom/faderoom-api/internal/routes"
)

func main() {

	_ = godotenv.Load()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := config.Load()

	db := dbpkg.NewDB(cfg)
	if err := dbpkg.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	dbpkg.Seed(db)

	rdb := dbpkg.NewRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
