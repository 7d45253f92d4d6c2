// path: cmd/server/main.go
package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chess_arbiter/internal/api"
	"chess_arbiter/internal/config"
	"chess_arbiter/internal/game"
)

func main() {
	cfg, err := config.InitConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := buildLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	g := game.NewGame(logger.Named("game"))
	server := api.NewServer(g, logger.Named("api"))

	addr := cfg.ServerAddr()
	logger.Info("listening", zap.String("addr", addr))
	if err := server.Router().Run(addr); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func buildLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
