package main

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sirupsen/logrus"

	"github.com/shadowbox-gym/shadowbox_api/config"
	"github.com/shadowbox-gym/shadowbox_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal().Err(err).Msg("Error loading .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setLogLevel(cfg.LogLevel)

	ctx, err := context.NewCtx(
		services.NewConfigService(cfg),
		&services.MonitoringService{},
		&services.DatabaseService{},
		&services.RedisService{},
		&services.RateLimitService{},
		&services.JWTService{},
		&services.MinIOService{},
		&services.MediaService{},
		&services.ContentService{},
		&services.AuthService{},
		&services.UserService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure services")
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Service stopped")
		return
	}
}

func setLogLevel(level string) {
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.JSONFormatter{})

	zlvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		zlvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(zlvl)
}
