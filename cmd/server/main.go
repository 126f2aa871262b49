package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/redisboard/redisboard/internal/auth"
	"github.com/redisboard/redisboard/internal/config"
	"github.com/redisboard/redisboard/internal/dashboard"
	"github.com/redisboard/redisboard/internal/environment"
	"github.com/redisboard/redisboard/internal/handler"
	"github.com/redisboard/redisboard/internal/httpserver"
	"github.com/redisboard/redisboard/internal/logger"
	"github.com/redisboard/redisboard/internal/session"
	"github.com/redisboard/redisboard/internal/storage"
)

type appConfig struct {
	Environment    string        `env:"APP_ENV" envDefault:"development"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

const serviceName = "redisboard"

func main() {
	var (
		appCfg     appConfig
		storeCfg   storage.Config
		sessionCfg session.Config
		authCfg    auth.Config
		serverCfg  httpserver.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&storeCfg)
	config.MustLoad(&sessionCfg)
	config.MustLoad(&authCfg)
	config.MustLoad(&serverCfg)

	env := environment.Parse(appCfg.Environment)

	log := logger.New(logger.WithEnvironment(env, serviceName))
	logger.SetAsDefault(log)

	ctx := context.Background()

	store, err := storage.Connect(ctx, storeCfg)
	if err != nil {
		log.Error("store connection failed", slog.Any("error", err))
		os.Exit(1)
	}
	defer store.Close()

	sessions := session.NewManager(store,
		session.WithTTL(sessionCfg.Duration),
		session.WithLogger(log),
	)
	creds := auth.NewCredentials(authCfg)
	loader := dashboard.NewLoader(store, log)

	h := handler.New(store, creds, sessions, loader,
		handler.WithLogger(log),
		handler.WithEnvironment(env),
		handler.WithCookieName(sessionCfg.CookieName),
		handler.WithRequestTimeout(appCfg.RequestTimeout),
	)

	srv := httpserver.NewFromConfig(serverCfg, httpserver.WithLogger(log))
	if err := srv.Run(ctx, h.Router()); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
