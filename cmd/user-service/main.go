package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"dashboard-services/internal/app"
	"dashboard-services/internal/config"
	"dashboard-services/internal/handler"
	"dashboard-services/internal/service"
	"dashboard-services/internal/store"
)

func main() {
	conf := config.New("3001")
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	users := store.NewUserStore()
	userService := service.NewUserService(logger, users)

	handler.RegisterMetrics()
	userHandler := handler.NewUserHandler(logger, userService)
	healthHandler := handler.NewHealthHandler("user-service")

	app := app.New(logger, "user-service", conf)
	app.SetHTTPHandlers(userHandler, healthHandler)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	app.Start()
	<-ctx.Done()
	app.Stop()
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
