package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"chatcore/internal/common"
	"chatcore/internal/dbmysql"
	"chatcore/internal/di"
)

func main() {
	// Missing .env is fine in production, variables come from the environment.
	_ = godotenv.Load()

	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	logger.Infow("starting chat service", "environment", app.Config.Server.Environment)

	if err := dbmysql.AutoMigrate(app.DB); err != nil {
		logger.Fatalw("database migration failed", "error", err)
	}
	logger.Infow("database migration completed")

	router := mux.NewRouter()
	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(common.AuthMiddleware([]byte(app.Config.Auth.JWTSecret), app.Sessions, logger))
	app.ChatHandler.RegisterRoutes(api)
	app.ContactHandler.RegisterRoutes(api)

	srv := &http.Server{
		Addr:         app.Config.Server.Host + ":" + app.Config.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(app.Config.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infow("chat service listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalw("http server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Infow("shutting down chat service")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("shutdown error", "error", err)
	}
	logger.Infow("chat service stopped")
}
