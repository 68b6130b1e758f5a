// The sweeper periodically deletes declined friend requests that have
// outlived their retention window.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"chatcore/internal/di"
)

func main() {
	_ = godotenv.Load()

	app, cleanup, err := di.InitializeApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer cleanup()

	logger := app.Logger
	interval := time.Duration(app.Config.Sweeper.IntervalMinutes) * time.Minute
	expiryDays := app.Config.Sweeper.ExpiryDays
	logger.Infow("starting sweeper", "interval", interval, "expiry_days", expiryDays)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sweep := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		removed, err := app.Contacts.DeleteExpired(ctx, expiryDays)
		if err != nil {
			logger.Errorw("sweep failed", "error", err)
			return
		}
		logger.Infow("sweep completed", "removed", removed)
	}

	sweep()
	for {
		select {
		case <-ticker.C:
			sweep()
		case <-quit:
			logger.Infow("sweeper stopped")
			return
		}
	}
}
