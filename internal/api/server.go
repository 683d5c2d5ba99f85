package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SaiAmirthesh/Looped-sub000/internal/config"
	"github.com/SaiAmirthesh/Looped-sub000/internal/database"
	"github.com/SaiAmirthesh/Looped-sub000/internal/handler"
	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/services"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API until ctx is canceled, then drains requests and
// background progress writes before closing the store.
func Run(ctx context.Context, cfg *config.Config) error {
	logger.SetDebug(cfg.LogDebug)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	st, closeStore, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer closeStore()

	svc := progress.NewService(st, progress.WithLocation(loc))
	defer svc.Wait()

	var avatars services.AvatarUploader
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryService(cfg)
		if err != nil {
			return err
		}
		avatars = cld
	} else {
		logger.Warning("Cloudinary not configured, avatar uploads disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           SetupRouter(handler.New(st, svc, avatars), st),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Success("Server starting on port %s", cfg.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
