package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/SaiAmirthesh/Looped-sub000/internal/config"
	"github.com/SaiAmirthesh/Looped-sub000/internal/database"
	"github.com/SaiAmirthesh/Looped-sub000/internal/progress"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store/sqlstore"
)

func loadConfig(flags *storeFlags) (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if flags.driver != "" {
		cfg.DBDriver = strings.ToLower(strings.TrimSpace(flags.driver))
		if cfg.DBDriver != config.DriverPostgres && cfg.DBDriver != config.DriverSQLite {
			return nil, fmt.Errorf("unsupported driver %q", flags.driver)
		}
	}
	if flags.dsn != "" {
		switch cfg.DBDriver {
		case config.DriverSQLite:
			cfg.SQLitePath = flags.dsn
		default:
			cfg.DatabaseURL = flags.dsn
		}
	}
	return cfg, nil
}

func openStore(ctx context.Context, flags *storeFlags) (*sqlstore.Store, *config.Config, func(), error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, nil, nil, err
	}
	st, cleanup, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return st, cfg, cleanup, nil
}

func openService(ctx context.Context, flags *storeFlags) (*progress.Service, func(), error) {
	st, cfg, cleanup, err := openStore(ctx, flags)
	if err != nil {
		return nil, nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	svc := progress.NewService(st, progress.WithLocation(loc))
	return svc, func() {
		svc.Wait()
		cleanup()
	}, nil
}
