package database

import (
	"context"
	"fmt"

	"github.com/SaiAmirthesh/Looped-sub000/internal/config"
	"github.com/SaiAmirthesh/Looped-sub000/internal/logger"
	"github.com/SaiAmirthesh/Looped-sub000/internal/store/sqlstore"
)

// Open returns the store for cfg.DBDriver with migrations applied, and a
// function releasing everything it opened.
func Open(ctx context.Context, cfg *config.Config) (*sqlstore.Store, func(), error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		st, err := sqlstore.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		logger.Success("Opened SQLite database %s", cfg.SQLitePath)
		return st, func() { _ = st.Close() }, nil

	case config.DriverPostgres:
		pool, err := ConnectPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		st, err := sqlstore.OpenPostgres(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return st, func() {
			_ = st.Close()
			pool.Close()
		}, nil

	default:
		return nil, nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
