package database

import (
	"context"
	"fmt"
	"time"

	"career-accelerator/internal/config"
	"career-accelerator/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/sijms/go-ora/v2" // Oracle driver, registers "oracle"
	"go.uber.org/zap"
)

const (
	DriverGoOra  = "oracle"
	DriverGodror = "godror"

	pingTimeout = 5 * time.Second
)

// DriverAndDSN picks the registered driver name and matching DSN for cfg.DB.Driver.
// Anything other than "godror" uses the pure-Go go-ora driver.
func DriverAndDSN(cfg *config.Config) (string, string, error) {
	switch cfg.DB.Driver {
	case DriverGodror:
		if !godrorAvailable {
			return "", "", fmt.Errorf("db.driver=godror requires a cgo-enabled build")
		}
		return DriverGodror, cfg.GetGodrorDSN(), nil
	case "", DriverGoOra, "go-ora":
		return DriverGoOra, cfg.GetDSN(), nil
	default:
		return "", "", fmt.Errorf("unsupported db.driver %q", cfg.DB.Driver)
	}
}

// NewSQLXOracleDB opens and pings the Oracle database described by cfg.
func NewSQLXOracleDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	driverName, dsn, err := DriverAndDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open Oracle database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Oracle database: %w", err)
	}

	logger.Get().Info("Successfully connected to Oracle database",
		zap.String("driver", driverName),
		zap.String("host", cfg.DB.Host),
		zap.Int("port", cfg.DB.Port),
	)
	return db, nil
}
