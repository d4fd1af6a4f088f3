package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"career-accelerator/internal/logger"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

const migrationsTable = "schema_migrations"

// Migrator applies numbered *.up.sql files in order and records each applied
// version in schema_migrations. Files are read through a golang-migrate source
// driver; statements inside a file are separated by ";".
type Migrator struct {
	db   *sqlx.DB
	fsys fs.FS
	dir  string
}

// NewMigrator uses the migrations embedded in the binary.
func NewMigrator(db *sqlx.DB) *Migrator {
	return &Migrator{db: db, fsys: migrationFS, dir: "migrations"}
}

// NewMigratorFS reads migrations from dir inside fsys.
func NewMigratorFS(db *sqlx.DB, fsys fs.FS, dir string) *Migrator {
	return &Migrator{db: db, fsys: fsys, dir: dir}
}

// Up applies every migration newer than the highest recorded version and
// returns how many were applied.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	log := logger.Get()

	src, err := iofs.New(m.fsys, m.dir)
	if err != nil {
		return 0, fmt.Errorf("could not open migrations: %w", err)
	}
	defer src.Close()

	if err := m.ensureVersionTable(ctx); err != nil {
		return 0, err
	}
	current, err := m.currentVersion(ctx)
	if err != nil {
		return 0, err
	}

	applied := 0
	version, err := src.First()
	for err == nil {
		if version > current {
			if applyErr := m.apply(ctx, src, version); applyErr != nil {
				return applied, applyErr
			}
			applied++
		}
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return applied, fmt.Errorf("could not list migrations: %w", err)
	}

	log.Info("Migrations completed", zap.Int("applied", applied), zap.Uint("previous_version", current))
	return applied, nil
}

func (m *Migrator) apply(ctx context.Context, src source.Driver, version uint) error {
	r, identifier, err := src.ReadUp(version)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}
	body, err := io.ReadAll(r)
	r.Close()
	if err != nil {
		return fmt.Errorf("could not read migration %d: %w", version, err)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %d: %w", version, err)
	}
	for _, stmt := range SplitStatements(string(body)) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback()
			return fmt.Errorf("could not execute migration %d_%s: %w", version, identifier, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO `+migrationsTable+` (version, applied_at) VALUES (:1, :2)`,
		int64(version), time.Now(),
	); err != nil {
		tx.Rollback()
		return fmt.Errorf("could not record migration %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit migration %d: %w", version, err)
	}

	logger.Get().Info("Executed migration", zap.Uint("version", version), zap.String("name", identifier))
	return nil
}

func (m *Migrator) ensureVersionTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM user_tables WHERE table_name = :1`, strings.ToUpper(migrationsTable),
	); err != nil {
		return fmt.Errorf("could not check %s: %w", migrationsTable, err)
	}
	if count > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx,
		`CREATE TABLE `+migrationsTable+` (version NUMBER(19) PRIMARY KEY, applied_at TIMESTAMP NOT NULL)`,
	); err != nil {
		return fmt.Errorf("could not create %s: %w", migrationsTable, err)
	}
	return nil
}

func (m *Migrator) currentVersion(ctx context.Context) (uint, error) {
	var version int64
	if err := m.db.GetContext(ctx, &version,
		`SELECT COALESCE(MAX(version), 0) FROM `+migrationsTable,
	); err != nil {
		return 0, fmt.Errorf("could not read migration version: %w", err)
	}
	return uint(version), nil
}

// SplitStatements splits a migration body on ";" and drops blank statements and
// "--" comment lines. Oracle rejects a trailing ";" on a single statement.
func SplitStatements(body string) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		lines = append(lines, line)
	}

	var stmts []string
	for _, part := range strings.Split(strings.Join(lines, "\n"), ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
