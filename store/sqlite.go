package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/navs23/fundinsights"
	"github.com/sirupsen/logrus"

	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteBackend keeps the collection in a SQLite database.
type SQLiteBackend struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// OpenSQLite opens (or creates) the database at dbPath and migrates its schema.
func OpenSQLite(dbPath string, log logrus.FieldLogger) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	log.WithField("path", dbPath).Debug("opened report database")
	return &SQLiteBackend{db: db, log: log}, nil
}

// runMigrations applies the embedded migrations on a dedicated connection.
func runMigrations(dbPath string) error {
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

func (b *SQLiteBackend) Load(ctx context.Context) ([]fundinsights.SavedReport, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT name, raw_data FROM reports ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}
	defer rows.Close()

	var reports []fundinsights.SavedReport
	for rows.Next() {
		var rep fundinsights.SavedReport
		if err := rows.Scan(&rep.Name, &rep.RawData); err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reports: %w", err)
	}
	return reports, nil
}

// Store replaces all rows in a single transaction, the collection order is
// kept in the position column.
func (b *SQLiteBackend) Store(ctx context.Context, reports []fundinsights.SavedReport) (err error) {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM reports`); err != nil {
		return fmt.Errorf("clear reports: %w", err)
	}
	for i, rep := range reports {
		if _, err = tx.ExecContext(ctx, `INSERT INTO reports (position, name, raw_data) VALUES (?, ?, ?)`, i, rep.Name, rep.RawData); err != nil {
			return fmt.Errorf("insert report %q: %w", rep.Name, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit reports: %w", err)
	}
	b.log.WithField("reports", len(reports)).Debug("stored report collection")
	return nil
}

func (b *SQLiteBackend) Close() error {
	if b.db != nil {
		return b.db.Close()
	}
	return nil
}
