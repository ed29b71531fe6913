package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"

	"quiz-assign/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

const (
	upSuffix   = ".up.sql"
	downSuffix = ".down.sql"

	countMigrationTableQuery = `SELECT COUNT(*) FROM user_tables WHERE table_name = 'SCHEMA_MIGRATIONS'`
	createMigrationTableDDL  = `CREATE TABLE schema_migrations (version VARCHAR2(128) PRIMARY KEY, applied_at TIMESTAMP WITH TIME ZONE NOT NULL)`
	selectAppliedQuery       = `SELECT version FROM schema_migrations ORDER BY version`
	insertAppliedQuery       = `INSERT INTO schema_migrations (version, applied_at) VALUES (:1, :2)`
	deleteAppliedQuery       = `DELETE FROM schema_migrations WHERE version = :1`
)

// Migration is a pair of embedded up/down scripts sharing a version prefix.
type Migration struct {
	Version string
	Up      string
	Down    string
}

// LoadMigrations reads the embedded migrations sorted by version.
func LoadMigrations() ([]Migration, error) {
	return loadMigrations(migrationFiles, "migrations")
}

func loadMigrations(fsys fs.FS, dir string) ([]Migration, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("could not read migrations directory: %w", err)
	}

	byVersion := make(map[string]*Migration)
	for _, entry := range entries {
		name := entry.Name()
		var version string
		var up bool
		switch {
		case strings.HasSuffix(name, upSuffix):
			version, up = strings.TrimSuffix(name, upSuffix), true
		case strings.HasSuffix(name, downSuffix):
			version = strings.TrimSuffix(name, downSuffix)
		default:
			continue
		}

		content, err := fs.ReadFile(fsys, path.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("could not read migration file %s: %w", name, err)
		}
		m, ok := byVersion[version]
		if !ok {
			m = &Migration{Version: version}
			byVersion[version] = m
		}
		if up {
			m.Up = string(content)
		} else {
			m.Down = string(content)
		}
	}

	migrations := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		if m.Up == "" {
			return nil, fmt.Errorf("migration %s has no up script", m.Version)
		}
		migrations = append(migrations, *m)
	}
	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// SplitStatements splits a script on semicolons that end a line. Oracle executes a
// single statement per call and rejects the trailing semicolon.
func SplitStatements(script string) []string {
	var statements []string
	var current strings.Builder
	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		if strings.HasSuffix(trimmed, ";") {
			current.WriteString(strings.TrimSuffix(trimmed, ";"))
			statements = append(statements, current.String())
			current.Reset()
			continue
		}
		current.WriteString(trimmed)
		current.WriteString("\n")
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}

// Migrator applies embedded migrations and records them in schema_migrations.
type Migrator struct {
	db         *sqlx.DB
	migrations []Migration
	now        func() time.Time
}

// NewMigrator creates a Migrator for the embedded migrations.
func NewMigrator(db *sqlx.DB) (*Migrator, error) {
	migrations, err := LoadMigrations()
	if err != nil {
		return nil, err
	}
	return &Migrator{db: db, migrations: migrations, now: time.Now}, nil
}

func (m *Migrator) ensureTable(ctx context.Context) error {
	var count int
	if err := m.db.GetContext(ctx, &count, countMigrationTableQuery); err != nil {
		return fmt.Errorf("could not check schema_migrations table: %w", err)
	}
	if count > 0 {
		return nil
	}
	if _, err := m.db.ExecContext(ctx, createMigrationTableDDL); err != nil {
		return fmt.Errorf("could not create schema_migrations table: %w", err)
	}
	return nil
}

func (m *Migrator) applied(ctx context.Context) (map[string]bool, error) {
	var versions []string
	if err := m.db.SelectContext(ctx, &versions, selectAppliedQuery); err != nil {
		return nil, fmt.Errorf("could not read applied migrations: %w", err)
	}
	out := make(map[string]bool, len(versions))
	for _, v := range versions {
		out[v] = true
	}
	return out, nil
}

func (m *Migrator) exec(ctx context.Context, version, script string) error {
	for _, stmt := range SplitStatements(script) {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("could not execute migration %s: %w", version, err)
		}
	}
	return nil
}

// Up applies every pending migration in version order and returns how many ran.
func (m *Migrator) Up(ctx context.Context) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if done[mig.Version] {
			continue
		}
		if err := m.exec(ctx, mig.Version, mig.Up); err != nil {
			return count, err
		}
		if _, err := m.db.ExecContext(ctx, insertAppliedQuery, mig.Version, m.now()); err != nil {
			return count, fmt.Errorf("could not record migration %s: %w", mig.Version, err)
		}
		logger.Get().Info("Executed migration", zap.String("version", mig.Version))
		count++
	}
	return count, nil
}

// Down reverts up to steps applied migrations, newest first. steps <= 0 reverts all.
func (m *Migrator) Down(ctx context.Context, steps int) (int, error) {
	if err := m.ensureTable(ctx); err != nil {
		return 0, err
	}
	done, err := m.applied(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for i := len(m.migrations) - 1; i >= 0; i-- {
		if steps > 0 && count >= steps {
			break
		}
		mig := m.migrations[i]
		if !done[mig.Version] {
			continue
		}
		if mig.Down == "" {
			return count, fmt.Errorf("migration %s has no down script", mig.Version)
		}
		if err := m.exec(ctx, mig.Version, mig.Down); err != nil {
			return count, err
		}
		if _, err := m.db.ExecContext(ctx, deleteAppliedQuery, mig.Version); err != nil {
			return count, fmt.Errorf("could not remove migration record %s: %w", mig.Version, err)
		}
		logger.Get().Info("Reverted migration", zap.String("version", mig.Version))
		count++
	}
	return count, nil
}
