package application

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

// MigrationManager collects per-module embedded schema files and applies them
// with goose against a single version table.
type MigrationManager interface {
	// RegisterSchema adds a module's migration FS. root is the directory
	// inside the FS holding the numbered .sql files.
	RegisterSchema(fsys *embed.FS, root string)
	Run(ctx context.Context) error
}

func NewMigrationManager(pool *pgxpool.Pool) MigrationManager {
	return &migrationManager{pool: pool}
}

type migrationManager struct {
	pool    *pgxpool.Pool
	schemas []fs.FS
}

func (m *migrationManager) RegisterSchema(fsys *embed.FS, root string) {
	sub, err := fs.Sub(fsys, root)
	if err != nil {
		panic(err)
	}
	m.schemas = append(m.schemas, sub)
}

func (m *migrationManager) Run(ctx context.Context) error {
	if len(m.schemas) == 0 {
		return nil
	}

	db, err := sql.Open("pgx", m.pool.Config().ConnString())
	if err != nil {
		return errors.Wrap(err, "failed to open migration connection")
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(&mergedFS{parts: m.schemas})
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}
	return errors.Wrap(goose.UpContext(ctx, db, "."), "failed to apply migrations")
}

// mergedFS exposes the union of the registered module schema directories as a
// single flat directory for goose.
type mergedFS struct {
	parts []fs.FS
}

func (m *mergedFS) Open(name string) (fs.File, error) {
	var lastErr error
	for _, part := range m.parts {
		f, err := part.Open(name)
		if err == nil {
			return f, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fs.ErrNotExist
	}
	return nil, lastErr
}

func (m *mergedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	var entries []fs.DirEntry
	for _, part := range m.parts {
		dirEntries, err := fs.ReadDir(part, name)
		if err != nil {
			continue
		}
		entries = append(entries, dirEntries...)
	}
	if entries == nil {
		return nil, fs.ErrNotExist
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}
