package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/marketadmin/internal/client/migrations"
	"github.com/dmitrijs2005/marketadmin/internal/client/repositories/clientstate"
	"github.com/dmitrijs2005/marketadmin/internal/dbx"
	"github.com/dmitrijs2005/marketadmin/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

const savedAtKey = "accessTokenSavedAt"

// SQLiteTokenStorage keeps the token in the client_state table of a local
// SQLite file.
type SQLiteTokenStorage struct {
	db *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite file at dsn and migrates it.
func Open(ctx context.Context, dsn string) (*SQLiteTokenStorage, error) {
	if _, err := filex.EnsureParentDir(dsn); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s: %w", dsn, err)
	}
	return NewSQLiteTokenStorage(db), nil
}

func NewSQLiteTokenStorage(db *sql.DB) *SQLiteTokenStorage {
	return &SQLiteTokenStorage{db: db}
}

func (s *SQLiteTokenStorage) Get(ctx context.Context) (string, error) {
	v, err := clientstate.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

// Set stores the token together with the time it was written.
func (s *SQLiteTokenStorage) Set(ctx context.Context, token string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := clientstate.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, savedAtKey, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

func (s *SQLiteTokenStorage) Remove(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := clientstate.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, savedAtKey)
	})
}

func (s *SQLiteTokenStorage) Close() error {
	return s.db.Close()
}
