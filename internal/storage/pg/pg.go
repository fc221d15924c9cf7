package pg

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/lacentralbaja/archivo/internal/config"
	"github.com/lacentralbaja/archivo/internal/logger"
)

type Storage struct {
	db *sql.DB
}

func New(cfg config.Pg) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Host, "dbname", cfg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")

	storage := &Storage{db}
	if err := storage.bootstrap(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}
	return storage, nil
}

func Connect(cfg config.Pg) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, err
	}

	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// bootstrap creates the tables on first start. Timestamps are unix
// milliseconds; tags are stored raw and split on read.
func (s *Storage) bootstrap() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS board_posts (
		id         TEXT PRIMARY KEY,
		created_at BIGINT NOT NULL,
		title      TEXT NOT NULL,
		body       TEXT NOT NULL DEFAULT '',
		author     TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT '',
		status     TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS board_posts_status_created_at_idx
		ON board_posts (status, created_at DESC);

	CREATE TABLE IF NOT EXISTS artists (
		id         TEXT PRIMARY KEY,
		created_at BIGINT NOT NULL,
		name       TEXT NOT NULL,
		bio        TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		link       TEXT NOT NULL DEFAULT '',
		tags       TEXT NOT NULL DEFAULT '',
		image_path TEXT NOT NULL DEFAULT ''
	);
	CREATE INDEX IF NOT EXISTS artists_created_at_idx
		ON artists (created_at DESC);
	`)
	return err
}
