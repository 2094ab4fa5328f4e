package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"ton-mini-app-backend/internal/common/config"
	"ton-mini-app-backend/internal/common/logger"
)

// Client is the single long-lived handle to the users database.
type Client struct {
	db *sql.DB
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	if cfg.Postgres.URL == "" {
		return nil, fmt.Errorf("empty postgres DSN")
	}

	db, err := sql.Open("postgres", cfg.Postgres.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Postgres.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info().
		Int("max_open_conns", cfg.Postgres.MaxOpenConns).
		Msg("PostgreSQL client initialized")

	return &Client{db: db}, nil
}

// NewFromDB wraps an already opened *sql.DB.
func NewFromDB(db *sql.DB) *Client {
	return &Client{db: db}
}

func (c *Client) DB() *sql.DB {
	return c.db
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) HealthCheck(ctx context.Context) error {
	return c.db.PingContext(ctx)
}
