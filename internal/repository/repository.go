package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jbnu-feel/feelgeo/internal/models"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Database is the subset of pgxpool methods the repository needs.
// Satisfied by *pgxpool.Pool and by pgxmock in tests.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Repository provides persistence for the site content: notices and
// calendar events.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface describes the repository operations consumed by the HTTP layer.
type Interface interface {
	ListNotices(ctx context.Context, page, size int, category, keyword string) ([]models.Notice, int, error)
	PinnedNotices(ctx context.Context) ([]models.Notice, error)
	GetNotice(ctx context.Context, noticeID int) (models.Notice, error)
	CreateNotice(ctx context.Context, notice models.Notice) (int, error)
	UpdateNotice(ctx context.Context, notice models.Notice) error
	DeleteNotice(ctx context.Context, noticeID int) error
	SetNoticePinned(ctx context.Context, noticeID int, pinned bool) error

	ListEvents(ctx context.Context, start, end time.Time) ([]models.Event, error)
	AllEvents(ctx context.Context) ([]models.Event, error)
	GetEvent(ctx context.Context, eventID int) (models.Event, error)
	CreateEvent(ctx context.Context, event models.Event) (int, error)
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, eventID int) error
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}

// NewDatabase creates a pgx connection pool for the given credentials and
// verifies connectivity with a ping.
func NewDatabase(ctx context.Context, host, port, user, password, name string) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", user, password, host, port, name)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
