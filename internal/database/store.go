package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ErrQuoteNotFound is returned when a quote lookup by ID matches no row.
var ErrQuoteNotFound = errors.New("quote not found")

// Store defines the interface for quote data access.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// Ping checks the database connection.
	Ping(ctx context.Context) error

	// RandomQuote returns one uniformly-selected quote, or nil, nil if the
	// store is empty.
	RandomQuote(ctx context.Context) (*Quote, error)

	// QuotesByCategory returns all quotes whose category exactly equals the
	// given value.
	QuotesByCategory(ctx context.Context, category string) ([]Quote, error)

	// AllCategories returns the distinct set of categories, sorted
	// lexicographically. It is recomputed on every call.
	AllCategories(ctx context.Context) ([]string, error)

	// CountByCategory returns the number of quotes in the given category.
	CountByCategory(ctx context.Context, category string) (int, error)

	// CreateQuote inserts a new quote and fills in its ID and timestamps.
	CreateQuote(ctx context.Context, quote *Quote) error

	// GetQuote retrieves a quote by ID. Returns ErrQuoteNotFound if missing.
	GetQuote(ctx context.Context, id int64) (*Quote, error)

	// UpdateQuote replaces the content fields of an existing quote.
	// Returns ErrQuoteNotFound if the ID matches no row.
	UpdateQuote(ctx context.Context, quote *Quote) error

	// DeleteQuote removes a quote by ID. Returns ErrQuoteNotFound if missing.
	DeleteQuote(ctx context.Context, id int64) error

	// ListQuotes returns quotes ordered by ID with limit/offset pagination.
	ListQuotes(ctx context.Context, limit, offset int) ([]Quote, error)

	// CountQuotes returns the total number of quotes.
	CountQuotes(ctx context.Context) (int, error)

	// SeedQuotes inserts the given quotes, skipping any whose text already
	// exists. Returns the number of quotes actually inserted.
	SeedQuotes(ctx context.Context, quotes []Quote) (int, error)

	// RunSQLMaintenance performs periodic database maintenance.
	RunSQLMaintenance(ctx context.Context) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "store"),
	}
}

func (s *sqlxStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlxStore) RandomQuote(ctx context.Context) (*Quote, error) {
	var quote Quote
	err := s.db.GetContext(ctx, &quote, `SELECT * FROM quotes ORDER BY RANDOM() LIMIT 1`)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to select random quote: %w", err)
	}
	return &quote, nil
}

func (s *sqlxStore) QuotesByCategory(ctx context.Context, category string) ([]Quote, error) {
	var quotes []Quote
	err := s.db.SelectContext(ctx, &quotes, `SELECT * FROM quotes WHERE category = ? ORDER BY id`, category)
	if err != nil {
		return nil, fmt.Errorf("failed to select quotes for category %q: %w", category, err)
	}
	return quotes, nil
}

func (s *sqlxStore) AllCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := s.db.SelectContext(ctx, &categories, `SELECT DISTINCT category FROM quotes ORDER BY category`)
	if err != nil {
		return nil, fmt.Errorf("failed to select categories: %w", err)
	}
	return categories, nil
}

func (s *sqlxStore) CountByCategory(ctx context.Context, category string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes WHERE category = ?`, category)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotes for category %q: %w", category, err)
	}
	return count, nil
}

func (s *sqlxStore) CreateQuote(ctx context.Context, quote *Quote) error {
	if err := validateQuote(quote); err != nil {
		return err
	}

	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	result, err := s.db.NamedExecContext(ctx, `
        INSERT INTO quotes (created_at, updated_at, text, author, category)
        VALUES (:created_at, :updated_at, :text, :author, :category)`, quote)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error inserting quote", "category", quote.Category, "error", err)
		return fmt.Errorf("failed to insert quote: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted quote ID: %w", err)
	}
	quote.ID = id

	s.logger.DebugContext(ctx, "Quote inserted", "id", quote.ID, "category", quote.Category)
	return nil
}

func (s *sqlxStore) GetQuote(ctx context.Context, id int64) (*Quote, error) {
	var quote Quote
	err := s.db.GetContext(ctx, &quote, `SELECT * FROM quotes WHERE id = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrQuoteNotFound
		}
		return nil, fmt.Errorf("failed to get quote %d: %w", id, err)
	}
	return &quote, nil
}

func (s *sqlxStore) UpdateQuote(ctx context.Context, quote *Quote) error {
	if err := validateQuote(quote); err != nil {
		return err
	}

	quote.UpdatedAt = time.Now().UTC()

	result, err := s.db.NamedExecContext(ctx, `
        UPDATE quotes
        SET updated_at = :updated_at, text = :text, author = :author, category = :category
        WHERE id = :id`, quote)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error updating quote", "id", quote.ID, "error", err)
		return fmt.Errorf("failed to update quote %d: %w", quote.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for quote %d: %w", quote.ID, err)
	}
	if affected == 0 {
		return ErrQuoteNotFound
	}
	return nil
}

func (s *sqlxStore) DeleteQuote(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Error deleting quote", "id", id, "error", err)
		return fmt.Errorf("failed to delete quote %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for quote %d: %w", id, err)
	}
	if affected == 0 {
		return ErrQuoteNotFound
	}

	s.logger.DebugContext(ctx, "Quote deleted", "id", id)
	return nil
}

func (s *sqlxStore) ListQuotes(ctx context.Context, limit, offset int) ([]Quote, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	if offset < 0 {
		return nil, fmt.Errorf("offset must be non-negative, got %d", offset)
	}

	var quotes []Quote
	err := s.db.SelectContext(ctx, &quotes, `SELECT * FROM quotes ORDER BY id LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	return quotes, nil
}

func (s *sqlxStore) CountQuotes(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM quotes`)
	if err != nil {
		return 0, fmt.Errorf("failed to count quotes: %w", err)
	}
	return count, nil
}

func (s *sqlxStore) SeedQuotes(ctx context.Context, quotes []Quote) (int, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			s.logger.WarnContext(ctx, "Error rolling back seed transaction", "error", rollbackErr)
		}
	}()

	inserted := 0
	now := time.Now().UTC()
	for i := range quotes {
		quote := quotes[i]
		if err := validateQuote(&quote); err != nil {
			return 0, fmt.Errorf("invalid seed quote %q: %w", quote.Text, err)
		}
		quote.CreatedAt = now
		quote.UpdatedAt = now

		result, err := tx.NamedExecContext(ctx, `
            INSERT INTO quotes (created_at, updated_at, text, author, category)
            VALUES (:created_at, :updated_at, :text, :author, :category)
            ON CONFLICT (text) DO NOTHING`, quote)
		if err != nil {
			return 0, fmt.Errorf("failed to seed quote %q: %w", quote.Text, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get affected rows for seed quote: %w", err)
		}
		inserted += int(affected)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.InfoContext(ctx, "Seed completed", "inserted", inserted, "total", len(quotes))
	return inserted, nil
}

func (s *sqlxStore) RunSQLMaintenance(ctx context.Context) error {
	for _, stmt := range []string{`ANALYZE`, `PRAGMA wal_checkpoint(TRUNCATE)`, `PRAGMA optimize`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("maintenance statement %q failed: %w", stmt, err)
		}
	}
	s.logger.InfoContext(ctx, "SQL maintenance completed")
	return nil
}

func validateQuote(quote *Quote) error {
	if quote == nil {
		return errors.New("quote is nil")
	}
	if strings.TrimSpace(quote.Text) == "" {
		return errors.New("quote must have non-empty text")
	}
	if strings.TrimSpace(quote.Author) == "" {
		return errors.New("quote must have non-empty author")
	}
	if strings.TrimSpace(quote.Category) == "" {
		return errors.New("quote must have non-empty category")
	}
	return nil
}
