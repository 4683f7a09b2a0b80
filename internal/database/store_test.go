package database_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doston9471/telegram-quote-bot/internal/database"
)

func setupTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(":memory:")
	require.NoError(t, err, "failed to create test database")
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

func seedTestQuotes(t *testing.T, store database.Store, quotes ...database.Quote) {
	t.Helper()
	for i := range quotes {
		require.NoError(t, store.CreateQuote(context.Background(), &quotes[i]))
	}
}

func TestCreateAndGetQuote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	quote := database.Quote{Text: "T", Author: "A", Category: "C"}
	require.NoError(t, store.CreateQuote(ctx, &quote))
	assert.NotZero(t, quote.ID)
	assert.False(t, quote.CreatedAt.IsZero())

	got, err := store.GetQuote(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "T", got.Text)
	assert.Equal(t, "A", got.Author)
	assert.Equal(t, "C", got.Category)
}

func TestCreateQuoteValidation(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, quote := range []database.Quote{
		{Text: "", Author: "A", Category: "C"},
		{Text: "T", Author: "", Category: "C"},
		{Text: "T", Author: "A", Category: ""},
		{Text: "   ", Author: "A", Category: "C"},
	} {
		q := quote
		assert.Error(t, store.CreateQuote(ctx, &q), "quote %+v must be rejected", quote)
	}
}

func TestGetQuoteNotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetQuote(context.Background(), 12345)
	assert.ErrorIs(t, err, database.ErrQuoteNotFound)
}

func TestUpdateQuote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	quote := database.Quote{Text: "old", Author: "A", Category: "C"}
	require.NoError(t, store.CreateQuote(ctx, &quote))

	quote.Text = "new"
	quote.Category = "D"
	require.NoError(t, store.UpdateQuote(ctx, &quote))

	got, err := store.GetQuote(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Text)
	assert.Equal(t, "D", got.Category)

	missing := database.Quote{ID: 999, Text: "x", Author: "y", Category: "z"}
	assert.ErrorIs(t, store.UpdateQuote(ctx, &missing), database.ErrQuoteNotFound)
}

func TestDeleteQuote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	quote := database.Quote{Text: "T", Author: "A", Category: "C"}
	require.NoError(t, store.CreateQuote(ctx, &quote))

	require.NoError(t, store.DeleteQuote(ctx, quote.ID))
	_, err := store.GetQuote(ctx, quote.ID)
	assert.ErrorIs(t, err, database.ErrQuoteNotFound)

	assert.ErrorIs(t, store.DeleteQuote(ctx, quote.ID), database.ErrQuoteNotFound)
}

func TestRandomQuote(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	quote, err := store.RandomQuote(ctx)
	require.NoError(t, err)
	assert.Nil(t, quote, "empty store yields no random quote")

	seedTestQuotes(t, store,
		database.Quote{Text: "a", Author: "x", Category: "Wisdom"},
		database.Quote{Text: "b", Author: "y", Category: "Love"},
	)

	for range 10 {
		quote, err := store.RandomQuote(ctx)
		require.NoError(t, err)
		require.NotNil(t, quote)
		assert.Contains(t, []string{"a", "b"}, quote.Text)
	}
}

func TestQuotesByCategory(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seedTestQuotes(t, store,
		database.Quote{Text: "a", Author: "x", Category: "Wisdom"},
		database.Quote{Text: "b", Author: "y", Category: "Wisdom"},
		database.Quote{Text: "c", Author: "z", Category: "Love"},
	)

	quotes, err := store.QuotesByCategory(ctx, "Wisdom")
	require.NoError(t, err)
	assert.Len(t, quotes, 2)

	// Exact match only: no case folding, no trimming.
	quotes, err = store.QuotesByCategory(ctx, "wisdom")
	require.NoError(t, err)
	assert.Empty(t, quotes)

	quotes, err = store.QuotesByCategory(ctx, "Success")
	require.NoError(t, err)
	assert.Empty(t, quotes)
}

func TestAllCategoriesSortedAndDistinct(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	categories, err := store.AllCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	seedTestQuotes(t, store,
		database.Quote{Text: "a", Author: "x", Category: "Wisdom"},
		database.Quote{Text: "b", Author: "y", Category: "Love"},
		database.Quote{Text: "c", Author: "z", Category: "Wisdom"},
		database.Quote{Text: "d", Author: "w", Category: "Courage"},
	)

	categories, err = store.AllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Courage", "Love", "Wisdom"}, categories)
	assert.True(t, sort.StringsAreSorted(categories))
}

func TestCountByCategory(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	seedTestQuotes(t, store,
		database.Quote{Text: "a", Author: "x", Category: "Love"},
		database.Quote{Text: "b", Author: "y", Category: "Love"},
		database.Quote{Text: "c", Author: "z", Category: "Wisdom"},
	)

	count, err := store.CountByCategory(ctx, "Love")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.CountByCategory(ctx, "Nope")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestListQuotesPagination(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"a", "b", "c", "d", "e"} {
		quote := database.Quote{Text: text, Author: "A", Category: "C"}
		require.NoError(t, store.CreateQuote(ctx, &quote))
	}

	page, err := store.ListQuotes(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "a", page[0].Text)

	page, err = store.ListQuotes(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "e", page[0].Text)

	total, err := store.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, total)

	_, err = store.ListQuotes(ctx, 0, 0)
	assert.Error(t, err)
}

func TestSeedQuotesIsIdempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	inserted, err := store.SeedQuotes(ctx, database.DefaultQuotes)
	require.NoError(t, err)
	assert.Equal(t, len(database.DefaultQuotes), inserted)

	inserted, err = store.SeedQuotes(ctx, database.DefaultQuotes)
	require.NoError(t, err)
	assert.Zero(t, inserted, "re-seeding must not duplicate quotes")

	total, err := store.CountQuotes(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(database.DefaultQuotes), total)

	categories, err := store.AllCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Courage", "Friendship", "Love", "Motivation", "Success", "Wisdom"}, categories)
}

func TestRunSQLMaintenance(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.RunSQLMaintenance(context.Background()))
}
