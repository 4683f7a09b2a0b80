package bot

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/doston9471/telegram-quote-bot/internal/database"
)

// Reply texts are a compatibility contract: consumers parse them as
// fixed-format text, so the structure must not drift.
const (
	welcomeMessage = "👋 Welcome to the Quote Bot!\n" +
		"\n" +
		"I share inspiring quotes from great thinkers and leaders.\n" +
		"\n" +
		"Type /help to see available commands.\n"

	helpTemplate = "📚 Available Commands:\n" +
		"\n" +
		"/random - Get a random quote\n" +
		"/categories - Show all quote categories\n" +
		"/quote_Motivation - Get a quote from the Motivation category\n" +
		"/quote_Success - Get a quote from the Success category\n" +
		"/quote_Wisdom - Get a quote from the Wisdom category\n" +
		"/quote_Courage - Get a quote from the Courage category\n" +
		"/quote_Friendship - Get a quote from the Friendship category\n" +
		"/quote_Love - Get a quote from the Love category\n" +
		"/help - Show this help message\n" +
		"\n" +
		"Available categories: %s\n"

	categoriesHeader = "📂 Available Categories:\n\n"

	noQuotesMessage       = "No quotes available at the moment."
	noCategoriesMessage   = "No categories available."
	notFoundTemplate      = "❌ No quotes found in the '%s' category."
	unknownCommandMessage = "❓ Unknown command. Type /help to see available commands."
)

// ReplyBuilder renders the outbound text for each command, querying the
// quote store where the command needs data.
type ReplyBuilder struct {
	store database.Store
}

// NewReplyBuilder creates a ReplyBuilder backed by the given store.
func NewReplyBuilder(store database.Store) *ReplyBuilder {
	return &ReplyBuilder{store: store}
}

// Build produces the reply text for a command. Empty result sets produce
// their worded "not found" replies; only store failures return an error.
func (r *ReplyBuilder) Build(ctx context.Context, cmd Command) (string, error) {
	switch cmd.Kind {
	case CommandStart:
		return welcomeMessage, nil
	case CommandHelp:
		return r.buildHelp(ctx)
	case CommandRandom:
		return r.buildRandom(ctx)
	case CommandCategories:
		return r.buildCategories(ctx)
	case CommandQuoteByCategory:
		return r.buildQuoteByCategory(ctx, cmd.Category)
	default:
		return unknownCommandMessage, nil
	}
}

func (r *ReplyBuilder) buildHelp(ctx context.Context) (string, error) {
	categories, err := r.store.AllCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load categories for help: %w", err)
	}
	return fmt.Sprintf(helpTemplate, strings.Join(categories, ", ")), nil
}

func (r *ReplyBuilder) buildRandom(ctx context.Context) (string, error) {
	quote, err := r.store.RandomQuote(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load random quote: %w", err)
	}
	if quote == nil {
		return noQuotesMessage, nil
	}
	return formatQuote(quote), nil
}

func (r *ReplyBuilder) buildCategories(ctx context.Context) (string, error) {
	categories, err := r.store.AllCategories(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to load categories: %w", err)
	}
	if len(categories) == 0 {
		return noCategoriesMessage, nil
	}

	var b strings.Builder
	b.WriteString(categoriesHeader)
	for _, category := range categories {
		count, err := r.store.CountByCategory(ctx, category)
		if err != nil {
			return "", fmt.Errorf("failed to count quotes in category %q: %w", category, err)
		}
		// The label is the literal word "quotes" regardless of count,
		// including "(1 quotes)".
		fmt.Fprintf(&b, "• %s (%d quotes)\n", category, count)
	}
	return b.String(), nil
}

func (r *ReplyBuilder) buildQuoteByCategory(ctx context.Context, category string) (string, error) {
	quotes, err := r.store.QuotesByCategory(ctx, category)
	if err != nil {
		return "", fmt.Errorf("failed to load quotes in category %q: %w", category, err)
	}
	if len(quotes) == 0 {
		return fmt.Sprintf(notFoundTemplate, category), nil
	}
	return formatQuote(&quotes[rand.IntN(len(quotes))]), nil
}

// formatQuote renders the fixed three-part quote block: quoted text, em-dash
// author line, folder-marked category line.
func formatQuote(quote *database.Quote) string {
	return fmt.Sprintf("\"%s\"\n\n— %s\n\n📂 Category: %s\n", quote.Text, quote.Author, quote.Category)
}
