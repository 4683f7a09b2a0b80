package database

import "time"

// Quote represents a single quotation in the collection. Every persisted
// quote has non-empty text, author, and category; text is unique and serves
// as the idempotency key for seeding.
type Quote struct {
	ID        int64     `db:"id" json:"id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	Text     string `db:"text" json:"text"`
	Author   string `db:"author" json:"author"`
	Category string `db:"category" json:"category"`
}
