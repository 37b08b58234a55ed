package domain

import "time"

// APIKey is a row of the static access allowlist. Only active keys
// authorize requests; there is no expiry.
type APIKey struct {
	ID          int64     `json:"id" db:"id"`
	Key         string    `json:"api_key" db:"api_key"`
	Description string    `json:"description" db:"description"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
