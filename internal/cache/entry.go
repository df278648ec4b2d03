package cache

import (
	"encoding/json"
	"time"
)

// Entry is one cached value with its expiry.
type Entry struct {
	Key       string          `json:"key"`
	Operation string          `json:"operation,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"created_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// NewEntry creates an entry that expires ttl after now.
func NewEntry(key string, data json.RawMessage, ttl time.Duration) *Entry {
	now := time.Now().UTC().Truncate(time.Second)
	return &Entry{
		Key:       key,
		Data:      data,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// IsExpired reports whether the entry's expiry has passed.
func (e *Entry) IsExpired() bool {
	return !time.Now().Before(e.ExpiresAt)
}

// Age returns the time since the entry was written.
func (e *Entry) Age() time.Duration {
	return time.Since(e.CreatedAt)
}

// Remaining returns the time until expiry, or 0 once expired.
func (e *Entry) Remaining() time.Duration {
	return max(time.Until(e.ExpiresAt), 0)
}
