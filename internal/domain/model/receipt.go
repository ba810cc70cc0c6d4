package model

import "time"

// Receipt is a quote kept for a limited time so it can be downloaded
// as a PDF after the optimize call returns.
type Receipt struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name,omitempty"`
	Quote      Quote     `json:"quote"`
	CreatedAt  time.Time `json:"created_at"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// Expired reports whether the receipt is past its expiry at t.
func (r *Receipt) Expired(t time.Time) bool {
	return !r.ExpiresAt.IsZero() && t.After(r.ExpiresAt)
}
