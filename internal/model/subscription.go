package model

import "time"

// PremiumSubscription mirrors the `premium_subscriptions` table.
// There is at most one row per artist; rows are created and updated
// only through the admin endpoints, never implicitly.
//
// A subscription is currently active iff Status is "active" and
// ExpiresAt is either null or in the future. Everything else, and the
// absence of a row, resolves to the free tier (see internal/premium).
//
// Fields:
//  ID        – primary key identifier.
//  ArtistID  – owning artist (unique).
//  Tier      – subscription level name (free/premium/pro).
//  Status    – active, cancelled or expired.
//  StartedAt – when the current subscription began.
//  ExpiresAt – when it lapses; null means no expiry.
//  UpdatedAt – last administrative change.
type PremiumSubscription struct {
	ID        uint64     // premium_subscriptions.id
	ArtistID  string     // premium_subscriptions.artist_id
	Tier      string     // premium_subscriptions.tier
	Status    string     // premium_subscriptions.status
	StartedAt time.Time  // premium_subscriptions.started_at
	ExpiresAt *time.Time // premium_subscriptions.expires_at (nullable)
	UpdatedAt time.Time  // premium_subscriptions.updated_at
}
