package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/iliyamo/artist-directory/internal/model"
)

// SubscriptionRepo provides access to the `premium_subscriptions`
// table. At most one row exists per artist (unique key on artist_id);
// rows change only through administrative actions.
type SubscriptionRepo struct{ DB *sql.DB }

func NewSubscriptionRepo(db *sql.DB) *SubscriptionRepo { return &SubscriptionRepo{DB: db} }

// GetByArtist fetches the subscription row for an artist. A missing
// row is reported as ErrNoSubscription; callers resolve that to the
// free tier rather than treating it as a failure.
func (r *SubscriptionRepo) GetByArtist(ctx context.Context, artistID string) (model.PremiumSubscription, error) {
	var (
		s       model.PremiumSubscription
		expires sql.NullTime
	)
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, artist_id, tier, status, started_at, expires_at, updated_at
		 FROM premium_subscriptions WHERE artist_id=? LIMIT 1`,
		artistID).Scan(&s.ID, &s.ArtistID, &s.Tier, &s.Status, &s.StartedAt, &expires, &s.UpdatedAt)
	if err == sql.ErrNoRows {
		return model.PremiumSubscription{}, ErrNoSubscription
	}
	if err != nil {
		return model.PremiumSubscription{}, err
	}
	if expires.Valid {
		t := expires.Time
		s.ExpiresAt = &t
	}
	return s, nil
}

// Activate upserts an active subscription for an artist. An existing
// row is overwritten with the new tier, status and window; otherwise a
// row is inserted. Matches the admin "activate premium" action.
func (r *SubscriptionRepo) Activate(ctx context.Context, artistID, tier string, startedAt time.Time, expiresAt *time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO premium_subscriptions (artist_id, tier, status, started_at, expires_at, updated_at)
		 VALUES (?,?,'active',?,?,NOW())
		 ON DUPLICATE KEY UPDATE
			tier=VALUES(tier), status='active',
			started_at=VALUES(started_at), expires_at=VALUES(expires_at), updated_at=NOW()`,
		artistID, tier, startedAt.UTC(), expiresAt)
	return err
}

// Cancel marks an artist's subscription as cancelled. The row is kept;
// tier resolution degrades it to free from the next read onwards.
func (r *SubscriptionRepo) Cancel(ctx context.Context, artistID string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE premium_subscriptions SET status='cancelled', updated_at=NOW() WHERE artist_id=?`,
		artistID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNoSubscription
	}
	return nil
}
