package premium_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/artist-directory/internal/model"
	"github.com/iliyamo/artist-directory/internal/premium"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func future() *time.Time { t := now.AddDate(0, 1, 0); return &t }
func past() *time.Time   { t := now.AddDate(0, -1, 0); return &t }

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		sub         *model.PremiumSubscription
		wantTier    premium.Tier
		wantPremium bool
	}{
		{"no_subscription_row", nil, premium.TierFree, false},
		{
			"active_with_future_expiry",
			&model.PremiumSubscription{Tier: "premium", Status: premium.StatusActive, ExpiresAt: future()},
			premium.TierPremium, true,
		},
		{
			"active_without_expiry",
			&model.PremiumSubscription{Tier: "pro", Status: premium.StatusActive},
			premium.TierPro, true,
		},
		{
			"active_but_expired",
			&model.PremiumSubscription{Tier: "premium", Status: premium.StatusActive, ExpiresAt: past()},
			premium.TierFree, false,
		},
		{
			"cancelled",
			&model.PremiumSubscription{Tier: "premium", Status: premium.StatusCancelled, ExpiresAt: future()},
			premium.TierFree, false,
		},
		{
			"unknown_status",
			&model.PremiumSubscription{Tier: "premium", Status: "paused", ExpiresAt: future()},
			premium.TierFree, false,
		},
		{
			"unknown_tier_degrades_to_free",
			&model.PremiumSubscription{Tier: "platinum", Status: premium.StatusActive, ExpiresAt: future()},
			premium.TierFree, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := premium.Resolve(tt.sub, now)
			assert.Equal(t, tt.wantTier, res.Tier)
			assert.Equal(t, tt.wantPremium, res.IsPremium)
			require.NotNil(t, res.Features)
			assert.Equal(t, premium.TableFor(tt.wantTier), res.Features)
		})
	}
}

// Expiry is exclusive: a subscription expiring exactly now is no
// longer premium.
func TestResolveExpiryBoundary(t *testing.T) {
	at := now
	sub := &model.PremiumSubscription{Tier: "premium", Status: premium.StatusActive, ExpiresAt: &at}
	res := premium.Resolve(sub, now)
	assert.Equal(t, premium.TierFree, res.Tier)
	assert.False(t, res.IsPremium)
}

func TestCanUseQuota(t *testing.T) {
	free := premium.TableFor(premium.TierFree)

	tests := []struct {
		name    string
		feature string
		usage   int
		want    premium.Decision
	}{
		{"under_limit", "max_tracks", 2, premium.Decision{Allowed: true, Limit: 3, Remaining: 1}},
		{"at_limit", "max_tracks", 3, premium.Decision{Allowed: false, Limit: 3, Remaining: 0}},
		{"over_limit", "max_tracks", 7, premium.Decision{Allowed: false, Limit: 3, Remaining: 0}},
		{"fresh_profile", "max_tracks", 0, premium.Decision{Allowed: true, Limit: 3, Remaining: 3}},
		{"unknown_feature_denied", "teleport", 0, premium.Decision{}},
		{"switched_off_denied", "analytics_advanced", 0, premium.Decision{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, premium.CanUse(free, tt.feature, tt.usage))
		})
	}
}

func TestCanUseUnlimited(t *testing.T) {
	pro := premium.TableFor(premium.TierPro)

	// Unlimited quotas allow at any usage level.
	for _, usage := range []int{0, 3, 999, 100000} {
		d := premium.CanUse(pro, "max_tracks", usage)
		assert.True(t, d.Allowed, "usage=%d", usage)
		assert.True(t, d.Unlimited, "usage=%d", usage)
	}

	// Switch features that are on behave the same way.
	d := premium.CanUse(pro, "analytics_advanced", 0)
	assert.True(t, d.Allowed)
	assert.True(t, d.Unlimited)
}

func TestHas(t *testing.T) {
	free := premium.TableFor(premium.TierFree)
	prem := premium.TableFor(premium.TierPremium)

	assert.True(t, premium.Has(free, "analytics_basic"))
	assert.True(t, premium.Has(free, "max_tracks")) // quota above zero counts as having the feature
	assert.False(t, premium.Has(free, "badge"))
	assert.False(t, premium.Has(free, "analytics_advanced"))
	assert.False(t, premium.Has(free, "nonexistent"))

	assert.True(t, premium.Has(prem, "badge"))
	assert.True(t, premium.Has(prem, "max_photos")) // unlimited
}

func TestValidTier(t *testing.T) {
	assert.True(t, premium.ValidTier(premium.TierFree))
	assert.True(t, premium.ValidTier(premium.TierPremium))
	assert.True(t, premium.ValidTier(premium.TierPro))
	assert.False(t, premium.ValidTier("platinum"))
}

func TestTableForUnknownFallsBackToFree(t *testing.T) {
	assert.Equal(t, premium.TableFor(premium.TierFree), premium.TableFor("platinum"))
}
