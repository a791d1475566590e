// Package premium holds the subscription tiering rules: which tier an
// artist is effectively on, and what each tier allows.
//
// Everything here is pure. Resolution is a function of a subscription
// snapshot and a clock reading, so callers can use cached rows and
// tests can pin time.
package premium

import (
	"log"
	"time"

	"github.com/iliyamo/artist-directory/internal/model"
)

// Tier is a named subscription level.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
	TierPro     Tier = "pro"
)

// Subscription status values as stored in premium_subscriptions.status.
const (
	StatusActive    = "active"
	StatusCancelled = "cancelled"
	StatusExpired   = "expired"
)

// unlimitedSentinel is the legacy encoding of "no practical limit" in
// numeric feature configs. Quotas at or above it are treated as
// unlimited when interpreting raw limits.
const unlimitedSentinel = 999

// FeatureValue is the configured value of one feature under a tier.
// It is either a switch (On), a finite quota (Quota), or unlimited.
// The tagged Unlimited marker replaces the bare sentinel number so
// downstream code never compares against a magic value.
type FeatureValue struct {
	On        bool
	Quota     int
	Unlimited bool
}

// Switch features.
func on() FeatureValue  { return FeatureValue{On: true} }
func off() FeatureValue { return FeatureValue{} }

// quota builds a countable feature value, folding the legacy sentinel
// into the Unlimited marker.
func quota(n int) FeatureValue {
	if n >= unlimitedSentinel {
		return FeatureValue{Unlimited: true}
	}
	return FeatureValue{Quota: n}
}

func unlimited() FeatureValue { return FeatureValue{Unlimited: true} }

// Features is the per-tier table of feature flags and limits.
type Features map[string]FeatureValue

// tierFeatures is built once and never mutated afterwards. The
// contents mirror the catalog's pricing matrix.
var tierFeatures = map[Tier]Features{
	TierFree: {
		"max_tracks": quota(3),
		"max_videos": quota(2),
		"max_photos": quota(1), // avatar + cover are counted separately
		"max_links":  quota(5),

		"analytics_basic":           on(),
		"analytics_advanced":        off(),
		"analytics_traffic_sources": off(),
		"analytics_peak_hours":      off(),

		"priority_ranking":  off(),
		"featured_rotation": off(),
		"custom_url":        off(),

		"support_priority": off(),

		"badge":        off(),
		"custom_theme": off(),
	},
	TierPremium: {
		"max_tracks": quota(5),
		"max_videos": quota(4),
		"max_photos": unlimited(),
		"max_links":  unlimited(),

		"analytics_basic":           on(),
		"analytics_advanced":        on(),
		"analytics_traffic_sources": on(),
		"analytics_peak_hours":      on(),

		"priority_ranking":  on(),
		"featured_rotation": on(),
		"custom_url":        off(),

		"support_priority": on(),

		"badge":        on(),
		"custom_theme": off(),
	},
	TierPro: {
		"max_tracks": unlimited(),
		"max_videos": unlimited(),
		"max_photos": unlimited(),
		"max_links":  unlimited(),

		"analytics_basic":           on(),
		"analytics_advanced":        on(),
		"analytics_traffic_sources": on(),
		"analytics_peak_hours":      on(),

		"priority_ranking":  on(),
		"featured_rotation": on(),
		"custom_url":        on(),

		"support_priority": on(),

		"badge":        on(),
		"custom_theme": on(),
	},
}

// ValidTier reports whether a tier name is configured.
func ValidTier(t Tier) bool {
	_, ok := tierFeatures[t]
	return ok
}

// TableFor returns the feature table for a tier, falling back to the
// free table when the name is unrecognized. It never fails.
func TableFor(t Tier) Features {
	if f, ok := tierFeatures[t]; ok {
		return f
	}
	log.Printf("premium: unknown tier %q, falling back to free", t)
	return tierFeatures[TierFree]
}

// Resolution is the outcome of resolving a subscription snapshot.
type Resolution struct {
	Tier      Tier
	IsPremium bool
	Features  Features
}

// Resolve computes the effective tier for a subscription row at a
// given instant. A nil row, an inactive status, or a past expiry all
// degrade to the free tier. Resolve never fails and has no side
// effects beyond a diagnostic log for unknown tier names.
func Resolve(sub *model.PremiumSubscription, now time.Time) Resolution {
	if sub == nil {
		return Resolution{Tier: TierFree, Features: tierFeatures[TierFree]}
	}
	active := sub.Status == StatusActive &&
		(sub.ExpiresAt == nil || sub.ExpiresAt.After(now))

	tier := TierFree
	if active {
		tier = Tier(sub.Tier)
	}
	feats, known := tierFeatures[tier]
	if !known {
		log.Printf("premium: unknown tier %q on subscription for artist %s, degrading to free", tier, sub.ArtistID)
		tier = TierFree
		feats = tierFeatures[TierFree]
	}
	return Resolution{
		Tier:      tier,
		IsPremium: active && tier != TierFree,
		Features:  feats,
	}
}

// Decision answers "may this action happen now" for a countable
// feature. When Unlimited is set, Limit and Remaining carry no
// meaning.
type Decision struct {
	Allowed   bool
	Unlimited bool
	Limit     int
	Remaining int
}

// CanUse checks a feature against current usage. Switch features that
// are on, and quotas at or above the legacy sentinel, allow without
// bound. Switched-off features and zero quotas deny. Finite quotas
// allow while usage is strictly below the limit.
func CanUse(f Features, name string, currentUsage int) Decision {
	v := f[name] // zero value denies unknown features
	if v.On || v.Unlimited || v.Quota >= unlimitedSentinel {
		return Decision{Allowed: true, Unlimited: true}
	}
	if v.Quota <= 0 {
		return Decision{}
	}
	remaining := v.Quota - currentUsage
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   currentUsage < v.Quota,
		Limit:     v.Quota,
		Remaining: remaining,
	}
}

// Has reports whether a feature exists at all under the table: a
// switch that is on, or a quota above zero. Use CanUse for
// quantity-aware checks.
func Has(f Features, name string) bool {
	v := f[name]
	return v.On || v.Unlimited || v.Quota > 0
}
