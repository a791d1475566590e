// Package repository defines error types that are reused across
// multiple repositories. These sentinel values let handlers map
// failures onto HTTP statuses without inspecting driver errors: a
// missing artist becomes 404, a taken slug 409, and so on.
package repository

import "errors"

// ErrArtistNotFound is returned when no artist row matches the given
// id or slug. Handlers should translate this into HTTP 404.
var ErrArtistNotFound = errors.New("artist not found")

// ErrSlugExists is returned when an application form derives a slug
// that is already taken. Handlers should translate this into HTTP 409.
var ErrSlugExists = errors.New("slug already exists")

// ErrNoSubscription is returned when an artist has no
// premium_subscriptions row. Callers resolve this to the free tier.
var ErrNoSubscription = errors.New("no subscription")
