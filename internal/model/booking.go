package model

import "time"

// BookingRequest mirrors the `booking_requests` table. One row per
// show/budget inquiry. Rows are inserted exactly once when a request
// form is submitted and are never mutated or deleted; artists see
// them read-only on their dashboard.
//
// Fields:
//  ID         – primary key identifier.
//  ArtistID   – target artist id.
//  ArtistSlug – target artist slug at submission time.
//  Name       – requester name.
//  Email      – requester email.
//  Phone      – requester phone.
//  EventType  – event type from the closed option list.
//  Date       – optional estimated event date (free text).
//  City       – event city.
//  Budget     – optional budget text.
//  Message    – optional free-text message.
//  CreatedAt  – server-assigned creation timestamp.
type BookingRequest struct {
	ID         uint64    `json:"id"`
	ArtistID   string    `json:"artist_id"`
	ArtistSlug string    `json:"artist_slug"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	EventType  string    `json:"event_type"`
	Date       *string   `json:"date,omitempty"`
	City       string    `json:"city"`
	Budget     *string   `json:"budget,omitempty"`
	Message    *string   `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
