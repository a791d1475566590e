// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingRequestedEvent is published after a booking request row has
// been stored. It carries everything the notification consumer needs
// to render and send the email without querying the primary database.
type BookingRequestedEvent struct {
	BookingID   uint64  `json:"booking_id"`
	ArtistID    string  `json:"artist_id"`
	ArtistSlug  string  `json:"artist_slug"`
	ArtistName  string  `json:"artist_name"`
	ArtistEmail string  `json:"artist_email"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	EventType   string  `json:"event_type"`
	Date        *string `json:"date,omitempty"`
	City        string  `json:"city"`
	Budget      *string `json:"budget,omitempty"`
	Message     *string `json:"message,omitempty"`
	RequestedAt string  `json:"requested_at"`
}
