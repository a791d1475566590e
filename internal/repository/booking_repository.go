package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/artist-directory/internal/model"
)

// BookingRepo provides access to the `booking_requests` table.
// Bookings are insert-only; nothing in the service mutates or deletes
// them after creation.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts one booking request and returns its id. created_at
// is assigned by the database so listing order is server-monotonic.
func (r *BookingRepo) Create(ctx context.Context, b model.BookingRequest) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO booking_requests
			(artist_id, artist_slug, name, email, phone, event_type, date, city, budget, message)
		 VALUES (?,?,?,?,?,?,?,?,?,?)`,
		b.ArtistID, b.ArtistSlug, b.Name, b.Email, b.Phone, b.EventType,
		b.Date, b.City, b.Budget, b.Message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByArtist returns an artist's booking requests, newest first.
func (r *BookingRepo) ListByArtist(ctx context.Context, artistID string) ([]model.BookingRequest, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, artist_id, artist_slug, name, email, phone, event_type, date, city, budget, message, created_at
		 FROM booking_requests WHERE artist_id=? ORDER BY created_at DESC`,
		artistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.BookingRequest{}
	for rows.Next() {
		var b model.BookingRequest
		if err := rows.Scan(&b.ID, &b.ArtistID, &b.ArtistSlug, &b.Name, &b.Email,
			&b.Phone, &b.EventType, &b.Date, &b.City, &b.Budget, &b.Message, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// CountByArtist returns the number of booking requests an artist has
// received, for the dashboard summary.
func (r *BookingRepo) CountByArtist(ctx context.Context, artistID string) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM booking_requests WHERE artist_id=?", artistID).Scan(&n)
	return n, err
}
