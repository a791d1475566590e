package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validBookingReq() bookingReq {
	return bookingReq{
		ArtistID:    "3f1c2a9e-0000-0000-0000-000000000000",
		ArtistSlug:  "luna-park",
		ArtistName:  "Luna Park",
		ArtistEmail: "luna@example.com",
		Name:        "Carla",
		Email:       "carla@example.com",
		Phone:       "+54 11 5555-5555",
		EventType:   "Casamiento",
		City:        "Buenos Aires",
	}
}

func TestValidateBooking(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*bookingReq)
		wantOK  bool
		wantMsg string
	}{
		{"complete_required_only", func(r *bookingReq) {}, true, ""},
		{
			"complete_with_optionals",
			func(r *bookingReq) { r.Date = "2026-11-20"; r.Budget = "500000"; r.Message = "Al aire libre" },
			true, "",
		},
		{
			"missing_artist_id",
			func(r *bookingReq) { r.ArtistID = "" },
			false, "incomplete artist data",
		},
		{
			"missing_artist_email",
			func(r *bookingReq) { r.ArtistEmail = "" },
			false, "incomplete artist data",
		},
		{
			"bad_artist_email",
			func(r *bookingReq) { r.ArtistEmail = "not-an-email" },
			false, "incomplete artist data",
		},
		{
			"missing_requester_name",
			func(r *bookingReq) { r.Name = "" },
			false, "missing required requester fields",
		},
		{
			"missing_city",
			func(r *bookingReq) { r.City = "" },
			false, "missing required requester fields",
		},
		{
			"missing_phone",
			func(r *bookingReq) { r.Phone = "" },
			false, "missing required requester fields",
		},
		{
			"bad_requester_email",
			func(r *bookingReq) { r.Email = "carla@" },
			false, "missing required requester fields",
		},
		{
			// Artist data problems win when both sides are broken: the
			// frontend treats that message as a page-level error.
			"both_sides_broken",
			func(r *bookingReq) { r.ArtistSlug = ""; r.City = "" },
			false, "incomplete artist data",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBookingReq()
			tt.mutate(&req)

			msg, ok := validateBooking(req)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
