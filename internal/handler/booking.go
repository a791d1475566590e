package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/config"
	"github.com/iliyamo/artist-directory/internal/model"
	"github.com/iliyamo/artist-directory/internal/queue"
	"github.com/iliyamo/artist-directory/internal/repository"
	queue_publisher "github.com/iliyamo/artist-directory/internal/service"
)

// BookingHandler accepts show/budget requests from the public and
// dispatches the notification email through the message queue.
type BookingHandler struct {
	Cfg      config.Config
	Bookings *repository.BookingRepo
}

func NewBookingHandler(cfg config.Config, b *repository.BookingRepo) *BookingHandler {
	return &BookingHandler{Cfg: cfg, Bookings: b}
}

// bookingReq is the booking wire contract. Field names are fixed:
// the existing frontend posts exactly this shape.
type bookingReq struct {
	ArtistID    string `json:"artistId" validate:"required"`
	ArtistSlug  string `json:"artistSlug" validate:"required"`
	ArtistName  string `json:"artistName" validate:"required"`
	ArtistEmail string `json:"artistEmail" validate:"required,email"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	EventType   string `json:"eventType" validate:"required"`
	Date        string `json:"date"`
	City        string `json:"city" validate:"required"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
}

var bookingValidator = validator.New()

// validateBooking checks the payload before any side effect. It
// returns a caller-facing message distinguishing missing artist data
// from missing requester fields, mirroring the responses the frontend
// already handles.
func validateBooking(req bookingReq) (string, bool) {
	if err := bookingValidator.Struct(req); err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			return "invalid booking payload", false
		}
		for _, fe := range errs {
			switch fe.Field() {
			case "ArtistID", "ArtistSlug", "ArtistName", "ArtistEmail":
				return "incomplete artist data", false
			}
		}
		return "missing required requester fields", false
	}
	return "", true
}

// Create handles POST /v1/bookings: validate, insert exactly one row,
// publish exactly one email event. No partial writes happen on
// validation failure. A failed publish is reported as a warning, not
// an error: the stored request is the source of truth and the artist
// can still see it on their dashboard.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": "invalid body"})
	}

	if msg, ok := validateBooking(req); !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"ok": false, "error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b := model.BookingRequest{
		ArtistID:   req.ArtistID,
		ArtistSlug: req.ArtistSlug,
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		EventType:  req.EventType,
		Date:       cleanOrNull(req.Date),
		City:       req.City,
		Budget:     cleanOrNull(req.Budget),
		Message:    cleanOrNull(req.Message),
	}

	id, err := h.Bookings.Create(ctx, b)
	if err != nil {
		log.Printf("booking insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": "could not store the request"})
	}

	ev := queue.BookingRequestedEvent{
		BookingID:   id,
		ArtistID:    req.ArtistID,
		ArtistSlug:  req.ArtistSlug,
		ArtistName:  req.ArtistName,
		ArtistEmail: req.ArtistEmail,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		Date:        b.Date,
		City:        req.City,
		Budget:      b.Budget,
		Message:     b.Message,
		RequestedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := queue_publisher.PublishBookingRequested(ctx, h.Cfg.AMQPURL, ev); err != nil {
		return c.JSON(http.StatusOK, echo.Map{
			"ok":      true,
			"warning": "the request was saved but the email could not be sent",
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}
