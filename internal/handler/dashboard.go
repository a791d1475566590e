package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/config"
	"github.com/iliyamo/artist-directory/internal/premium"
	"github.com/iliyamo/artist-directory/internal/repository"
	"github.com/iliyamo/artist-directory/internal/tags"
)

// DashboardHandler serves the artist's own view: profile, analytics,
// booking requests and premium status. All routes require an ARTIST
// token; the profile is located through the account id, so an artist
// can only ever touch their own row.
type DashboardHandler struct {
	Cfg      config.Config
	Artists  *repository.ArtistRepo
	Subs     *repository.SubscriptionRepo
	Bookings *repository.BookingRepo
}

func NewDashboardHandler(cfg config.Config, a *repository.ArtistRepo, s *repository.SubscriptionRepo, b *repository.BookingRepo) *DashboardHandler {
	return &DashboardHandler{Cfg: cfg, Artists: a, Subs: s, Bookings: b}
}

// callerID extracts the authenticated user id placed in context by
// the JWT middleware. JWT numeric claims decode as float64.
func callerID(c echo.Context) (uint64, bool) {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v), true
	case uint64:
		return v, true
	case string:
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n, true
		}
	}
	return 0, false
}

// limitPart reports one quota to the dashboard so the UI can show
// "2 of 3 used" affordances without duplicating gate logic.
type limitPart struct {
	Allowed   bool `json:"allowed"`
	Unlimited bool `json:"unlimited"`
	Limit     int  `json:"limit"`
	Remaining int  `json:"remaining"`
}

func toLimitPart(d premium.Decision) limitPart {
	return limitPart{Allowed: d.Allowed, Unlimited: d.Unlimited, Limit: d.Limit, Remaining: d.Remaining}
}

// GetDashboard returns the artist's profile, premium status, content
// limits and analytics. Ranking analytics are included only when the
// tier grants advanced analytics; the visit counters are always
// present (basic analytics exist on every tier).
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	uid, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	a, err := h.Artists.GetByUserID(ctx, uid)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no artist profile linked to this account"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	res := h.resolvePremiumFor(c, a.ID)

	tracks := len(a.MusicEntries())
	videos := len(a.VideoEntries())
	limits := echo.Map{
		"max_tracks": toLimitPart(premium.CanUse(res.Features, "max_tracks", tracks)),
		"max_videos": toLimitPart(premium.CanUse(res.Features, "max_videos", videos)),
	}

	analytics := echo.Map{
		"visits": echo.Map{
			"total":      a.VisitasTotal,
			"this_month": a.VisitasMes,
			"last_visit": a.UltimaVisita,
		},
	}
	if n, err := h.Bookings.CountByArtist(ctx, a.ID); err == nil {
		analytics["bookings_total"] = n
	}
	if premium.Has(res.Features, "analytics_advanced") {
		higher, err1 := h.Artists.CountWithMoreMonthlyVisits(ctx, a.VisitasMes)
		total, err2 := h.Artists.CountAll(ctx)
		if err1 == nil && err2 == nil {
			position := higher + 1
			percentile := int64(0)
			if total > 0 {
				percentile = (total - position) * 100 / total
			}
			analytics["ranking"] = echo.Map{
				"position":   position,
				"total":      total,
				"percentile": percentile,
			}
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"artist":     buildProfile(a, res),
		"tier":       res.Tier,
		"is_premium": res.IsPremium,
		"limits":     limits,
		"analytics":  analytics,
	})
}

// CreateProfile creates an artist profile owned by the caller. The
// public application form creates unclaimed profiles; this is the
// authenticated path, and one account holds at most one profile.
func (h *DashboardHandler) CreateProfile(c echo.Context) error {
	uid, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.NombreArtistico = strings.TrimSpace(req.NombreArtistico)
	if req.NombreArtistico == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre_artistico required"})
	}
	slug := tags.Slug(req.NombreArtistico)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre_artistico yields empty slug"})
	}

	ctx := c.Request().Context()
	if _, err := h.Artists.GetByUserID(ctx, uid); err == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "this account already has an artist profile"})
	} else if err != repository.ErrArtistNotFound {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	a := artistFromApply(req, slug)
	a.UserID = &uid

	id, err := h.Artists.Create(ctx, a)
	if err != nil {
		if err == repository.ErrSlugExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "an artist with that name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create artist failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "slug": slug})
}

// UpdateProfile overwrites the editable fields of the caller's
// profile. The allowlist lives in repository.ProfileUpdate: id, slug,
// counters and ownership cannot be written through this path.
func (h *DashboardHandler) UpdateProfile(c echo.Context) error {
	uid, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.NombreArtistico = strings.TrimSpace(req.NombreArtistico)
	if req.NombreArtistico == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre_artistico required"})
	}

	ctx := c.Request().Context()
	a, err := h.Artists.GetByUserID(ctx, uid)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no artist profile linked to this account"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	upd := repository.ProfileUpdate{
		NombreArtistico: req.NombreArtistico,
		Ciudad:          cleanOrNull(req.Ciudad),
		Pais:            cleanOrNull(req.Pais),
		Foto:            cleanOrNull(req.Foto),
		Portada:         cleanOrNull(req.Portada),
		BioCorta:        cleanOrNull(req.BioCorta),
		BioLarga:        cleanOrNull(req.BioLarga),
		Generos:         cleanOrNull(req.Generos),
		Climas:          cleanOrNull(req.Climas),
		TiposEventos:    cleanOrNull(req.TiposEventos),
		Musica1Titu:     cleanOrNull(req.Musica1Titu),
		Musica1Des:      cleanOrNull(req.Musica1Des),
		Musica1Link:     cleanOrNull(req.Musica1Link),
		Musica2Titu:     cleanOrNull(req.Musica2Titu),
		Musica2Des:      cleanOrNull(req.Musica2Des),
		Musica2Link:     cleanOrNull(req.Musica2Link),
		Musica3Titu:     cleanOrNull(req.Musica3Titu),
		Musica3Des:      cleanOrNull(req.Musica3Des),
		Musica3Link:     cleanOrNull(req.Musica3Link),
		Video1Titulo:    cleanOrNull(req.Video1Titulo),
		Video1Link:      cleanOrNull(req.Video1Link),
		Video2Titulo:    cleanOrNull(req.Video2Titulo),
		Video2Link:      cleanOrNull(req.Video2Link),
		Highlights:      cleanOrNull(req.Highlights),
		Email:           cleanOrNull(req.Email),
		Whatsapp:        cleanOrNull(req.Whatsapp),
		Instagram:       cleanOrNull(req.Instagram),
		Tiktok:          cleanOrNull(req.Tiktok),
		Youtube:         cleanOrNull(req.Youtube),
	}

	if err := h.Artists.UpdateProfile(ctx, a.ID, upd); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}

	updated, err := h.Artists.GetByID(ctx, a.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, buildProfile(updated, h.resolvePremiumFor(c, a.ID)))
}

// ListBookings returns the caller's booking requests, newest first.
// Bookings are read-only for artists.
func (h *DashboardHandler) ListBookings(c echo.Context) error {
	uid, ok := callerID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	ctx := c.Request().Context()

	a, err := h.Artists.GetByUserID(ctx, uid)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no artist profile linked to this account"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	bookings, err := h.Bookings.ListByArtist(ctx, a.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": bookings})
}

// resolvePremiumFor mirrors PublicHandler.resolvePremium for the
// dashboard's repositories.
func (h *DashboardHandler) resolvePremiumFor(c echo.Context, artistID string) premium.Resolution {
	sub, err := h.Subs.GetByArtist(c.Request().Context(), artistID)
	if err != nil {
		return premium.Resolve(nil, time.Now().UTC())
	}
	return premium.Resolve(&sub, time.Now().UTC())
}
