package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/premium"
	"github.com/iliyamo/artist-directory/internal/repository"
)

// AdminHandler covers the administrative surface: a roster overview
// and manual premium management. Routes are mounted behind the ADMIN
// role check.
type AdminHandler struct {
	Artists *repository.ArtistRepo
	Subs    *repository.SubscriptionRepo
}

func NewAdminHandler(a *repository.ArtistRepo, s *repository.SubscriptionRepo) *AdminHandler {
	return &AdminHandler{Artists: a, Subs: s}
}

// adminArtistItem is one roster row. It carries the operational fields
// an admin cares about, including the resolved tier.
type adminArtistItem struct {
	ID         string  `json:"id"`
	Slug       string  `json:"slug"`
	Nombre     string  `json:"nombre_artistico"`
	Ciudad     *string `json:"ciudad,omitempty"`
	Email      *string `json:"email,omitempty"`
	VisitasMes uint64  `json:"visitas_mes"`
	Tier       string  `json:"tier"`
	IsPremium  bool    `json:"is_premium"`
}

// ListArtists returns a page of the full roster, same ordering as the
// public catalog, with the resolved tier per artist attached.
func (h *AdminHandler) ListArtists(c echo.Context) error {
	ctx := c.Request().Context()

	q := repository.ArtistSearchQuery{Page: 1, PageSize: 50}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		q.Page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && ps > 0 && ps <= 200 {
		q.PageSize = ps
	}

	rows, total, err := h.Artists.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	now := time.Now().UTC()
	items := make([]adminArtistItem, 0, len(rows))
	for _, r := range rows {
		res := premium.Resolve(nil, now)
		if sub, err := h.Subs.GetByArtist(ctx, r.ID); err == nil {
			res = premium.Resolve(&sub, now)
		}
		items = append(items, adminArtistItem{
			ID: r.ID, Slug: r.Slug, Nombre: r.Nombre,
			Ciudad: r.Ciudad, Email: r.Email,
			VisitasMes: r.VisitasMes,
			Tier:       string(res.Tier),
			IsPremium:  res.IsPremium,
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}

type activatePremiumReq struct {
	Tier string `json:"tier"`
	Days int    `json:"days"`
}

// ActivatePremium upserts an active subscription for an artist. The
// tier defaults to premium and the window to 30 days from now.
func (h *AdminHandler) ActivatePremium(c echo.Context) error {
	artistID := c.Param("id")
	if artistID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}

	var req activatePremiumReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	tier := premium.Tier(req.Tier)
	if req.Tier == "" {
		tier = premium.TierPremium
	}
	if !premium.ValidTier(tier) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown tier"})
	}
	days := req.Days
	if days <= 0 {
		days = 30
	}

	ctx := c.Request().Context()
	if _, err := h.Artists.GetByID(ctx, artistID); err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	now := time.Now().UTC()
	expires := now.AddDate(0, 0, days)
	if err := h.Subs.Activate(ctx, artistID, string(tier), now, &expires); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not activate subscription"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"artist_id":  artistID,
		"tier":       tier,
		"status":     premium.StatusActive,
		"expires_at": expires,
	})
}

// CancelPremium marks an artist's subscription as cancelled. The row
// stays for history; tier resolution treats it as free from now on.
func (h *AdminHandler) CancelPremium(c echo.Context) error {
	artistID := c.Param("id")
	if artistID == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid artist id"})
	}

	err := h.Subs.Cancel(c.Request().Context(), artistID)
	if err != nil {
		if err == repository.ErrNoSubscription {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist has no subscription"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not cancel subscription"})
	}

	return c.JSON(http.StatusOK, echo.Map{"artist_id": artistID, "status": premium.StatusCancelled})
}
