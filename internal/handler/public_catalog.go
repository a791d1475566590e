// Package handler exposes HTTP handlers for both authenticated and
// public endpoints. This file defines the public catalog API: anyone
// can browse and filter artists without authentication. Only fields
// meant for public display are returned.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/repository"
	"github.com/iliyamo/artist-directory/internal/tags"
)

// PublicHandler aggregates repositories needed for unauthenticated
// browsing and booking.
type PublicHandler struct {
	Artists *repository.ArtistRepo
	Subs    *repository.SubscriptionRepo
}

// catalogItem is one card in the catalog list. Genres are returned as
// a canonical de-duplicated list even though storage keeps the raw
// comma-joined column.
type catalogItem struct {
	ID         string   `json:"id"`
	Slug       string   `json:"slug"`
	Nombre     string   `json:"nombre_artistico"`
	Ciudad     *string  `json:"ciudad,omitempty"`
	Pais       *string  `json:"pais,omitempty"`
	Foto       *string  `json:"foto,omitempty"`
	BioCorta   *string  `json:"bio_corta,omitempty"`
	Generos    []string `json:"generos"`
	VisitasMes uint64   `json:"visitas_mes"`
}

// ListArtists returns a page of the catalog, most visited this month
// first. Supported query params: genre (substring match), city
// (exact), page, page_size.
func (h *PublicHandler) ListArtists(c echo.Context) error {
	ctx := c.Request().Context()

	q := repository.ArtistSearchQuery{
		Genre:    c.QueryParam("genre"),
		City:     c.QueryParam("city"),
		Page:     1,
		PageSize: 20,
	}
	if p, err := strconv.Atoi(c.QueryParam("page")); err == nil && p > 0 {
		q.Page = p
	}
	if ps, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && ps > 0 && ps <= 100 {
		q.PageSize = ps
	}

	rows, total, err := h.Artists.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	items := make([]catalogItem, 0, len(rows))
	for _, r := range rows {
		it := catalogItem{
			ID: r.ID, Slug: r.Slug, Nombre: r.Nombre,
			Ciudad: r.Ciudad, Pais: r.Pais, Foto: r.Foto, BioCorta: r.BioCorta,
			Generos:    []string{},
			VisitasMes: r.VisitasMes,
		}
		if r.Generos != nil {
			it.Generos = tags.CanonicalGenres(tags.Split(*r.Generos))
		}
		items = append(items, it)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}

// GetFilterOptions returns the distinct genre and city values present
// in the catalog so clients can populate filter dropdowns.
func (h *PublicHandler) GetFilterOptions(c echo.Context) error {
	genres, cities, err := h.Artists.FilterOptions(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"genres": genres,
		"cities": cities,
	})
}
