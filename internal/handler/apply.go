package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/model"
	"github.com/iliyamo/artist-directory/internal/repository"
	"github.com/iliyamo/artist-directory/internal/tags"
)

// applyReq mirrors the public application form. Tag fields arrive as
// comma-joined strings, exactly as they are stored.
type applyReq struct {
	NombreArtistico string `json:"nombre_artistico"`
	Ciudad          string `json:"ciudad"`
	Pais            string `json:"pais"`
	Foto            string `json:"foto"`
	Portada         string `json:"portada"`
	BioCorta        string `json:"bio_corta"`
	BioLarga        string `json:"bio_larga"`
	Generos         string `json:"generos"`
	Climas          string `json:"climas"`
	TiposEventos    string `json:"tipos_eventos"`
	Musica1Titu     string `json:"musica_1_titu"`
	Musica1Des      string `json:"musica_1_des"`
	Musica1Link     string `json:"musica_1_link"`
	Musica2Titu     string `json:"musica_2_titu"`
	Musica2Des      string `json:"musica_2_des"`
	Musica2Link     string `json:"musica_2_link"`
	Musica3Titu     string `json:"musica_3_titu"`
	Musica3Des      string `json:"musica_3_des"`
	Musica3Link     string `json:"musica_3_link"`
	Video1Titulo    string `json:"video_1_titulo"`
	Video1Link      string `json:"video_1_link"`
	Video2Titulo    string `json:"video_2_titulo"`
	Video2Link      string `json:"video_2_link"`
	Highlights      string `json:"highlights"`
	Email           string `json:"email"`
	Whatsapp        string `json:"whatsapp"`
	Instagram       string `json:"instagram"`
	Tiktok          string `json:"tiktok"`
	Youtube         string `json:"youtube"`
}

// cleanOrNull trims a form value and maps empty strings to NULL so
// optional columns are stored consistently.
func cleanOrNull(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

// Apply handles the public application form. The profile goes live
// immediately (no moderation gate); the slug is derived from the
// artist name once, here, and never recomputed afterwards.
func (h *PublicHandler) Apply(c echo.Context) error {
	var req applyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	req.NombreArtistico = strings.TrimSpace(req.NombreArtistico)
	if req.NombreArtistico == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre_artistico required"})
	}
	if strings.TrimSpace(req.Ciudad) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "ciudad required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email required"})
	}

	slug := tags.Slug(req.NombreArtistico)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "nombre_artistico yields empty slug"})
	}

	a := artistFromApply(req, slug)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Artists.Create(ctx, a)
	if err != nil {
		if err == repository.ErrSlugExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "an artist with that name already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create artist failed"})
	}

	return c.JSON(http.StatusCreated, echo.Map{"id": id, "slug": slug})
}

// artistFromApply maps a submitted form onto a new unowned profile.
func artistFromApply(req applyReq, slug string) model.Artist {
	return model.Artist{
		Slug:            slug,
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
}
