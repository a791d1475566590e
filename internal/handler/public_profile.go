package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/artist-directory/internal/model"
	"github.com/iliyamo/artist-directory/internal/premium"
	"github.com/iliyamo/artist-directory/internal/repository"
	"github.com/iliyamo/artist-directory/internal/tags"
	"github.com/iliyamo/artist-directory/internal/visits"
)

// profileResp is the public shape of an artist profile. Tag columns
// are returned as lists; genres additionally pass through the
// canonical mapping so near-duplicate variants collapse for display.
type profileResp struct {
	ID           string             `json:"id"`
	Slug         string             `json:"slug"`
	Nombre       string             `json:"nombre_artistico"`
	Ciudad       *string            `json:"ciudad,omitempty"`
	Pais         *string            `json:"pais,omitempty"`
	Foto         *string            `json:"foto,omitempty"`
	Portada      *string            `json:"portada,omitempty"`
	BioCorta     *string            `json:"bio_corta,omitempty"`
	BioLarga     *string            `json:"bio_larga,omitempty"`
	Generos      []string           `json:"generos"`
	Climas       []string           `json:"climas"`
	TiposEventos []string           `json:"tipos_eventos"`
	Musica       []model.MediaEntry `json:"musica"`
	Videos       []model.MediaEntry `json:"videos"`
	Highlights   *string            `json:"highlights,omitempty"`
	Email        *string            `json:"email,omitempty"`
	Whatsapp     *string            `json:"whatsapp,omitempty"`
	Instagram    *string            `json:"instagram,omitempty"`
	Tiktok       *string            `json:"tiktok,omitempty"`
	Youtube      *string            `json:"youtube,omitempty"`
	Metricas     metricasPart       `json:"metricas"`
	Tier         string             `json:"tier"`
	IsPremium    bool               `json:"is_premium"`
	Badge        bool               `json:"badge"`
}

type metricasPart struct {
	VisitasTotal uint64 `json:"visitas_total"`
	VisitasMes   uint64 `json:"visitas_mes"`
}

// GetArtist returns one public profile by slug and records the visit.
// Visit counting is strictly best-effort: it runs detached from the
// request and a failure only produces a log line, never an error for
// the viewer.
func (h *PublicHandler) GetArtist(c echo.Context) error {
	ctx := c.Request().Context()
	slug := c.Param("slug")
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid slug"})
	}

	a, err := h.Artists.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrArtistNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "artist not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}

	// Count the view without blocking or failing the response.
	now := time.Now().UTC()
	go func(id string) {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := h.Artists.RecordVisit(ctx, id, now); err != nil {
			log.Printf("visit count failed for artist %s: %v", id, err)
		}
	}(a.ID)

	// Reflect this view in the response so the counters the viewer
	// sees already include it; the row catches up in the background.
	m := visits.Apply(visits.Metrics{
		VisitasTotal:    a.VisitasTotal,
		VisitasMes:      a.VisitasMes,
		UltimaVisita:    a.UltimaVisita,
		MesUltimaVisita: a.MesUltimaVisita,
	}, now)
	a.VisitasTotal, a.VisitasMes = m.VisitasTotal, m.VisitasMes
	a.UltimaVisita, a.MesUltimaVisita = m.UltimaVisita, m.MesUltimaVisita

	// Tier lookup failures degrade silently to free.
	res := h.resolvePremium(ctx, a.ID)

	return c.JSON(http.StatusOK, buildProfile(a, res))
}

// resolvePremium loads an artist's subscription row and resolves the
// effective tier. Any storage failure is logged and resolved as free.
func (h *PublicHandler) resolvePremium(ctx context.Context, artistID string) premium.Resolution {
	sub, err := h.Subs.GetByArtist(ctx, artistID)
	if err != nil {
		if err != repository.ErrNoSubscription {
			log.Printf("subscription lookup failed for artist %s: %v", artistID, err)
		}
		return premium.Resolve(nil, time.Now().UTC())
	}
	return premium.Resolve(&sub, time.Now().UTC())
}

func buildProfile(a model.Artist, res premium.Resolution) profileResp {
	p := profileResp{
		ID: a.ID, Slug: a.Slug, Nombre: a.NombreArtistico,
		Ciudad: a.Ciudad, Pais: a.Pais, Foto: a.Foto, Portada: a.Portada,
		BioCorta: a.BioCorta, BioLarga: a.BioLarga,
		Generos:      []string{},
		Climas:       []string{},
		TiposEventos: []string{},
		Musica:       a.MusicEntries(),
		Videos:       a.VideoEntries(),
		Highlights:   a.Highlights,
		Email:        a.Email, Whatsapp: a.Whatsapp, Instagram: a.Instagram,
		Tiktok: a.Tiktok, Youtube: a.Youtube,
		Metricas:  metricasPart{VisitasTotal: a.VisitasTotal, VisitasMes: a.VisitasMes},
		Tier:      string(res.Tier),
		IsPremium: res.IsPremium,
		Badge:     premium.Has(res.Features, "badge"),
	}
	if a.Generos != nil {
		p.Generos = tags.CanonicalGenres(tags.Split(*a.Generos))
	}
	if a.Climas != nil {
		p.Climas = tags.Split(*a.Climas)
	}
	if a.TiposEventos != nil {
		p.TiposEventos = tags.Split(*a.TiposEventos)
	}
	return p
}
