package model

import "time"

// Artist mirrors the `artists` table. Column names are kept in the
// catalog's original Spanish because they are the storage and wire
// contract shared with the existing frontend.
//
// The tag columns (Generos, Climas, TiposEventos) hold comma-joined
// strings; the tags package is the only code that interprets that
// encoding. Nullable columns are pointers.
//
// Fields:
//  ID              – uuid primary key (artists.id).
//  Slug            – unique URL identifier, derived once at creation.
//  NombreArtistico – display name.
//  Ciudad, Pais    – location.
//  Foto, Portada   – avatar and cover image URLs (opaque strings).
//  BioCorta, BioLarga – short and long bios.
//  Generos, Climas, TiposEventos – comma-joined tag columns.
//  Musica1..3      – up to three music entries (title/description/link).
//  Video1..2       – up to two video entries (title/link).
//  Highlights      – free-text career highlights.
//  Email..Youtube  – contact block, each independently nullable.
//  VisitasTotal    – all-time profile views.
//  VisitasMes      – views in the current calendar month.
//  UltimaVisita    – timestamp of the last view (nullable).
//  MesUltimaVisita – month number (1-12) of the last view (nullable).
//  UserID          – owning account, null until the artist claims the profile.
type Artist struct {
	ID              string  // artists.id (uuid)
	Slug            string  // artists.slug
	NombreArtistico string  // artists.nombre_artistico
	Ciudad          *string // artists.ciudad
	Pais            *string // artists.pais
	Foto            *string // artists.foto
	Portada         *string // artists.portada
	BioCorta        *string // artists.bio_corta
	BioLarga        *string // artists.bio_larga

	Generos      *string // artists.generos (comma-joined)
	Climas       *string // artists.climas (comma-joined)
	TiposEventos *string // artists.tipos_eventos (comma-joined)

	Musica1Titu *string // artists.musica_1_titu
	Musica1Des  *string // artists.musica_1_des
	Musica1Link *string // artists.musica_1_link
	Musica2Titu *string // artists.musica_2_titu
	Musica2Des  *string // artists.musica_2_des
	Musica2Link *string // artists.musica_2_link
	Musica3Titu *string // artists.musica_3_titu
	Musica3Des  *string // artists.musica_3_des
	Musica3Link *string // artists.musica_3_link

	Video1Titulo *string // artists.video_1_titulo
	Video1Link   *string // artists.video_1_link
	Video2Titulo *string // artists.video_2_titulo
	Video2Link   *string // artists.video_2_link

	Highlights *string // artists.highlights

	Email     *string // artists.email
	Whatsapp  *string // artists.whatsapp
	Instagram *string // artists.instagram
	Tiktok    *string // artists.tiktok
	Youtube   *string // artists.youtube

	VisitasTotal    uint64     // artists.visitas_total
	VisitasMes      uint64     // artists.visitas_mes
	UltimaVisita    *time.Time // artists.ultima_visita (nullable)
	MesUltimaVisita *uint8     // artists.mes_ultima_visita (1-12, nullable)

	UserID    *uint64   // artists.user_id (nullable)
	CreatedAt time.Time // artists.created_at
	UpdatedAt time.Time // artists.updated_at
}

// MediaEntry is one music or video item assembled from the flat
// columns. An entry exists when at least one of its fields is set.
type MediaEntry struct {
	Titulo      string  `json:"titulo"`
	Descripcion *string `json:"descripcion,omitempty"`
	Link        *string `json:"link,omitempty"`
}

// MusicEntries collapses the musica_* columns into existing entries,
// preserving slot order.
func (a *Artist) MusicEntries() []MediaEntry {
	slots := [][3]*string{
		{a.Musica1Titu, a.Musica1Des, a.Musica1Link},
		{a.Musica2Titu, a.Musica2Des, a.Musica2Link},
		{a.Musica3Titu, a.Musica3Des, a.Musica3Link},
	}
	out := []MediaEntry{}
	for _, s := range slots {
		if s[0] == nil && s[1] == nil && s[2] == nil {
			continue
		}
		e := MediaEntry{Descripcion: s[1], Link: s[2]}
		if s[0] != nil {
			e.Titulo = *s[0]
		}
		out = append(out, e)
	}
	return out
}

// VideoEntries collapses the video_* columns into existing entries.
func (a *Artist) VideoEntries() []MediaEntry {
	slots := [][2]*string{
		{a.Video1Titulo, a.Video1Link},
		{a.Video2Titulo, a.Video2Link},
	}
	out := []MediaEntry{}
	for _, s := range slots {
		if s[0] == nil && s[1] == nil {
			continue
		}
		e := MediaEntry{Link: s[1]}
		if s[0] != nil {
			e.Titulo = *s[0]
		}
		out = append(out, e)
	}
	return out
}
