package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/artist-directory/internal/model"
)

// ArtistRepo provides access to the `artists` table.
type ArtistRepo struct{ DB *sql.DB }

func NewArtistRepo(db *sql.DB) *ArtistRepo { return &ArtistRepo{DB: db} }

// artistColumns is the canonical select list; scanArtist must stay in
// the same order.
const artistColumns = `id, slug, nombre_artistico, ciudad, pais, foto, portada,
	bio_corta, bio_larga, generos, climas, tipos_eventos,
	musica_1_titu, musica_1_des, musica_1_link,
	musica_2_titu, musica_2_des, musica_2_link,
	musica_3_titu, musica_3_des, musica_3_link,
	video_1_titulo, video_1_link, video_2_titulo, video_2_link,
	highlights, email, whatsapp, instagram, tiktok, youtube,
	visitas_total, visitas_mes, ultima_visita, mes_ultima_visita,
	user_id, created_at, updated_at`

type rowScanner interface{ Scan(dest ...any) error }

func scanArtist(row rowScanner) (model.Artist, error) {
	var (
		a      model.Artist
		ultima sql.NullTime
		mes    sql.NullInt16
		userID sql.NullInt64
	)
	err := row.Scan(
		&a.ID, &a.Slug, &a.NombreArtistico, &a.Ciudad, &a.Pais, &a.Foto, &a.Portada,
		&a.BioCorta, &a.BioLarga, &a.Generos, &a.Climas, &a.TiposEventos,
		&a.Musica1Titu, &a.Musica1Des, &a.Musica1Link,
		&a.Musica2Titu, &a.Musica2Des, &a.Musica2Link,
		&a.Musica3Titu, &a.Musica3Des, &a.Musica3Link,
		&a.Video1Titulo, &a.Video1Link, &a.Video2Titulo, &a.Video2Link,
		&a.Highlights, &a.Email, &a.Whatsapp, &a.Instagram, &a.Tiktok, &a.Youtube,
		&a.VisitasTotal, &a.VisitasMes, &ultima, &mes,
		&userID, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return model.Artist{}, err
	}
	if ultima.Valid {
		t := ultima.Time
		a.UltimaVisita = &t
	}
	if mes.Valid {
		m := uint8(mes.Int16)
		a.MesUltimaVisita = &m
	}
	if userID.Valid {
		u := uint64(userID.Int64)
		a.UserID = &u
	}
	return a, nil
}

// Create inserts a new artist profile and returns its generated uuid.
// The profile goes live immediately; counters start at zero. A taken
// slug surfaces as ErrSlugExists.
func (r *ArtistRepo) Create(ctx context.Context, a model.Artist) (string, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO artists (id, slug, nombre_artistico, ciudad, pais, foto, portada,
			bio_corta, bio_larga, generos, climas, tipos_eventos,
			musica_1_titu, musica_1_des, musica_1_link,
			musica_2_titu, musica_2_des, musica_2_link,
			musica_3_titu, musica_3_des, musica_3_link,
			video_1_titulo, video_1_link, video_2_titulo, video_2_link,
			highlights, email, whatsapp, instagram, tiktok, youtube,
			visitas_total, visitas_mes, user_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,0,0,?)`,
		id, a.Slug, a.NombreArtistico, a.Ciudad, a.Pais, a.Foto, a.Portada,
		a.BioCorta, a.BioLarga, a.Generos, a.Climas, a.TiposEventos,
		a.Musica1Titu, a.Musica1Des, a.Musica1Link,
		a.Musica2Titu, a.Musica2Des, a.Musica2Link,
		a.Musica3Titu, a.Musica3Des, a.Musica3Link,
		a.Video1Titulo, a.Video1Link, a.Video2Titulo, a.Video2Link,
		a.Highlights, a.Email, a.Whatsapp, a.Instagram, a.Tiktok, a.Youtube,
		a.UserID)
	if err != nil {
		// 1062 = MySQL duplicate entry; the only unique key besides the
		// primary key is the slug.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return "", ErrSlugExists
		}
		return "", err
	}
	return id, nil
}

// GetBySlug fetches an artist by its public slug.
func (r *ArtistRepo) GetBySlug(ctx context.Context, slug string) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE slug=? LIMIT 1", slug)
	a, err := scanArtist(row)
	if err == sql.ErrNoRows {
		return model.Artist{}, ErrArtistNotFound
	}
	return a, err
}

// GetByID fetches an artist by uuid.
func (r *ArtistRepo) GetByID(ctx context.Context, id string) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE id=? LIMIT 1", id)
	a, err := scanArtist(row)
	if err == sql.ErrNoRows {
		return model.Artist{}, ErrArtistNotFound
	}
	return a, err
}

// GetByUserID fetches the artist owned by an account.
func (r *ArtistRepo) GetByUserID(ctx context.Context, userID uint64) (model.Artist, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+artistColumns+" FROM artists WHERE user_id=? LIMIT 1", userID)
	a, err := scanArtist(row)
	if err == sql.ErrNoRows {
		return model.Artist{}, ErrArtistNotFound
	}
	return a, err
}

// ProfileUpdate carries the dashboard-editable columns. Identity
// (id, slug), counters and ownership are deliberately absent: they
// are never writable through the self-service path.
type ProfileUpdate struct {
	NombreArtistico string
	Ciudad          *string
	Pais            *string
	Foto            *string
	Portada         *string
	BioCorta        *string
	BioLarga        *string
	Generos         *string
	Climas          *string
	TiposEventos    *string
	Musica1Titu     *string
	Musica1Des      *string
	Musica1Link     *string
	Musica2Titu     *string
	Musica2Des      *string
	Musica2Link     *string
	Musica3Titu     *string
	Musica3Des      *string
	Musica3Link     *string
	Video1Titulo    *string
	Video1Link      *string
	Video2Titulo    *string
	Video2Link      *string
	Highlights      *string
	Email           *string
	Whatsapp        *string
	Instagram       *string
	Tiktok          *string
	Youtube         *string
}

// UpdateProfile overwrites the editable columns of one artist.
func (r *ArtistRepo) UpdateProfile(ctx context.Context, id string, p ProfileUpdate) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE artists SET nombre_artistico=?, ciudad=?, pais=?, foto=?, portada=?,
			bio_corta=?, bio_larga=?, generos=?, climas=?, tipos_eventos=?,
			musica_1_titu=?, musica_1_des=?, musica_1_link=?,
			musica_2_titu=?, musica_2_des=?, musica_2_link=?,
			musica_3_titu=?, musica_3_des=?, musica_3_link=?,
			video_1_titulo=?, video_1_link=?, video_2_titulo=?, video_2_link=?,
			highlights=?, email=?, whatsapp=?, instagram=?, tiktok=?, youtube=?,
			updated_at=NOW()
		 WHERE id=?`,
		p.NombreArtistico, p.Ciudad, p.Pais, p.Foto, p.Portada,
		p.BioCorta, p.BioLarga, p.Generos, p.Climas, p.TiposEventos,
		p.Musica1Titu, p.Musica1Des, p.Musica1Link,
		p.Musica2Titu, p.Musica2Des, p.Musica2Link,
		p.Musica3Titu, p.Musica3Des, p.Musica3Link,
		p.Video1Titulo, p.Video1Link, p.Video2Titulo, p.Video2Link,
		p.Highlights, p.Email, p.Whatsapp, p.Instagram, p.Tiktok, p.Youtube,
		id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrArtistNotFound
	}
	return nil
}

// RecordVisit applies one profile view as a single conditional UPDATE:
// the total always increments, the month counter resets to 1 when the
// stored month number differs from now's month (NULL-safe, so a
// never-viewed profile also resets). Doing it in one statement keeps
// concurrent views from losing increments.
func (r *ArtistRepo) RecordVisit(ctx context.Context, id string, now time.Time) error {
	month := int(now.Month())
	_, err := r.DB.ExecContext(ctx,
		`UPDATE artists SET
			visitas_total = visitas_total + 1,
			visitas_mes = IF(mes_ultima_visita <=> ?, visitas_mes + 1, 1),
			mes_ultima_visita = ?,
			ultima_visita = ?
		 WHERE id=?`,
		month, month, now.UTC(), id)
	return err
}

// CountAll returns the number of artists on the platform.
func (r *ArtistRepo) CountAll(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM artists").Scan(&n)
	return n, err
}

// CountWithMoreMonthlyVisits returns how many artists rank above the
// given monthly visit count. Ranking position is this value plus one.
func (r *ArtistRepo) CountWithMoreMonthlyVisits(ctx context.Context, visitasMes uint64) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM artists WHERE visitas_mes > ?", visitasMes).Scan(&n)
	return n, err
}
