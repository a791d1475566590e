package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/iliyamo/artist-directory/internal/tags"
)

// ArtistSearchQuery defines filters & pagination for browsing the
// public catalog.
type ArtistSearchQuery struct {
	Genre    string // substring match against the generos column
	City     string // exact match against ciudad
	Page     int
	PageSize int
}

// CatalogRow is the subset of artist columns shown on catalog cards.
type CatalogRow struct {
	ID           string  `json:"id"`
	Slug         string  `json:"slug"`
	Nombre       string  `json:"nombre_artistico"`
	Ciudad       *string `json:"ciudad"`
	Pais         *string `json:"pais"`
	Foto         *string `json:"foto"`
	BioCorta     *string `json:"bio_corta"`
	Generos      *string `json:"-"`
	Email        *string `json:"-"`
	VisitasMes   uint64  `json:"visitas_mes"`
	VisitasTotal uint64  `json:"visitas_total"`
}

// Search lists catalog rows ordered by monthly visits (most visited
// first, the catalog's only ranking signal) and returns the total
// count for pagination.
func (r *ArtistRepo) Search(ctx context.Context, q ArtistSearchQuery) ([]CatalogRow, int64, error) {
	where := []string{}
	args := []any{}

	if q.Genre != "" {
		where = append(where, "LOWER(generos) LIKE ?")
		args = append(args, "%"+strings.ToLower(q.Genre)+"%")
	}
	if q.City != "" {
		where = append(where, "ciudad = ?")
		args = append(args, q.City)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = strings.Join(where, " AND ")
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM artists WHERE "+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT id, slug, nombre_artistico, ciudad, pais, foto, bio_corta,
			generos, email, visitas_mes, visitas_total
		FROM artists
		WHERE ` + cond + `
		ORDER BY visitas_mes DESC, created_at DESC
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.DB.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]CatalogRow, 0, limit)
	for rows.Next() {
		var c CatalogRow
		if err := rows.Scan(&c.ID, &c.Slug, &c.Nombre, &c.Ciudad, &c.Pais,
			&c.Foto, &c.BioCorta, &c.Generos, &c.Email, &c.VisitasMes, &c.VisitasTotal); err != nil {
			return nil, 0, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

// FilterOptions returns the distinct genres and cities present in the
// catalog, for populating filter dropdowns. Genres come out of the
// comma-joined column, so each row is split and folded through the
// canonical mapping before collecting.
func (r *ArtistRepo) FilterOptions(ctx context.Context) (genres, cities []string, err error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT generos, ciudad FROM artists")
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	genreSet := map[string]string{} // folded key -> display form
	citySet := map[string]bool{}
	for rows.Next() {
		var generos, ciudad *string
		if err := rows.Scan(&generos, &ciudad); err != nil {
			return nil, nil, err
		}
		if generos != nil {
			for _, g := range tags.Split(*generos) {
				canon := tags.CanonicalGenre(g)
				if _, ok := genreSet[tags.Key(canon)]; !ok {
					genreSet[tags.Key(canon)] = canon
				}
			}
		}
		if ciudad != nil && strings.TrimSpace(*ciudad) != "" {
			citySet[strings.TrimSpace(*ciudad)] = true
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	for _, g := range genreSet {
		genres = append(genres, g)
	}
	for c := range citySet {
		cities = append(cities, c)
	}
	sort.Strings(genres)
	sort.Strings(cities)
	return genres, cities, nil
}
