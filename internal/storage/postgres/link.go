package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
)

const linkColumns = `id, link_type, link_url, track_id, user_id, created_at, updated_at`

func scanLink(row pgx.Row) (models.TrackLink, error) {
	var l models.TrackLink
	err := row.Scan(
		&l.ID,
		&l.LinkType,
		&l.LinkURL,
		&l.TrackID,
		&l.UserID,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	return l, err
}

func scanLinkRows(rows pgx.Rows) (models.TrackLink, error) { return scanLink(rows) }

// SaveLink создает ссылку и заполняет link.ID.
// Несуществующий track_id → storage.ErrReferenceNotFound.
func (s *Storage) SaveLink(ctx context.Context, link *models.TrackLink) error {
	const op = "storage.postgres.SaveLink"

	query := `
		INSERT INTO track_links(link_type, link_url, track_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		link.LinkType,
		link.LinkURL,
		link.TrackID,
		link.UserID,
		link.CreatedAt,
		link.UpdatedAt,
	).Scan(&link.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// LinkByID находит ссылку по ID.
func (s *Storage) LinkByID(ctx context.Context, id int64) (*models.TrackLink, error) {
	const op = "storage.postgres.LinkByID"

	query := `SELECT ` + linkColumns + ` FROM track_links WHERE id = $1`

	l, err := scanLink(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return &l, nil
}

// UpdateLink применяет частичное обновление ссылки.
func (s *Storage) UpdateLink(ctx context.Context, id int64, patch models.LinkPatch) (*models.TrackLink, error) {
	const op = "storage.postgres.UpdateLink"

	query := `
		UPDATE track_links
		SET link_type  = COALESCE($2, link_type),
		    link_url   = COALESCE($3, link_url),
		    track_id   = COALESCE($4, track_id),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + linkColumns

	l, err := scanLink(s.db.QueryRow(ctx, query, id, patch.LinkType, patch.LinkURL, patch.TrackID))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return &l, nil
}

// DeleteLink удаляет ссылку по ID.
func (s *Storage) DeleteLink(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteLink"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM track_links WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListLinks возвращает страницу ссылок; q != "" ищет подстроку в link_type или link_url.
func (s *Storage) ListLinks(ctx context.Context, q string, w models.Window) ([]models.TrackLink, int64, error) {
	const op = "storage.postgres.ListLinks"

	var (
		where string
		args  []any
	)
	if q != "" {
		where = ` WHERE link_type ILIKE $1 OR link_url ILIKE $1`
		args = append(args, "%"+escapeLike(q)+"%")
	}

	links, total, err := selectPage(ctx, s,
		`SELECT count(*) FROM track_links`+where,
		`SELECT `+linkColumns+` FROM track_links`+where+` ORDER BY id`,
		w, scanLinkRows, args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return links, total, nil
}

// LinksByTrack возвращает страницу ссылок трека trackID.
func (s *Storage) LinksByTrack(ctx context.Context, trackID int64, w models.Window) ([]models.TrackLink, int64, error) {
	const op = "storage.postgres.LinksByTrack"

	links, total, err := selectPage(ctx, s,
		`SELECT count(*) FROM track_links WHERE track_id = $1`,
		`SELECT `+linkColumns+` FROM track_links WHERE track_id = $1 ORDER BY id`,
		w, scanLinkRows, trackID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return links, total, nil
}

// LinksByTrackIDs возвращает все ссылки набора треков, сгруппированные по track_id.
// Треки без ссылок в карте отсутствуют.
func (s *Storage) LinksByTrackIDs(ctx context.Context, trackIDs []int64) (map[int64][]models.TrackLink, error) {
	const op = "storage.postgres.LinksByTrackIDs"

	out := make(map[int64][]models.TrackLink, len(trackIDs))
	if len(trackIDs) == 0 {
		return out, nil
	}

	query := `SELECT ` + linkColumns + ` FROM track_links WHERE track_id = ANY($1) ORDER BY id`

	rows, err := s.db.Query(ctx, query, trackIDs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out[l.TrackID] = append(out[l.TrackID], l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}
