package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
)

const trackColumns = `id, title, artist, genre, user_id, created_at, updated_at`

func scanTrack(row pgx.Row) (models.Track, error) {
	var t models.Track
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Artist,
		&t.Genre,
		&t.UserID,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	return t, err
}

func scanTrackRows(rows pgx.Rows) (models.Track, error) { return scanTrack(rows) }

// SaveTrack создает трек и заполняет track.ID.
func (s *Storage) SaveTrack(ctx context.Context, track *models.Track) error {
	const op = "storage.postgres.SaveTrack"

	query := `
		INSERT INTO tracks(title, artist, genre, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := s.db.QueryRow(ctx, query,
		track.Title,
		track.Artist,
		track.Genre,
		track.UserID,
		track.CreatedAt,
		track.UpdatedAt,
	).Scan(&track.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return nil
}

// TrackByID находит трек по ID (без ссылок).
func (s *Storage) TrackByID(ctx context.Context, id int64) (*models.Track, error) {
	const op = "storage.postgres.TrackByID"

	query := `SELECT ` + trackColumns + ` FROM tracks WHERE id = $1`

	t, err := scanTrack(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return &t, nil
}

// UpdateTrack применяет частичное обновление: nil-поля патча не меняются.
func (s *Storage) UpdateTrack(ctx context.Context, id int64, patch models.TrackPatch) (*models.Track, error) {
	const op = "storage.postgres.UpdateTrack"

	query := `
		UPDATE tracks
		SET title      = COALESCE($2, title),
		    artist     = COALESCE($3, artist),
		    genre      = COALESCE($4, genre),
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + trackColumns

	t, err := scanTrack(s.db.QueryRow(ctx, query, id, patch.Title, patch.Artist, patch.Genre))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapErr(err))
	}

	return &t, nil
}

// DeleteTrack удаляет трек; его ссылки удаляются каскадно.
func (s *Storage) DeleteTrack(ctx context.Context, id int64) error {
	const op = "storage.postgres.DeleteTrack"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM tracks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, mapErr(err))
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListTracks возвращает страницу треков; непустые поля фильтра сужают
// выборку через ILIKE и объединяются по AND.
func (s *Storage) ListTracks(ctx context.Context, f models.TrackFilter, w models.Window) ([]models.Track, int64, error) {
	const op = "storage.postgres.ListTracks"

	var (
		conds []string
		args  []any
	)
	add := func(column, value string) {
		if value == "" {
			return
		}
		args = append(args, "%"+escapeLike(value)+"%")
		conds = append(conds, fmt.Sprintf("%s ILIKE $%d", column, len(args)))
	}
	add("title", f.Title)
	add("artist", f.Artist)
	add("genre", f.Genre)

	where := ""
	if len(conds) > 0 {
		where = " WHERE " + strings.Join(conds, " AND ")
	}

	tracks, total, err := selectPage(ctx, s,
		`SELECT count(*) FROM tracks`+where,
		`SELECT `+trackColumns+` FROM tracks`+where+` ORDER BY id`,
		w, scanTrackRows, args...,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return tracks, total, nil
}

// TracksByUser возвращает страницу треков владельца userID.
func (s *Storage) TracksByUser(ctx context.Context, userID int64, w models.Window) ([]models.Track, int64, error) {
	const op = "storage.postgres.TracksByUser"

	tracks, total, err := selectPage(ctx, s,
		`SELECT count(*) FROM tracks WHERE user_id = $1`,
		`SELECT `+trackColumns+` FROM tracks WHERE user_id = $1 ORDER BY id`,
		w, scanTrackRows, userID,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	return tracks, total, nil
}

// escapeLike экранирует спецсимволы шаблона LIKE (обратный слэш — escape по умолчанию).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
