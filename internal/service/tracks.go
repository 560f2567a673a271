package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// TrackInput — данные нового трека.
type TrackInput struct {
	Title  string
	Artist string
	Genre  string
}

// CreateTrack создаёт трек владельца ownerID (subject access-токена).
func (s *Service) CreateTrack(ctx context.Context, ownerID int64, in TrackInput) (*models.Track, error) {
	const op = "service.tracks.CreateTrack"

	lg := log.From(ctx).With("op", op, "user_id", ownerID)

	title := strings.TrimSpace(in.Title)
	if title == "" {
		lg.Warn("create_track_invalid_argument")

		return nil, fmt.Errorf("%s: %w", op, validation.New("title is required"))
	}

	now := s.now().UTC()
	track := &models.Track{
		Title:     title,
		Artist:    strings.TrimSpace(in.Artist),
		Genre:     strings.TrimSpace(in.Genre),
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
		Links:     []models.TrackLink{},
	}

	if err := s.storage.SaveTrack(ctx, track); err != nil {
		if errors.Is(err, storage.ErrReferenceNotFound) {
			lg.Warn("create_track_owner_not_found")

			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		lg.Error("create_track_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("create_track_ok", slog.Int64("track_id", track.ID))

	return track, nil
}

// Track возвращает трек с его ссылками.
func (s *Service) Track(ctx context.Context, id int64) (*models.Track, error) {
	const op = "service.tracks.Track"

	track, err := s.trackByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tracks := []models.Track{*track}
	if err := s.attachLinks(ctx, tracks); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &tracks[0], nil
}

// UpdateTrack частично обновляет трек: nil-поля патча не меняются.
func (s *Service) UpdateTrack(ctx context.Context, id int64, patch models.TrackPatch) (*models.Track, error) {
	const op = "service.tracks.UpdateTrack"

	lg := log.From(ctx).With("op", op, "track_id", id)

	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return nil, fmt.Errorf("%s: %w", op, validation.New("title must be a non-empty string"))
	}

	track, err := s.storage.UpdateTrack(ctx, id, patch)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTrackNotFound)
		}

		lg.Error("update_track_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tracks := []models.Track{*track}
	if err := s.attachLinks(ctx, tracks); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("update_track_ok")

	return &tracks[0], nil
}

// DeleteTrack удаляет трек (ссылки удаляются каскадно) и возвращает удалённую запись.
func (s *Service) DeleteTrack(ctx context.Context, id int64) (*models.Track, error) {
	const op = "service.tracks.DeleteTrack"

	lg := log.From(ctx).With("op", op, "track_id", id)

	track, err := s.Track(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteTrack(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrTrackNotFound)
		}

		lg.Error("delete_track_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("delete_track_ok")

	return track, nil
}

// ListTracks возвращает страницу треков со ссылками. Пустой фильтр — все треки,
// иначе поиск подстроки без учёта регистра по непустым полям (AND).
func (s *Service) ListTracks(ctx context.Context, f models.TrackFilter, p pagination.Params) (pagination.Page[models.Track], error) {
	const op = "service.tracks.ListTracks"

	f = models.TrackFilter{
		Title:  strings.TrimSpace(f.Title),
		Artist: strings.TrimSpace(f.Artist),
		Genre:  strings.TrimSpace(f.Genre),
	}

	query := func(ctx context.Context, w models.Window) ([]models.Track, int64, error) {
		return s.storage.ListTracks(ctx, f, w)
	}

	page, err := pagination.Paginate(ctx, query, p)
	if err != nil {
		log.From(ctx).Error("list_tracks_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return pagination.Page[models.Track]{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachLinks(ctx, page.Data); err != nil {
		return pagination.Page[models.Track]{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

func (s *Service) trackByID(ctx context.Context, id int64) (*models.Track, error) {
	track, err := s.storage.TrackByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrTrackNotFound
		}

		return nil, err
	}

	return track, nil
}

// attachLinks заполняет Links у треков одним запросом на всю страницу.
// У трека без ссылок Links — пустой срез, не nil.
func (s *Service) attachLinks(ctx context.Context, tracks []models.Track) error {
	if len(tracks) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(tracks))
	for _, t := range tracks {
		ids = append(ids, t.ID)
	}

	byTrack, err := s.storage.LinksByTrackIDs(ctx, ids)
	if err != nil {
		return err
	}

	for i := range tracks {
		links := byTrack[tracks[i].ID]
		if links == nil {
			links = []models.TrackLink{}
		}
		tracks[i].Links = links
	}

	return nil
}
