package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// MaxSearchQueryLen — максимальная длина строки поиска ссылок (в символах).
const MaxSearchQueryLen = 100

// LinkInput — данные новой ссылки.
type LinkInput struct {
	LinkType string
	LinkURL  string
	TrackID  int64
}

// CreateLink создаёт ссылку на трек in.TrackID от имени ownerID.
func (s *Service) CreateLink(ctx context.Context, ownerID int64, in LinkInput) (*models.TrackLink, error) {
	const op = "service.links.CreateLink"

	lg := log.From(ctx).With("op", op, "user_id", ownerID, "track_id", in.TrackID)

	linkType := strings.TrimSpace(in.LinkType)
	linkURL := strings.TrimSpace(in.LinkURL)
	if linkType == "" || linkURL == "" {
		lg.Warn("create_link_invalid_argument")

		return nil, fmt.Errorf("%s: %w", op, validation.New("link_type and link_url must be non-empty strings"))
	}

	now := s.now().UTC()
	link := &models.TrackLink{
		LinkType:  linkType,
		LinkURL:   linkURL,
		TrackID:   in.TrackID,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.storage.SaveLink(ctx, link); err != nil {
		if errors.Is(err, storage.ErrReferenceNotFound) {
			lg.Warn("create_link_track_not_found")

			return nil, fmt.Errorf("%s: %w", op, ErrTrackNotFound)
		}

		lg.Error("create_link_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("create_link_ok", slog.Int64("link_id", link.ID))

	return link, nil
}

// Link возвращает ссылку по идентификатору.
func (s *Service) Link(ctx context.Context, id int64) (*models.TrackLink, error) {
	const op = "service.links.Link"

	link, err := s.storage.LinkByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrLinkNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return link, nil
}

// UpdateLink частично обновляет ссылку. Перенос на несуществующий трек → ErrTrackNotFound.
func (s *Service) UpdateLink(ctx context.Context, id int64, patch models.LinkPatch) (*models.TrackLink, error) {
	const op = "service.links.UpdateLink"

	lg := log.From(ctx).With("op", op, "link_id", id)

	if patch.LinkType != nil && strings.TrimSpace(*patch.LinkType) == "" {
		return nil, fmt.Errorf("%s: %w", op, validation.New("link_type must be a non-empty string"))
	}
	if patch.LinkURL != nil && strings.TrimSpace(*patch.LinkURL) == "" {
		return nil, fmt.Errorf("%s: %w", op, validation.New("link_url must be a non-empty string"))
	}

	link, err := s.storage.UpdateLink(ctx, id, patch)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrLinkNotFound)
		case errors.Is(err, storage.ErrReferenceNotFound):
			return nil, fmt.Errorf("%s: %w", op, ErrTrackNotFound)
		}

		lg.Error("update_link_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("update_link_ok")

	return link, nil
}

// DeleteLink удаляет ссылку и возвращает удалённую запись.
func (s *Service) DeleteLink(ctx context.Context, id int64) (*models.TrackLink, error) {
	const op = "service.links.DeleteLink"

	link, err := s.Link(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.storage.DeleteLink(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrLinkNotFound)
		}

		log.From(ctx).Error("delete_link_storage_error",
			slog.String("op", op),
			slog.Int64("link_id", id),
			slog.String("err", err.Error()),
		)

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("delete_link_ok", slog.String("op", op), slog.Int64("link_id", id))

	return link, nil
}

// TrackLink возвращает ссылку linkID, только если она принадлежит треку trackID.
func (s *Service) TrackLink(ctx context.Context, trackID, linkID int64) (*models.TrackLink, error) {
	const op = "service.links.TrackLink"

	if _, err := s.trackByID(ctx, trackID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	link, err := s.Link(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if link.TrackID != trackID {
		return nil, fmt.Errorf("%s: %w", op, ErrLinkNotFound)
	}

	return link, nil
}

// UpdateTrackLink обновляет тип/URL ссылки в пределах трека trackID.
// Перенос ссылки на другой трек через вложенный маршрут не поддерживается.
func (s *Service) UpdateTrackLink(ctx context.Context, trackID, linkID int64, patch models.LinkPatch) (*models.TrackLink, error) {
	const op = "service.links.UpdateTrackLink"

	if _, err := s.TrackLink(ctx, trackID, linkID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	patch.TrackID = nil

	link, err := s.UpdateLink(ctx, linkID, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return link, nil
}

// DeleteTrackLink удаляет ссылку в пределах трека trackID.
func (s *Service) DeleteTrackLink(ctx context.Context, trackID, linkID int64) (*models.TrackLink, error) {
	const op = "service.links.DeleteTrackLink"

	if _, err := s.TrackLink(ctx, trackID, linkID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	link, err := s.DeleteLink(ctx, linkID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return link, nil
}

// ListLinks возвращает страницу ссылок; непустой q ищет подстроку
// в link_type или link_url без учёта регистра. q длиннее MaxSearchQueryLen → ошибка валидации.
func (s *Service) ListLinks(ctx context.Context, q string, p pagination.Params) (pagination.Page[models.TrackLink], error) {
	const op = "service.links.ListLinks"

	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) > MaxSearchQueryLen {
		return pagination.Page[models.TrackLink]{}, fmt.Errorf("%s: %w", op,
			validation.New(fmt.Sprintf("query cannot exceed %d characters", MaxSearchQueryLen)))
	}

	query := func(ctx context.Context, w models.Window) ([]models.TrackLink, int64, error) {
		return s.storage.ListLinks(ctx, q, w)
	}

	page, err := pagination.Paginate(ctx, query, p)
	if err != nil {
		log.From(ctx).Error("list_links_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return pagination.Page[models.TrackLink]{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// LinksByTrack возвращает страницу ссылок трека trackID; трек должен существовать.
func (s *Service) LinksByTrack(ctx context.Context, trackID int64, p pagination.Params) (pagination.Page[models.TrackLink], error) {
	const op = "service.links.LinksByTrack"

	if _, err := s.trackByID(ctx, trackID); err != nil {
		return pagination.Page[models.TrackLink]{}, fmt.Errorf("%s: %w", op, err)
	}

	query := func(ctx context.Context, w models.Window) ([]models.TrackLink, int64, error) {
		return s.storage.LinksByTrack(ctx, trackID, w)
	}

	page, err := pagination.Paginate(ctx, query, p)
	if err != nil {
		return pagination.Page[models.TrackLink]{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}
