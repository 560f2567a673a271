package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
)

// ListUsers возвращает страницу пользователей по возрастанию id.
func (s *Service) ListUsers(ctx context.Context, p pagination.Params) (pagination.Page[models.User], error) {
	const op = "service.users.ListUsers"

	page, err := pagination.Paginate(ctx, s.storage.ListUsers, p)
	if err != nil {
		log.From(ctx).Error("list_users_storage_error",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)

		return pagination.Page[models.User]{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// UserByID возвращает пользователя по идентификатору.
func (s *Service) UserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "service.users.UserByID"

	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUserNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

// TracksByUser возвращает страницу треков пользователя userID вместе с их ссылками.
// Несуществующий пользователь → ErrUserNotFound (а не пустая страница).
func (s *Service) TracksByUser(ctx context.Context, userID int64, p pagination.Params) (pagination.Page[models.Track], error) {
	const op = "service.users.TracksByUser"

	if _, err := s.UserByID(ctx, userID); err != nil {
		return pagination.Page[models.Track]{}, fmt.Errorf("%s: %w", op, err)
	}

	query := func(ctx context.Context, w models.Window) ([]models.Track, int64, error) {
		return s.storage.TracksByUser(ctx, userID, w)
	}

	page, err := pagination.Paginate(ctx, query, p)
	if err != nil {
		return pagination.Page[models.Track]{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.attachLinks(ctx, page.Data); err != nil {
		return pagination.Page[models.Track]{}, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}
