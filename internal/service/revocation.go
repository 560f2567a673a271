package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

// IsRevoked сообщает, отозван ли jti.
//
// Порядок: Redis (если подключён) → PostgreSQL. Кэш хранит только
// положительные ответы; промах или ошибка Redis ведут в БД, найденный
// в БД отзыв дописывается в кэш. Ошибка БД возвращается вызывающему:
// gate не допускает запрос, если журнал недоступен.
func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "service.revocation.IsRevoked"

	lg := log.From(ctx).With("op", op)

	if s.rcache != nil {
		hit, err := s.rcache.IsRevoked(ctx, jti)
		if err != nil {
			lg.Warn("revocation_cache_error", slog.String("err", err.Error()))
		} else if hit {
			return true, nil
		}
	}

	revoked, err := s.storage.IsTokenRevoked(ctx, jti)
	if err != nil {
		lg.Error("revocation_storage_error", slog.String("err", err.Error()))

		return false, fmt.Errorf("%s: %w", op, err)
	}

	if revoked && s.rcache != nil {
		// TTL неизвестен без claims: кладём на срок жизни refresh-токена, дольше токен не живёт.
		if err := s.rcache.MarkRevoked(ctx, jti, s.issuer.TTL(token.Refresh)); err != nil {
			lg.Warn("revocation_cache_backfill_failed", slog.String("err", err.Error()))
		}
	}

	return revoked, nil
}

// Revoke заносит jti токена в журнал отзыва. Идемпотентна.
// Запись в кэш — best effort: при ошибке Redis журнал в БД всё равно сработает.
func (s *Service) Revoke(ctx context.Context, claims *token.Claims) error {
	const op = "service.revocation.Revoke"

	lg := log.From(ctx).With("op", op)

	if claims == nil || claims.ID == "" {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	userID, err := claims.UserID()
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	now := s.now().UTC()
	rec := &models.RevokedToken{
		JTI:       claims.ID,
		UserID:    userID,
		TokenType: string(claims.Type),
		RevokedAt: now,
		ExpiresAt: claims.ExpiresAtTime(),
	}

	if err := s.storage.RevokeToken(ctx, rec); err != nil {
		lg.Error("revoke_storage_error", slog.String("err", err.Error()))

		return fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.TokenRevoked(rec.TokenType)

	if s.rcache != nil {
		if err := s.rcache.MarkRevoked(ctx, rec.JTI, rec.ExpiresAt.Sub(now)); err != nil {
			lg.Warn("revocation_cache_write_failed", slog.String("err", err.Error()))
		}
	}

	lg.Info("token_revoked",
		slog.Int64("user_id", userID),
		slog.String("token_type", rec.TokenType),
	)

	return nil
}

// CollectExpiredRevocations удаляет из журнала записи истёкших токенов.
// Вызывается janitor'ом по таймеру; такие токены отклоняются по сроку и без журнала.
func (s *Service) CollectExpiredRevocations(ctx context.Context) (int64, error) {
	const op = "service.revocation.CollectExpiredRevocations"

	n, err := s.storage.DeleteExpiredRevocations(ctx, s.now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.metrics.RevocationsCollected(n)

	return n, nil
}
