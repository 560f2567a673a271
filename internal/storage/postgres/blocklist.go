package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
)

// RevokeToken заносит jti в журнал отзыва. Повторный отзыв — не ошибка.
func (s *Storage) RevokeToken(ctx context.Context, token *models.RevokedToken) error {
	const op = "storage.postgres.RevokeToken"

	query := `
		INSERT INTO token_blocklist(jti, user_id, token_type, revoked_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (jti) DO NOTHING
	`

	_, err := s.db.Exec(ctx, query,
		token.JTI,
		token.UserID,
		token.TokenType,
		token.RevokedAt,
		token.ExpiresAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// IsTokenRevoked проверяет наличие jti в журнале.
func (s *Storage) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	const op = "storage.postgres.IsTokenRevoked"

	var revoked bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM token_blocklist WHERE jti = $1)`, jti).Scan(&revoked)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return revoked, nil
}

// DeleteExpiredRevocations удаляет записи, чьи токены уже истекли сами.
func (s *Storage) DeleteExpiredRevocations(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.postgres.DeleteExpiredRevocations"

	cmdTag, err := s.db.Exec(ctx, `DELETE FROM token_blocklist WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return cmdTag.RowsAffected(), nil
}
