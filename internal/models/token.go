package models

import "time"

// RevokedToken — запись журнала отзыва (blocklist).
//
// Описание:
//   - JTI — идентификатор отозванного токена, единица отзыва;
//   - ExpiresAt — естественное истечение токена; после него запись
//     можно удалить, токен всё равно не пройдёт проверку срока.
type RevokedToken struct {
	JTI       string
	UserID    int64
	TokenType string
	RevokedAt time.Time
	ExpiresAt time.Time
}

// TokenPair — пара токенов, выдаваемая при входе.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	// AccessExpiresAt — время истечения access-токена (UTC).
	AccessExpiresAt time.Time
}
