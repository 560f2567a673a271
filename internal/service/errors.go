package service

import "errors"

var (
	// ErrInvalidCredentials — пара email/пароль неверна или пользователь не найден.
	// Транспорт: 401 invalid_credentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken — токен не разбирается, подпись неверна или claims некорректны.
	// Транспорт: 401 invalid_token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия токена истёк. Транспорт: 401 expired_token.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenRevoked — jti токена есть в журнале отзыва (logout).
	// Отозванный токен недействителен независимо от срока. Транспорт: 401 revoked_token.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrWrongTokenType — refresh вместо access или наоборот. Транспорт: 401 wrong_token_type.
	ErrWrongTokenType = errors.New("wrong token type")

	// ErrUserExists — username или email уже заняты. Транспорт: 409 already_exists.
	ErrUserExists = errors.New("user with this username or email already exists")

	// ErrUserNotFound — пользователь не найден. Транспорт: 404.
	ErrUserNotFound = errors.New("user not found")

	// ErrTrackNotFound — трек не найден. Транспорт: 404.
	ErrTrackNotFound = errors.New("track not found")

	// ErrLinkNotFound — ссылка не найдена (или принадлежит другому треку). Транспорт: 404.
	ErrLinkNotFound = errors.New("track link not found")
)
