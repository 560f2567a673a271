// token выпускает и проверяет подписанные JWT (HS256).
//
// Каждый токен несёт sub (id пользователя), уникальный jti (uuid v4 —
// единица отзыва), iat, exp, iss и тип typ ∈ {access, refresh}.
// Тип проверяется всегда: refresh-токен не принимается там, где нужен
// access, и наоборот.
package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/pribylovaa/go-tracks-api/internal/config"
)

// Type — назначение токена.
type Type string

const (
	Access  Type = "access"
	Refresh Type = "refresh"
	// Any — допустим любой тип (используется при logout).
	Any Type = ""
)

var (
	// ErrMalformed — строка не является JWT.
	ErrMalformed = errors.New("malformed token")
	// ErrInvalidSignature — подпись не сходится или алгоритм не HS256.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrExpired — срок действия истёк.
	ErrExpired = errors.New("token expired")
	// ErrWrongType — тип токена не подходит для операции.
	ErrWrongType = errors.New("wrong token type")
	// ErrInvalidClaims — подпись верна, но набор claims некорректен (iss, sub, jti, typ).
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims — набор claims выпускаемых токенов.
type Claims struct {
	Type Type `json:"typ"`
	jwt.RegisteredClaims
}

// UserID разбирает sub в идентификатор пользователя.
func (c *Claims) UserID() (int64, error) {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidClaims
	}

	return id, nil
}

// ExpiresAtTime возвращает exp как time.Time (нулевое время, если exp нет).
func (c *Claims) ExpiresAtTime() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}

	return c.ExpiresAt.Time
}

// Issuer выпускает и проверяет токены. Безопасен для конкурентного использования.
type Issuer struct {
	secret     []byte
	issuer     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
}

// NewIssuer создаёт Issuer из конфигурации auth.
func NewIssuer(cfg config.AuthConfig) *Issuer {
	return &Issuer{
		secret:     []byte(cfg.JWTSecret),
		issuer:     cfg.Issuer,
		accessTTL:  cfg.AccessTokenTTL,
		refreshTTL: cfg.RefreshTokenTTL,
		now:        time.Now,
	}
}

// WithClock подменяет источник времени (для тестов).
func (i *Issuer) WithClock(now func() time.Time) *Issuer {
	cp := *i
	cp.now = now
	return &cp
}

// TTL возвращает время жизни токена указанного типа.
func (i *Issuer) TTL(typ Type) time.Duration {
	if typ == Refresh {
		return i.refreshTTL
	}

	return i.accessTTL
}

// Issue выпускает токен типа typ для пользователя subjectID со свежим jti.
func (i *Issuer) Issue(subjectID int64, typ Type) (string, *Claims, error) {
	const op = "token.Issue"

	if typ != Access && typ != Refresh {
		return "", nil, fmt.Errorf("%s: unknown token type %q", op, typ)
	}

	now := i.now().UTC()
	claims := &Claims{
		Type: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatInt(subjectID, 10),
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.TTL(typ))),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", op, err)
	}

	return signed, claims, nil
}

// Verify проверяет подпись, срок, issuer и тип. want == Any допускает любой тип.
//
// Порядок проверок совпадает с порядком ошибок:
// ErrMalformed -> ErrInvalidSignature -> ErrExpired -> ErrInvalidClaims -> ErrWrongType.
func (i *Issuer) Verify(raw string, want Type) (*Claims, error) {
	const op = "token.Verify"

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (any, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, ErrInvalidSignature
			}

			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	if claims.ID == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidClaims)
	}

	if _, err := claims.UserID(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidClaims)
	}

	switch claims.Type {
	case Access, Refresh:
	default:
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidClaims)
	}

	if want != Any && claims.Type != want {
		return nil, fmt.Errorf("%s: %w", op, ErrWrongType)
	}

	return claims, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return ErrMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable),
		errors.Is(err, ErrInvalidSignature):
		return ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrInvalidClaims
	}
}
