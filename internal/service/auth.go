package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/redact"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/pribylovaa/go-tracks-api/internal/token"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// RegisterInput — данные регистрации.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterUser создаёт учётную запись.
//
// Поведение:
//   - email приводится к нижнему регистру, username и email обрезаются по краям;
//   - занятые username/email → ErrUserExists (и при проверке, и при гонке на вставке);
//   - ошибки хэширования пароля (пустой/слишком длинный) прокидываются как есть.
func (s *Service) RegisterUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	const op = "service.auth.RegisterUser"

	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)

	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	if username == "" || email == "" {
		lg.Warn("register_invalid_argument")

		return nil, fmt.Errorf("%s: %w", op, validation.New("username and email are required"))
	}

	exists, err := s.storage.UserExists(ctx, username, email)
	if err != nil {
		lg.Error("register_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		lg.Warn("register_user_exists")

		return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		lg.Warn("register_password_rejected", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	now := s.now().UTC()
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			lg.Warn("register_user_exists")

			return nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		lg.Error("register_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("register_ok", slog.Int64("user_id", user.ID))

	return user, nil
}

// LoginUser проверяет email+пароль и выпускает пару access/refresh.
// Неизвестный email и неверный пароль неразличимы: оба → ErrInvalidCredentials.
func (s *Service) LoginUser(ctx context.Context, email, password string) (*models.TokenPair, error) {
	const op = "service.auth.LoginUser"

	email = normalizeEmail(email)
	lg := log.From(ctx).With("op", op, "email", redact.Email(email))

	if email == "" || password == "" {
		lg.Warn("login_invalid_credentials")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login_invalid_credentials")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("login_storage_error", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		lg.Warn("login_invalid_credentials", slog.Int64("user_id", user.ID))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	access, accessClaims, err := s.issue(user.ID, token.Access)
	if err != nil {
		lg.Error("login_issue_failed", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, _, err := s.issue(user.ID, token.Refresh)
	if err != nil {
		lg.Error("login_issue_failed", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("login_ok", slog.Int64("user_id", user.ID))

	return &models.TokenPair{
		AccessToken:     access,
		RefreshToken:    refresh,
		AccessExpiresAt: accessClaims.ExpiresAtTime(),
	}, nil
}

// Refresh выпускает новый access-токен по действующему refresh-токену.
// claims должны быть получены через Authenticate(..., token.Refresh).
// Refresh-токен не ротируется и остаётся действительным до истечения или logout.
func (s *Service) Refresh(ctx context.Context, claims *token.Claims) (string, time.Time, error) {
	const op = "service.auth.Refresh"

	lg := log.From(ctx).With("op", op)

	if claims == nil || claims.Type != token.Refresh {
		lg.Warn("refresh_wrong_token_type")

		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrWrongTokenType)
	}

	userID, err := claims.UserID()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	access, accessClaims, err := s.issue(userID, token.Access)
	if err != nil {
		lg.Error("refresh_issue_failed", slog.String("err", err.Error()))

		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	lg.Info("refresh_ok", slog.Int64("user_id", userID))

	return access, accessClaims.ExpiresAtTime(), nil
}

// Logout отзывает ровно предъявленный токен (access или refresh).
// Повторный logout тем же токеном не дойдёт сюда: gate отклонит его как отозванный.
func (s *Service) Logout(ctx context.Context, claims *token.Claims) error {
	const op = "service.auth.Logout"

	if err := s.Revoke(ctx, claims); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Authenticate — проверка токена для auth gate: подпись, срок, тип, затем журнал отзыва.
// want == token.Any допускает любой тип.
//
// Ошибки:
//   - ErrInvalidToken, ErrTokenExpired, ErrWrongTokenType — результат проверки JWT;
//   - ErrTokenRevoked — jti в журнале отзыва;
//   - прочие — сбой журнала (транспорт отдаёт 500, токен не допускается).
func (s *Service) Authenticate(ctx context.Context, raw string, want token.Type) (*token.Claims, error) {
	const op = "service.auth.Authenticate"

	claims, err := s.issuer.Verify(raw, want)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapTokenErr(err))
	}

	revoked, err := s.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if revoked {
		return nil, fmt.Errorf("%s: %w", op, ErrTokenRevoked)
	}

	return claims, nil
}

func (s *Service) issue(userID int64, typ token.Type) (string, *token.Claims, error) {
	signed, claims, err := s.issuer.Issue(userID, typ)
	if err != nil {
		return "", nil, err
	}

	s.metrics.TokenIssued(string(typ))

	return signed, claims, nil
}

// mapTokenErr переводит ошибки пакета token в сентинелы сервиса.
func mapTokenErr(err error) error {
	switch {
	case errors.Is(err, token.ErrExpired):
		return ErrTokenExpired
	case errors.Is(err, token.ErrWrongType):
		return ErrWrongTokenType
	default:
		return errors.Join(ErrInvalidToken, err)
	}
}

func normalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
