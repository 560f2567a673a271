package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	apierrors "github.com/pribylovaa/go-tracks-api/internal/errors"
	"github.com/pribylovaa/go-tracks-api/internal/metrics"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

// Authenticator проверяет токен целиком: подпись, срок, тип и журнал отзыва.
// Реализуется service.Service.
type Authenticator interface {
	Authenticate(ctx context.Context, raw string, want token.Type) (*token.Claims, error)
}

type claimsKey struct{}

// ClaimsFrom возвращает claims допущенного запроса.
func ClaimsFrom(ctx context.Context) (*token.Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*token.Claims)
	return c, ok && c != nil
}

// WithClaims кладёт claims в контекст (используется в тестах обработчиков).
func WithClaims(ctx context.Context, c *token.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// AuthGate допускает запрос только с действующим токеном типа want
// (token.Any — любой тип). Проверка выполняется на каждом запросе заново.
//
// Отказы (401) — missing_token, invalid_token, expired_token, wrong_token_type,
// revoked_token — логируются на уровне Warn и считаются в метриках. Сбой журнала
// отзыва даёт 500: запрос не допускается.
func AuthGate(auth Authenticator, want token.Type, m *metrics.Metrics) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			raw, ok := bearerToken(r)
			if !ok {
				reject(w, r, apierrors.ErrMissingToken, m)
				return
			}

			claims, err := auth.Authenticate(ctx, raw, want)
			if err != nil {
				reject(w, r, err, m)
				return
			}

			ctx = log.With(WithClaims(ctx, claims),
				slog.String("user_id", claims.Subject),
				slog.String("token_type", string(claims.Type)),
			)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func reject(w http.ResponseWriter, r *http.Request, err error, m *metrics.Metrics) {
	reason := apierrors.AuthReason(err)
	if reason == "" {
		reason = "internal"
	} else {
		log.From(r.Context()).Warn("auth_gate_rejected",
			slog.String("reason", reason),
			slog.String("path", r.URL.Path),
		)
	}

	m.GateRejected(reason)
	apierrors.WriteError(w, r, err)
}

// bearerToken извлекает токен из "Authorization: Bearer <jwt>" (схема без учёта регистра).
func bearerToken(r *http.Request) (string, bool) {
	scheme, raw, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	return raw, true
}
