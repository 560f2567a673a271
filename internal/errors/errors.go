// errors стандартизирует ответы об ошибках HTTP-слоя tracks-api.
// На вход он принимает ошибку сервисного слоя (цепочку %w со сентинелами
// пакетов service, token, password, validation), а на выход даёт:
//   - корректный HTTP-статус;
//   - категорию (kind) и точный код (code) для машиночитаемой обработки;
//   - безопасное message без утечки внутренних деталей.
//
// Маппинг делается один раз на транспорте; внутренние ошибки (500)
// логируются целиком вместе с цепочкой op.
package errors

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/pribylovaa/go-tracks-api/internal/password"
	"github.com/pribylovaa/go-tracks-api/internal/pkg/log"
	"github.com/pribylovaa/go-tracks-api/internal/service"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// Нестандартный код часто используемый для "клиент закрыл соединение".
const StatusClientClosedRequest = 499

// Категории ошибок (kind).
const (
	KindValidation = "validation_error"
	KindConflict   = "conflict_error"
	KindAuth       = "auth_error"
	KindNotFound   = "not_found_error"
	KindInternal   = "internal_error"
)

// Точные коды (code).
const (
	CodeInvalidArgument    = "invalid_argument"
	CodeAlreadyExists      = "already_exists"
	CodeNotFound           = "not_found"
	CodeInvalidCredentials = "invalid_credentials"
	CodeInvalidToken       = "invalid_token"
	CodeMissingToken       = "missing_token"
	CodeExpiredToken       = "expired_token"
	CodeRevokedToken       = "revoked_token"
	CodeWrongTokenType     = "wrong_token_type"
	CodeCanceled           = "canceled"
	CodeDeadlineExceeded   = "deadline_exceeded"
	CodeInternal           = "internal"
)

// ErrMissingToken — в запросе нет заголовка Authorization: Bearer <jwt>.
var ErrMissingToken = stderrors.New("missing authorization token")

// APIError — единый формат для фронта.
type APIError struct {
	Kind      string                  `json:"kind"`
	Code      string                  `json:"code"`
	Message   string                  `json:"message"`
	Fields    []validation.FieldError `json:"fields,omitempty"`
	RequestID string                  `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal;
//   - ошибки валидации (*validation.Error, ошибки пароля) — 400 с текстом ошибки;
//   - auth-сентинелы — 401 с точным кодом причины;
//   - неизвестные ошибки — 500/internal без деталей.
func ToHTTP(err error) (int, ErrorResponse) {
	status, kind, code, msg := classify(err)

	resp := ErrorResponse{Error: APIError{Kind: kind, Code: code, Message: msg}}
	if ve, ok := validation.As(err); ok {
		resp.Error.Fields = ve.Fields
	}

	return status, resp
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
// Ошибки 5xx логируются с полной цепочкой.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	if status >= http.StatusInternalServerError {
		errText := "<nil>"
		if err != nil {
			errText = err.Error()
		}

		log.From(r.Context()).Error("http_internal_error",
			slog.String("path", r.URL.Path),
			slog.String("err", errText),
		)
	}

	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

// AuthReason возвращает код причины отказа auth gate (для логов и метрик).
// Для ошибок, не относящихся к аутентификации, возвращает "".
func AuthReason(err error) string {
	_, kind, code, _ := classify(err)
	if kind != KindAuth {
		return ""
	}

	return code
}

func classify(err error) (status int, kind, code, msg string) {
	if err == nil {
		return http.StatusInternalServerError, KindInternal, CodeInternal, "internal error"
	}

	if ve, ok := validation.As(err); ok {
		return http.StatusBadRequest, KindValidation, CodeInvalidArgument, ve.Message
	}

	switch {
	case stderrors.Is(err, password.ErrEmptyPassword),
		stderrors.Is(err, password.ErrPasswordTooLong):
		return http.StatusBadRequest, KindValidation, CodeInvalidArgument, unwrapMessage(err)

	case stderrors.Is(err, service.ErrUserExists):
		return http.StatusConflict, KindConflict, CodeAlreadyExists, "User with this username or email already exists"

	case stderrors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized, KindAuth, CodeMissingToken, "Missing authorization token"
	case stderrors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized, KindAuth, CodeInvalidCredentials, "Invalid email or password"
	case stderrors.Is(err, service.ErrTokenExpired):
		return http.StatusUnauthorized, KindAuth, CodeExpiredToken, "Token has expired"
	case stderrors.Is(err, service.ErrTokenRevoked):
		return http.StatusUnauthorized, KindAuth, CodeRevokedToken, "Token has been revoked"
	case stderrors.Is(err, service.ErrWrongTokenType):
		return http.StatusUnauthorized, KindAuth, CodeWrongTokenType, "Wrong token type"
	case stderrors.Is(err, service.ErrInvalidToken):
		return http.StatusUnauthorized, KindAuth, CodeInvalidToken, "Invalid token"

	case stderrors.Is(err, service.ErrUserNotFound):
		return http.StatusNotFound, KindNotFound, CodeNotFound, "User not found"
	case stderrors.Is(err, service.ErrTrackNotFound):
		return http.StatusNotFound, KindNotFound, CodeNotFound, "Track not found"
	case stderrors.Is(err, service.ErrLinkNotFound):
		return http.StatusNotFound, KindNotFound, CodeNotFound, "Track link not found"

	case stderrors.Is(err, context.Canceled):
		return StatusClientClosedRequest, KindInternal, CodeCanceled, "canceled"
	case stderrors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, KindInternal, CodeDeadlineExceeded, "deadline exceeded"
	}

	return http.StatusInternalServerError, KindInternal, CodeInternal, "internal error"
}

// unwrapMessage возвращает текст самого внутреннего сентинела (без цепочки op).
func unwrapMessage(err error) string {
	for {
		next := stderrors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
