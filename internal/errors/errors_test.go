package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tracks-api/internal/password"
	"github.com/pribylovaa/go-tracks-api/internal/service"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

func wrap(err error) error { return fmt.Errorf("service.op: %w", err) }

func TestToHTTP_Mapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantKind   string
		wantCode   string
	}{
		{"validation", wrap(validation.New("per_page cannot exceed 100")), http.StatusBadRequest, KindValidation, CodeInvalidArgument},
		{"empty_password", wrap(password.ErrEmptyPassword), http.StatusBadRequest, KindValidation, CodeInvalidArgument},
		{"conflict", wrap(service.ErrUserExists), http.StatusConflict, KindConflict, CodeAlreadyExists},
		{"missing_token", ErrMissingToken, http.StatusUnauthorized, KindAuth, CodeMissingToken},
		{"invalid_credentials", wrap(service.ErrInvalidCredentials), http.StatusUnauthorized, KindAuth, CodeInvalidCredentials},
		{"invalid_token", wrap(service.ErrInvalidToken), http.StatusUnauthorized, KindAuth, CodeInvalidToken},
		{"expired", wrap(service.ErrTokenExpired), http.StatusUnauthorized, KindAuth, CodeExpiredToken},
		{"revoked", wrap(service.ErrTokenRevoked), http.StatusUnauthorized, KindAuth, CodeRevokedToken},
		{"wrong_type", wrap(service.ErrWrongTokenType), http.StatusUnauthorized, KindAuth, CodeWrongTokenType},
		{"user_not_found", wrap(service.ErrUserNotFound), http.StatusNotFound, KindNotFound, CodeNotFound},
		{"track_not_found", wrap(service.ErrTrackNotFound), http.StatusNotFound, KindNotFound, CodeNotFound},
		{"link_not_found", wrap(service.ErrLinkNotFound), http.StatusNotFound, KindNotFound, CodeNotFound},
		{"canceled", wrap(context.Canceled), StatusClientClosedRequest, KindInternal, CodeCanceled},
		{"deadline", wrap(context.DeadlineExceeded), http.StatusGatewayTimeout, KindInternal, CodeDeadlineExceeded},
		{"unknown", fmt.Errorf("db: connection refused"), http.StatusInternalServerError, KindInternal, CodeInternal},
		{"nil", nil, http.StatusInternalServerError, KindInternal, CodeInternal},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantKind, resp.Error.Kind)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_InternalDoesNotLeakDetails(t *testing.T) {
	_, resp := ToHTTP(fmt.Errorf("storage.postgres.UserByID: password=secret dial tcp failed"))
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestToHTTP_ValidationCarriesFields(t *testing.T) {
	type in struct {
		Email string `json:"email" validate:"required,email"`
	}

	err := validation.Struct(in{Email: "nope"})
	_, resp := ToHTTP(err)
	require.Len(t, resp.Error.Fields, 1)
	require.Equal(t, "email", resp.Error.Fields[0].Field)
}

func TestToHTTP_PasswordMessage_WithoutOpChain(t *testing.T) {
	_, resp := ToHTTP(fmt.Errorf("a: %w", fmt.Errorf("b: %w", password.ErrPasswordTooLong)))
	require.Equal(t, password.ErrPasswordTooLong.Error(), resp.Error.Message)
}

func TestAuthReason(t *testing.T) {
	require.Equal(t, CodeRevokedToken, AuthReason(wrap(service.ErrTokenRevoked)))
	require.Equal(t, CodeMissingToken, AuthReason(ErrMissingToken))
	require.Empty(t, AuthReason(fmt.Errorf("boom")))
}

func TestWriteError_EnvelopeWithRequestID(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("X-Request-Id", "rid-1")

	WriteError(rr, req, wrap(service.ErrTokenRevoked))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var env ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	require.Equal(t, "rid-1", env.Error.RequestID)
	require.Equal(t, CodeRevokedToken, env.Error.Code)
	require.Equal(t, KindAuth, env.Error.Kind)
}
