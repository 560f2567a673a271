package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tracks-api/internal/errors"
	"github.com/pribylovaa/go-tracks-api/internal/http/dto"
	"github.com/pribylovaa/go-tracks-api/internal/http/middleware"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

// Register — POST /register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var in dto.RegisterRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, missingFields(err))
		return
	}

	if _, err := h.svc.RegisterUser(r.Context(), in.ToInput()); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Message{Message: "User registered successfully"})
}

// Login — POST /login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in dto.LoginRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, missingFields(err))
		return
	}

	pair, err := h.svc.LoginUser(r.Context(), in.Email, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Tokens(*pair))
}

// Refresh — POST /refresh, за auth gate с типом refresh.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	access, _, err := h.svc.Refresh(r.Context(), claims)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.AccessToken{AccessToken: access})
}

// Logout — POST /logout, за auth gate с любым типом токена.
// Отзывается ровно предъявленный токен.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := middleware.ClaimsFrom(r.Context())

	if err := h.svc.Logout(r.Context(), claims); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Logout{Logout: true})
}

// missingFields сводит «не заполнены обязательные поля» к одному сообщению,
// остальные ошибки валидации оставляет с деталями по полям.
func missingFields(err error) error {
	if ve, ok := validation.As(err); ok && ve.MissingFields() {
		return &validation.Error{Message: "Missing required fields", Fields: ve.Fields}
	}

	return err
}
