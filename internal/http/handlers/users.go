package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tracks-api/internal/errors"
	"github.com/pribylovaa/go-tracks-api/internal/http/dto"
)

// ListUsers — GET /users.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	p, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.ListUsers(r.Context(), p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writePage(w, page, dto.User)
}

// UserTracks — GET /users/{id}/tracks.
func (h *Handlers) UserTracks(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	p, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.TracksByUser(r.Context(), id, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writePage(w, page, dto.Track)
}
