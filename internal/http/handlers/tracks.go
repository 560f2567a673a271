package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tracks-api/internal/errors"
	"github.com/pribylovaa/go-tracks-api/internal/http/dto"
	"github.com/pribylovaa/go-tracks-api/internal/http/middleware"
	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/service"
)

// ListTracks — GET /tracks.
func (h *Handlers) ListTracks(w http.ResponseWriter, r *http.Request) {
	h.listTracks(w, r, models.TrackFilter{})
}

// SearchTracks — GET /tracks/search?title=&artist=&genre=.
func (h *Handlers) SearchTracks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	h.listTracks(w, r, models.TrackFilter{
		Title:  q.Get("title"),
		Artist: q.Get("artist"),
		Genre:  q.Get("genre"),
	})
}

func (h *Handlers) listTracks(w http.ResponseWriter, r *http.Request, f models.TrackFilter) {
	p, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.ListTracks(r.Context(), f, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writePage(w, page, dto.Track)
}

// GetTrack — GET /tracks/{id}.
func (h *Handlers) GetTrack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	track, err := h.svc.Track(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Track(*track))
}

// CreateTrack — POST /tracks; владелец — субъект access-токена.
func (h *Handlers) CreateTrack(w http.ResponseWriter, r *http.Request) {
	ownerID, err := subject(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.TrackCreateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	track, err := h.svc.CreateTrack(r.Context(), ownerID, in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Track(*track))
}

// UpdateTrack — PUT/PATCH /tracks/{id}, частичное обновление.
func (h *Handlers) UpdateTrack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.TrackUpdateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	track, err := h.svc.UpdateTrack(r.Context(), id, in.ToPatch())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Track(*track))
}

// DeleteTrack — DELETE /tracks/{id}; ссылки трека удаляются каскадно.
func (h *Handlers) DeleteTrack(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	track, err := h.svc.DeleteTrack(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Deleted[dto.TrackView]{Message: "Track deleted", Data: dto.Track(*track)})
}

// subject возвращает id пользователя из claims допущенного запроса.
func subject(r *http.Request) (int64, error) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		return 0, service.ErrInvalidToken
	}

	id, err := claims.UserID()
	if err != nil {
		return 0, service.ErrInvalidToken
	}

	return id, nil
}
