package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/go-tracks-api/internal/errors"
	"github.com/pribylovaa/go-tracks-api/internal/http/dto"
)

// ListLinks — GET /track_links.
func (h *Handlers) ListLinks(w http.ResponseWriter, r *http.Request) {
	h.listLinks(w, r, "")
}

// SearchLinks — GET /track_links/search?q=.
func (h *Handlers) SearchLinks(w http.ResponseWriter, r *http.Request) {
	h.listLinks(w, r, r.URL.Query().Get("q"))
}

func (h *Handlers) listLinks(w http.ResponseWriter, r *http.Request, q string) {
	p, err := h.pageParams(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	page, err := h.svc.ListLinks(r.Context(), q, p)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writePage(w, page, dto.Link)
}

// TrackLinks — GET /tracks/{id}/links и GET /track_links/{id} (id трека).
func (h *Handlers) TrackLinks(param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		trackID, err := pathID(r, param)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		p, err := h.pageParams(r)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		page, err := h.svc.LinksByTrack(r.Context(), trackID, p)
		if err != nil {
			apierrors.WriteError(w, r, err)
			return
		}

		writePage(w, page, dto.Link)
	}
}

// CreateLink — POST /track_links (track_id в теле).
func (h *Handlers) CreateLink(w http.ResponseWriter, r *http.Request) {
	ownerID, err := subject(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.LinkCreateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	link, err := h.svc.CreateLink(r.Context(), ownerID, in.ToInput())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Link(*link))
}

// CreateTrackLink — POST /tracks/{id}/links.
func (h *Handlers) CreateTrackLink(w http.ResponseWriter, r *http.Request) {
	trackID, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	ownerID, err := subject(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.TrackLinkCreateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	link, err := h.svc.CreateLink(r.Context(), ownerID, in.ToInput(trackID))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.Link(*link))
}

// UpdateLink — PUT/PATCH /track_links/{id}; track_id можно сменить.
func (h *Handlers) UpdateLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.LinkUpdateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	link, err := h.svc.UpdateLink(r.Context(), id, in.ToPatch())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Link(*link))
}

// UpdateTrackLink — PUT/PATCH /tracks/{id}/links/{link_id}; ссылка должна принадлежать треку.
func (h *Handlers) UpdateTrackLink(w http.ResponseWriter, r *http.Request) {
	trackID, linkID, err := trackAndLinkIDs(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var in dto.LinkUpdateRequest
	if err := decodeValid(r, &in); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	link, err := h.svc.UpdateTrackLink(r.Context(), trackID, linkID, in.ToPatch())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Link(*link))
}

// DeleteLink — DELETE /track_links/{id}.
func (h *Handlers) DeleteLink(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	link, err := h.svc.DeleteLink(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Deleted[dto.LinkView]{Message: "Track link deleted", Data: dto.Link(*link)})
}

// DeleteTrackLink — DELETE /tracks/{id}/links/{link_id}.
func (h *Handlers) DeleteTrackLink(w http.ResponseWriter, r *http.Request) {
	trackID, linkID, err := trackAndLinkIDs(r)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if _, err := h.svc.DeleteTrackLink(r.Context(), trackID, linkID); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.Message{Message: "Link deleted"})
}

func trackAndLinkIDs(r *http.Request) (int64, int64, error) {
	trackID, err := pathID(r, "id")
	if err != nil {
		return 0, 0, err
	}

	linkID, err := pathID(r, "link_id")
	if err != nil {
		return 0, 0, err
	}

	return trackID, linkID, nil
}
