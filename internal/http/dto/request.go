// dto содержит транспортные модели REST API: тела запросов с тегами
// валидации и представления ответов. Доменные модели наружу не отдаются.
package dto

import (
	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/service"
)

// RegisterRequest — тело POST /register.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required"`
}

func (r RegisterRequest) ToInput() service.RegisterInput {
	return service.RegisterInput{Username: r.Username, Email: r.Email, Password: r.Password}
}

// LoginRequest — тело POST /login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TrackCreateRequest — тело POST /tracks.
type TrackCreateRequest struct {
	Title  string `json:"title" validate:"required,max=100"`
	Artist string `json:"artist" validate:"max=100"`
	Genre  string `json:"genre" validate:"max=50"`
}

func (r TrackCreateRequest) ToInput() service.TrackInput {
	return service.TrackInput{Title: r.Title, Artist: r.Artist, Genre: r.Genre}
}

// TrackUpdateRequest — тело PUT/PATCH /tracks/{id}; отсутствующие поля не меняются.
type TrackUpdateRequest struct {
	Title  *string `json:"title" validate:"omitnil,min=1,max=100"`
	Artist *string `json:"artist" validate:"omitnil,max=100"`
	Genre  *string `json:"genre" validate:"omitnil,max=50"`
}

func (r TrackUpdateRequest) ToPatch() models.TrackPatch {
	return models.TrackPatch{Title: r.Title, Artist: r.Artist, Genre: r.Genre}
}

// LinkCreateRequest — тело POST /track_links.
type LinkCreateRequest struct {
	LinkType string `json:"link_type" validate:"required,max=50"`
	LinkURL  string `json:"link_url" validate:"required,url,max=200"`
	TrackID  int64  `json:"track_id" validate:"required,gt=0"`
}

func (r LinkCreateRequest) ToInput() service.LinkInput {
	return service.LinkInput{LinkType: r.LinkType, LinkURL: r.LinkURL, TrackID: r.TrackID}
}

// TrackLinkCreateRequest — тело POST /tracks/{id}/links: трек берётся из пути.
type TrackLinkCreateRequest struct {
	LinkType string `json:"link_type" validate:"required,max=50"`
	LinkURL  string `json:"link_url" validate:"required,url,max=200"`
}

func (r TrackLinkCreateRequest) ToInput(trackID int64) service.LinkInput {
	return service.LinkInput{LinkType: r.LinkType, LinkURL: r.LinkURL, TrackID: trackID}
}

// LinkUpdateRequest — тело PUT/PATCH ссылки.
type LinkUpdateRequest struct {
	LinkType *string `json:"link_type" validate:"omitnil,min=1,max=50"`
	LinkURL  *string `json:"link_url" validate:"omitnil,url,max=200"`
	TrackID  *int64  `json:"track_id" validate:"omitnil,gt=0"`
}

func (r LinkUpdateRequest) ToPatch() models.LinkPatch {
	return models.LinkPatch{LinkType: r.LinkType, LinkURL: r.LinkURL, TrackID: r.TrackID}
}
