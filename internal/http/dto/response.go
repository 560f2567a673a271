package dto

import (
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
)

// UserView — пользователь без каких-либо полей пароля.
type UserView struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// LinkView — ссылка трека.
type LinkView struct {
	ID        int64  `json:"id"`
	LinkType  string `json:"link_type"`
	LinkURL   string `json:"link_url"`
	TrackID   int64  `json:"track_id"`
	UserID    int64  `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// TrackView — трек вместе со ссылками (links всегда массив, не null).
type TrackView struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Artist    string     `json:"artist"`
	Genre     string     `json:"genre"`
	UserID    int64      `json:"user_id"`
	CreatedAt string     `json:"created_at"`
	UpdatedAt string     `json:"updated_at"`
	Links     []LinkView `json:"links"`
}

// TokenPair — ответ POST /login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessToken — ответ POST /refresh.
type AccessToken struct {
	AccessToken string `json:"access_token"`
}

// Message — ответ вида {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// Deleted — ответ удаления с удалённой сущностью.
type Deleted[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Logout — ответ POST /logout.
type Logout struct {
	Logout bool `json:"logout"`
}

// Health — ответ GET /health.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func User(u models.User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: formatTime(u.CreatedAt),
		UpdatedAt: formatTime(u.UpdatedAt),
	}
}

func Link(l models.TrackLink) LinkView {
	return LinkView{
		ID:        l.ID,
		LinkType:  l.LinkType,
		LinkURL:   l.LinkURL,
		TrackID:   l.TrackID,
		UserID:    l.UserID,
		CreatedAt: formatTime(l.CreatedAt),
		UpdatedAt: formatTime(l.UpdatedAt),
	}
}

func Track(t models.Track) TrackView {
	links := make([]LinkView, 0, len(t.Links))
	for _, l := range t.Links {
		links = append(links, Link(l))
	}

	return TrackView{
		ID:        t.ID,
		Title:     t.Title,
		Artist:    t.Artist,
		Genre:     t.Genre,
		UserID:    t.UserID,
		CreatedAt: formatTime(t.CreatedAt),
		UpdatedAt: formatTime(t.UpdatedAt),
		Links:     links,
	}
}

func Tokens(p models.TokenPair) TokenPair {
	return TokenPair{AccessToken: p.AccessToken, RefreshToken: p.RefreshToken}
}

// formatTime — RFC 3339 в UTC; нулевое время даёт пустую строку.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.UTC().Format(time.RFC3339)
}
