package models

import "time"

// Track — музыкальный трек, принадлежащий пользователю UserID.
type Track struct {
	ID        int64
	Title     string
	Artist    string
	Genre     string
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
	// Links заполняется сервисом явно (LinksByTrackIDs), хранилище трека его не трогает.
	Links []TrackLink
}

// TrackPatch — частичное обновление трека: nil-поле не меняется.
type TrackPatch struct {
	Title  *string
	Artist *string
	Genre  *string
}

// TrackFilter — фильтр поиска треков (ILIKE по непустым полям).
type TrackFilter struct {
	Title  string
	Artist string
	Genre  string
}

// TrackLink — внешняя ссылка на трек (youtube, spotify, ...).
type TrackLink struct {
	ID        int64
	LinkType  string
	LinkURL   string
	TrackID   int64
	UserID    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LinkPatch — частичное обновление ссылки.
type LinkPatch struct {
	LinkType *string
	LinkURL  *string
	TrackID  *int64
}
