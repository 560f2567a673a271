package http

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
)

// memStore — потокобезопасная in-memory реализация storage.Storage для
// сквозных тестов роутера. Семантика повторяет postgres-хранилище:
// порядок по id, уникальность username/email, каскадное удаление ссылок.
type memStore struct {
	mu      sync.Mutex
	seq     int64
	users   []models.User
	tracks  []models.Track
	links   []models.TrackLink
	revoked map[string]models.RevokedToken
}

var _ storage.Storage = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{revoked: make(map[string]models.RevokedToken)}
}

func (s *memStore) nextID() int64 {
	s.seq++
	return s.seq
}

func window[T any](all []T, w models.Window) ([]T, int64) {
	total := int64(len(all))
	out := make([]T, 0, w.Limit)

	if w.Offset >= len(all) {
		return out, total
	}

	end := min(w.Offset+w.Limit, len(all))
	return append(out, all[w.Offset:end]...), total
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func (s *memStore) SaveUser(_ context.Context, u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, x := range s.users {
		if x.Username == u.Username || strings.EqualFold(x.Email, u.Email) {
			return storage.ErrAlreadyExists
		}
	}

	u.ID = s.nextID()
	s.users = append(s.users, *u)
	return nil
}

func (s *memStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, x := range s.users {
		if strings.EqualFold(x.Email, email) {
			return &x, nil
		}
	}

	return nil, storage.ErrNotFound
}

func (s *memStore) UserByID(_ context.Context, id int64) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := slices.IndexFunc(s.users, func(x models.User) bool { return x.ID == id }); i >= 0 {
		u := s.users[i]
		return &u, nil
	}

	return nil, storage.ErrNotFound
}

func (s *memStore) UserExists(_ context.Context, username, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.ContainsFunc(s.users, func(x models.User) bool {
		return x.Username == username || strings.EqualFold(x.Email, email)
	}), nil
}

func (s *memStore) ListUsers(_ context.Context, w models.Window) ([]models.User, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out, total := window(s.users, w)
	return out, total, nil
}

func (s *memStore) SaveTrack(_ context.Context, t *models.Track) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !slices.ContainsFunc(s.users, func(x models.User) bool { return x.ID == t.UserID }) {
		return storage.ErrReferenceNotFound
	}

	t.ID = s.nextID()
	row := *t
	row.Links = nil
	s.tracks = append(s.tracks, row)
	return nil
}

func (s *memStore) trackIndex(id int64) int {
	return slices.IndexFunc(s.tracks, func(x models.Track) bool { return x.ID == id })
}

func (s *memStore) TrackByID(_ context.Context, id int64) (*models.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trackIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	t := s.tracks[i]
	return &t, nil
}

func (s *memStore) UpdateTrack(_ context.Context, id int64, p models.TrackPatch) (*models.Track, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trackIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	t := &s.tracks[i]
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Artist != nil {
		t.Artist = *p.Artist
	}
	if p.Genre != nil {
		t.Genre = *p.Genre
	}
	t.UpdatedAt = time.Now().UTC()

	out := *t
	return &out, nil
}

func (s *memStore) DeleteTrack(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.trackIndex(id)
	if i < 0 {
		return storage.ErrNotFound
	}

	s.tracks = slices.Delete(s.tracks, i, i+1)
	s.links = slices.DeleteFunc(s.links, func(l models.TrackLink) bool { return l.TrackID == id })
	return nil
}

func (s *memStore) ListTracks(_ context.Context, f models.TrackFilter, w models.Window) ([]models.Track, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Track, 0, len(s.tracks))
	for _, t := range s.tracks {
		if containsFold(t.Title, f.Title) && containsFold(t.Artist, f.Artist) && containsFold(t.Genre, f.Genre) {
			matched = append(matched, t)
		}
	}

	out, total := window(matched, w)
	return out, total, nil
}

func (s *memStore) TracksByUser(_ context.Context, userID int64, w models.Window) ([]models.Track, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.Track, 0)
	for _, t := range s.tracks {
		if t.UserID == userID {
			matched = append(matched, t)
		}
	}

	out, total := window(matched, w)
	return out, total, nil
}

func (s *memStore) SaveLink(_ context.Context, l *models.TrackLink) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.trackIndex(l.TrackID) < 0 {
		return storage.ErrReferenceNotFound
	}

	l.ID = s.nextID()
	s.links = append(s.links, *l)
	return nil
}

func (s *memStore) linkIndex(id int64) int {
	return slices.IndexFunc(s.links, func(x models.TrackLink) bool { return x.ID == id })
}

func (s *memStore) LinkByID(_ context.Context, id int64) (*models.TrackLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}

	l := s.links[i]
	return &l, nil
}

func (s *memStore) UpdateLink(_ context.Context, id int64, p models.LinkPatch) (*models.TrackLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return nil, storage.ErrNotFound
	}
	if p.TrackID != nil && s.trackIndex(*p.TrackID) < 0 {
		return nil, storage.ErrReferenceNotFound
	}

	l := &s.links[i]
	if p.LinkType != nil {
		l.LinkType = *p.LinkType
	}
	if p.LinkURL != nil {
		l.LinkURL = *p.LinkURL
	}
	if p.TrackID != nil {
		l.TrackID = *p.TrackID
	}
	l.UpdatedAt = time.Now().UTC()

	out := *l
	return &out, nil
}

func (s *memStore) DeleteLink(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.linkIndex(id)
	if i < 0 {
		return storage.ErrNotFound
	}

	s.links = slices.Delete(s.links, i, i+1)
	return nil
}

func (s *memStore) ListLinks(_ context.Context, q string, w models.Window) ([]models.TrackLink, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.TrackLink, 0, len(s.links))
	for _, l := range s.links {
		if containsFold(l.LinkType, q) || containsFold(l.LinkURL, q) {
			matched = append(matched, l)
		}
	}

	out, total := window(matched, w)
	return out, total, nil
}

func (s *memStore) LinksByTrack(_ context.Context, trackID int64, w models.Window) ([]models.TrackLink, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	matched := make([]models.TrackLink, 0)
	for _, l := range s.links {
		if l.TrackID == trackID {
			matched = append(matched, l)
		}
	}

	out, total := window(matched, w)
	return out, total, nil
}

func (s *memStore) LinksByTrackIDs(_ context.Context, ids []int64) (map[int64][]models.TrackLink, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int64][]models.TrackLink, len(ids))
	for _, l := range s.links {
		if slices.Contains(ids, l.TrackID) {
			out[l.TrackID] = append(out[l.TrackID], l)
		}
	}

	return out, nil
}

func (s *memStore) RevokeToken(_ context.Context, t *models.RevokedToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.revoked[t.JTI]; !ok {
		s.revoked[t.JTI] = *t
	}

	return nil
}

func (s *memStore) IsTokenRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.revoked[jti]
	return ok, nil
}

func (s *memStore) DeleteExpiredRevocations(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for jti, r := range s.revoked {
		if !r.ExpiresAt.After(now) {
			delete(s.revoked, jti)
			n++
		}
	}

	return n, nil
}

func (s *memStore) Ping(context.Context) error { return nil }

func (s *memStore) Close() {}
