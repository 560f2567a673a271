// storage описывает контракты хранилища tracks-api и общие ошибки.
// Реализация на PostgreSQL — в пакете storage/postgres.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_storage.go -package=mocks github.com/pribylovaa/go-tracks-api/internal/storage Storage

var (
	// ErrNotFound — запись не найдена.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (username/email).
	ErrAlreadyExists = errors.New("already exists")
	// ErrReferenceNotFound — нарушение внешнего ключа (трек/пользователь не существует).
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// UserStorage — учётные записи (Credential Store).
type UserStorage interface {
	// SaveUser создаёт пользователя и заполняет user.ID.
	SaveUser(ctx context.Context, user *models.User) error
	// UserByEmail находит пользователя по email (регистронезависимо).
	UserByEmail(ctx context.Context, email string) (*models.User, error)
	// UserByID находит пользователя по ID.
	UserByID(ctx context.Context, id int64) (*models.User, error)
	// UserExists сообщает, заняты ли username или email.
	UserExists(ctx context.Context, username, email string) (bool, error)
	// ListUsers возвращает окно пользователей по возрастанию id и их общее число.
	ListUsers(ctx context.Context, w models.Window) ([]models.User, int64, error)
}

// TrackStorage — треки.
type TrackStorage interface {
	SaveTrack(ctx context.Context, track *models.Track) error
	TrackByID(ctx context.Context, id int64) (*models.Track, error)
	UpdateTrack(ctx context.Context, id int64, patch models.TrackPatch) (*models.Track, error)
	DeleteTrack(ctx context.Context, id int64) error
	// ListTracks — все треки или отфильтрованные по ILIKE.
	ListTracks(ctx context.Context, f models.TrackFilter, w models.Window) ([]models.Track, int64, error)
	// TracksByUser — треки владельца userID.
	TracksByUser(ctx context.Context, userID int64, w models.Window) ([]models.Track, int64, error)
}

// LinkStorage — ссылки треков.
type LinkStorage interface {
	SaveLink(ctx context.Context, link *models.TrackLink) error
	LinkByID(ctx context.Context, id int64) (*models.TrackLink, error)
	UpdateLink(ctx context.Context, id int64, patch models.LinkPatch) (*models.TrackLink, error)
	DeleteLink(ctx context.Context, id int64) error
	// ListLinks — все ссылки; q != "" фильтрует ILIKE по link_type/link_url.
	ListLinks(ctx context.Context, q string, w models.Window) ([]models.TrackLink, int64, error)
	// LinksByTrack — ссылки одного трека.
	LinksByTrack(ctx context.Context, trackID int64, w models.Window) ([]models.TrackLink, int64, error)
	// LinksByTrackIDs — все ссылки набора треков, сгруппированные по track_id.
	LinksByTrackIDs(ctx context.Context, trackIDs []int64) (map[int64][]models.TrackLink, error)
}

// BlocklistStorage — журнал отозванных токенов (Revocation Ledger).
type BlocklistStorage interface {
	// RevokeToken добавляет jti в журнал; повторная вставка не ошибка.
	RevokeToken(ctx context.Context, token *models.RevokedToken) error
	// IsTokenRevoked проверяет наличие jti в журнале.
	IsTokenRevoked(ctx context.Context, jti string) (bool, error)
	// DeleteExpiredRevocations удаляет записи с expires_at <= now, возвращает их число.
	DeleteExpiredRevocations(ctx context.Context, now time.Time) (int64, error)
}

// Storage задаёт контракт работы с БД.
type Storage interface {
	UserStorage
	TrackStorage
	LinkStorage
	BlocklistStorage
	Ping(ctx context.Context) error
	Close()
}
