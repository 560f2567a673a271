// service содержит бизнес-логику tracks-api:
// регистрацию и вход пользователей, выпуск и проверку токенов,
// журнал отзыва (logout), каталог треков и их ссылок.
//
// Основные аспекты:
//   - Service не хранит состояние запроса и безопасен для конкурентного
//     использования при условии, что хранилище потокобезопасно;
//   - все зависимости передаются явно в New (без глобальных синглтонов);
//   - ошибки возвращаются сентинелами этого пакета и маппятся транспортом
//     (см. internal/errors).
package service

import (
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/cache"
	"github.com/pribylovaa/go-tracks-api/internal/metrics"
	"github.com/pribylovaa/go-tracks-api/internal/password"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

// Service описывает бизнес-логику tracks-api.
type Service struct {
	storage storage.Storage
	hasher  password.Hasher
	issuer  *token.Issuer
	rcache  cache.RevocationCache // может быть nil, если Redis не сконфигурирован
	metrics *metrics.Metrics      // может быть nil
	now     func() time.Time
}

// Option настраивает необязательные зависимости Service.
type Option func(*Service)

// WithRevocationCache подключает read-through кэш журнала отзыва.
func WithRevocationCache(c cache.RevocationCache) Option {
	return func(s *Service) { s.rcache = c }
}

// WithMetrics подключает прикладные метрики.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithClock подменяет источник времени (для тестов).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New создаёт новый экземпляр Service.
func New(st storage.Storage, hasher password.Hasher, issuer *token.Issuer, opts ...Option) *Service {
	s := &Service{
		storage: st,
		hasher:  hasher,
		issuer:  issuer,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
