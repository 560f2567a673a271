package service

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/go-tracks-api/internal/config"
	"github.com/pribylovaa/go-tracks-api/internal/mocks"
	"github.com/pribylovaa/go-tracks-api/internal/password"
	"github.com/pribylovaa/go-tracks-api/internal/token"
)

func testAuthCfg() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:       "unit-secret",
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 14 * 24 * time.Hour,
		Issuer:          "tracks-api",
	}
}

// fixture — сервис с моками хранилища и кэша.
type fixture struct {
	svc    *Service
	st     *mocks.MockStorage
	cache  *mocks.MockRevocationCache
	issuer *token.Issuer
	hasher password.Hasher
}

func newFixture(t *testing.T, withCache bool) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		st:     mocks.NewMockStorage(ctrl),
		issuer: token.NewIssuer(testAuthCfg()),
		hasher: password.NewBcrypt(bcrypt.MinCost),
	}

	opts := []Option{}
	if withCache {
		f.cache = mocks.NewMockRevocationCache(ctrl)
		opts = append(opts, WithRevocationCache(f.cache))
	}

	f.svc = New(f.st, f.hasher, f.issuer, opts...)
	return f
}

func (f *fixture) mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := f.hasher.Hash(pw)
	require.NoError(t, err)
	return h
}

func ptr[T any](v T) *T { return &v }
