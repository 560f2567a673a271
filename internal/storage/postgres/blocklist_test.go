package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/stretchr/testify/require"
)

func TestIntegration_RevokeToken_Idempotent(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC()

	rt := &models.RevokedToken{
		JTI:       uuid.NewString(),
		UserID:    1,
		TokenType: "access",
		RevokedAt: now,
		ExpiresAt: now.Add(30 * time.Minute),
	}

	revoked, err := st.IsTokenRevoked(ctx, rt.JTI)
	require.NoError(t, err)
	require.False(t, revoked)

	require.NoError(t, st.RevokeToken(ctx, rt))
	require.NoError(t, st.RevokeToken(ctx, rt))

	revoked, err = st.IsTokenRevoked(ctx, rt.JTI)
	require.NoError(t, err)
	require.True(t, revoked)
}

func TestIntegration_DeleteExpiredRevocations(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	now := time.Now().UTC()

	expired := &models.RevokedToken{JTI: uuid.NewString(), UserID: 1, TokenType: "access", RevokedAt: now.Add(-time.Hour), ExpiresAt: now.Add(-time.Minute)}
	alive := &models.RevokedToken{JTI: uuid.NewString(), UserID: 1, TokenType: "refresh", RevokedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, st.RevokeToken(ctx, expired))
	require.NoError(t, st.RevokeToken(ctx, alive))

	n, err := st.DeleteExpiredRevocations(ctx, now)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)

	revoked, err := st.IsTokenRevoked(ctx, alive.JTI)
	require.NoError(t, err)
	require.True(t, revoked)
}
