package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/stretchr/testify/require"
)

func seedLink(t *testing.T, st *Storage, trackID, userID int64, typ, url string) int64 {
	t.Helper()
	now := time.Now().UTC()
	l := &models.TrackLink{LinkType: typ, LinkURL: url, TrackID: trackID, UserID: userID, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, st.SaveLink(context.Background(), l))
	return l.ID
}

func TestIntegration_Links_CRUD_And_Cascade(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	owner := seedUser(t, st, "josh", "josh@example.com")
	trackID := seedTrack(t, st, owner, "Song One", "", "")
	other := seedTrack(t, st, owner, "Song Two", "", "")

	id := seedLink(t, st, trackID, owner, "youtube", "https://youtube.com/watch?v=1")

	got, err := st.LinkByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, trackID, got.TrackID)

	upd, err := st.UpdateLink(ctx, id, models.LinkPatch{TrackID: ptr(other)})
	require.NoError(t, err)
	require.Equal(t, other, upd.TrackID)
	require.Equal(t, "youtube", upd.LinkType)

	_, err = st.UpdateLink(ctx, id, models.LinkPatch{TrackID: ptr(int64(999))})
	require.ErrorIs(t, err, storage.ErrReferenceNotFound)

	// удаление трека удаляет его ссылки.
	require.NoError(t, st.DeleteTrack(ctx, other))
	_, err = st.LinkByID(ctx, id)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, st.DeleteLink(ctx, id), storage.ErrNotFound)
}

func TestIntegration_SaveLink_UnknownTrack(t *testing.T) {
	st := startPostgres(t)
	owner := seedUser(t, st, "josh", "josh@example.com")
	now := time.Now().UTC()

	err := st.SaveLink(context.Background(), &models.TrackLink{
		LinkType: "spotify", LinkURL: "https://open.spotify.com/x", TrackID: 404, UserID: owner, CreatedAt: now, UpdatedAt: now,
	})
	require.ErrorIs(t, err, storage.ErrReferenceNotFound)
}

func TestIntegration_ListLinks_Search_And_ByTrack(t *testing.T) {
	st := startPostgres(t)
	ctx := context.Background()
	owner := seedUser(t, st, "josh", "josh@example.com")
	t1 := seedTrack(t, st, owner, "Song One", "", "")
	t2 := seedTrack(t, st, owner, "Song Two", "", "")
	t3 := seedTrack(t, st, owner, "Song Three", "", "")
	seedLink(t, st, t1, owner, "youtube", "https://youtube.com/watch?v=1")
	seedLink(t, st, t1, owner, "spotify", "https://open.spotify.com/track/1")
	seedLink(t, st, t2, owner, "soundcloud", "https://soundcloud.com/x")

	all, total, err := st.ListLinks(ctx, "", models.Window{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 3, total)
	require.Len(t, all, 3)

	found, total, err := st.ListLinks(ctx, "SPOTIFY", models.Window{Limit: 10})
	require.NoError(t, err)
	require.EqualValues(t, 1, total)
	require.Equal(t, "spotify", found[0].LinkType)

	byTrack, total, err := st.LinksByTrack(ctx, t1, models.Window{Limit: 1})
	require.NoError(t, err)
	require.EqualValues(t, 2, total)
	require.Len(t, byTrack, 1)

	grouped, err := st.LinksByTrackIDs(ctx, []int64{t1, t2, t3})
	require.NoError(t, err)
	require.Len(t, grouped[t1], 2)
	require.Len(t, grouped[t2], 1)
	require.NotContains(t, grouped, t3)

	empty, err := st.LinksByTrackIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, empty)
}
