package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/pagination"
	"github.com/pribylovaa/go-tracks-api/internal/storage"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

func TestCreateTrack_OK(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.st.EXPECT().SaveTrack(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tr *models.Track) error {
			require.EqualValues(t, 7, tr.UserID)
			require.Equal(t, "Song One", tr.Title)
			tr.ID = 1
			return nil
		})

	tr, err := f.svc.CreateTrack(context.Background(), 7, TrackInput{Title: " Song One ", Artist: "Artist A"})
	require.NoError(t, err)
	require.EqualValues(t, 1, tr.ID)
	require.NotNil(t, tr.Links)
}

func TestCreateTrack_EmptyTitle(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	_, err := f.svc.CreateTrack(context.Background(), 7, TrackInput{Title: "  "})
	_, ok := validation.As(err)
	require.True(t, ok)
}

func TestTrack_NotFound(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.st.EXPECT().TrackByID(gomock.Any(), int64(9)).Return(nil, storage.ErrNotFound)

	_, err := f.svc.Track(context.Background(), 9)
	require.ErrorIs(t, err, ErrTrackNotFound)
}

func TestListTracks_EmbedsLinks_AndPaginates(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	p := pagination.Params{Page: 1, PerPage: 2}
	f.st.EXPECT().ListTracks(gomock.Any(), models.TrackFilter{Title: "song"}, models.Window{Limit: 2, Offset: 0}).
		Return([]models.Track{{ID: 1, Title: "Song One"}, {ID: 2, Title: "Song Two"}}, int64(5), nil)
	f.st.EXPECT().LinksByTrackIDs(gomock.Any(), []int64{1, 2}).
		Return(map[int64][]models.TrackLink{1: {{ID: 10, TrackID: 1, LinkType: "youtube"}}}, nil)

	page, err := f.svc.ListTracks(context.Background(), models.TrackFilter{Title: " song "}, p)
	require.NoError(t, err)
	require.Len(t, page.Data, 2)
	require.EqualValues(t, 5, page.Total)
	require.Equal(t, 3, page.Pages)
	require.Len(t, page.Data[0].Links, 1)
	require.NotNil(t, page.Data[1].Links)
	require.Empty(t, page.Data[1].Links)
}

func TestListTracks_BeyondLastPage(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.st.EXPECT().ListTracks(gomock.Any(), models.TrackFilter{}, models.Window{Limit: 2, Offset: 6}).
		Return(nil, int64(5), nil)

	page, err := f.svc.ListTracks(context.Background(), models.TrackFilter{}, pagination.Params{Page: 4, PerPage: 2})
	require.NoError(t, err)
	require.NotNil(t, page.Data)
	require.Empty(t, page.Data)
	require.Equal(t, 4, page.Page)
	require.EqualValues(t, 5, page.Total)
	require.Equal(t, 3, page.Pages)
}

func TestUpdateTrack(t *testing.T) {
	t.Parallel()

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		patch := models.TrackPatch{Genre: ptr("Indie")}
		f.st.EXPECT().UpdateTrack(gomock.Any(), int64(1), patch).Return(&models.Track{ID: 1, Genre: "Indie"}, nil)
		f.st.EXPECT().LinksByTrackIDs(gomock.Any(), []int64{1}).Return(map[int64][]models.TrackLink{}, nil)

		tr, err := f.svc.UpdateTrack(context.Background(), 1, patch)
		require.NoError(t, err)
		require.Equal(t, "Indie", tr.Genre)
	})

	t.Run("empty title", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		_, err := f.svc.UpdateTrack(context.Background(), 1, models.TrackPatch{Title: ptr("")})
		_, ok := validation.As(err)
		require.True(t, ok)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		f.st.EXPECT().UpdateTrack(gomock.Any(), int64(1), gomock.Any()).Return(nil, storage.ErrNotFound)
		_, err := f.svc.UpdateTrack(context.Background(), 1, models.TrackPatch{})
		require.ErrorIs(t, err, ErrTrackNotFound)
	})
}

func TestDeleteTrack_ReturnsDeleted(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.st.EXPECT().TrackByID(gomock.Any(), int64(1)).Return(&models.Track{ID: 1, Title: "Song One"}, nil)
	f.st.EXPECT().LinksByTrackIDs(gomock.Any(), []int64{1}).Return(map[int64][]models.TrackLink{}, nil)
	f.st.EXPECT().DeleteTrack(gomock.Any(), int64(1)).Return(nil)

	tr, err := f.svc.DeleteTrack(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "Song One", tr.Title)
}

func TestTracksByUser(t *testing.T) {
	t.Parallel()

	t.Run("unknown user", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		f.st.EXPECT().UserByID(gomock.Any(), int64(99)).Return(nil, storage.ErrNotFound)

		_, err := f.svc.TracksByUser(context.Background(), 99, pagination.Params{Page: 1, PerPage: 10})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t, false)
		f.st.EXPECT().UserByID(gomock.Any(), int64(7)).Return(&models.User{ID: 7}, nil)
		f.st.EXPECT().TracksByUser(gomock.Any(), int64(7), models.Window{Limit: 10}).
			Return([]models.Track{{ID: 3, UserID: 7}}, int64(1), nil)
		f.st.EXPECT().LinksByTrackIDs(gomock.Any(), []int64{3}).Return(nil, nil)

		page, err := f.svc.TracksByUser(context.Background(), 7, pagination.Params{Page: 1, PerPage: 10})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		require.Equal(t, 1, page.Pages)
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()
	f := newFixture(t, false)

	f.st.EXPECT().ListUsers(gomock.Any(), models.Window{Limit: 10, Offset: 10}).
		Return([]models.User{{ID: 11}}, int64(11), nil)

	page, err := f.svc.ListUsers(context.Background(), pagination.Params{Page: 2, PerPage: 10})
	require.NoError(t, err)
	require.Equal(t, 2, page.Page)
	require.Equal(t, 2, page.Pages)
	require.Len(t, page.Data, 1)
}
