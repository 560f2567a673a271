package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/service"
)

// recCatalog запоминает вызовы и выдаёт последовательные id.
type recCatalog struct {
	seq    int64
	users  []models.User
	tracks []models.Track
	links  []models.TrackLink
	failOn string
}

func (c *recCatalog) RegisterUser(_ context.Context, in service.RegisterInput) (*models.User, error) {
	if in.Username == c.failOn {
		return nil, service.ErrUserExists
	}
	c.seq++
	u := models.User{ID: c.seq, Username: in.Username, Email: in.Email}
	c.users = append(c.users, u)
	return &u, nil
}

func (c *recCatalog) CreateTrack(_ context.Context, ownerID int64, in service.TrackInput) (*models.Track, error) {
	c.seq++
	t := models.Track{ID: c.seq, Title: in.Title, Artist: in.Artist, Genre: in.Genre, UserID: ownerID}
	c.tracks = append(c.tracks, t)
	return &t, nil
}

func (c *recCatalog) CreateLink(_ context.Context, ownerID int64, in service.LinkInput) (*models.TrackLink, error) {
	c.seq++
	l := models.TrackLink{ID: c.seq, LinkType: in.LinkType, LinkURL: in.LinkURL, TrackID: in.TrackID, UserID: ownerID}
	c.links = append(c.links, l)
	return &l, nil
}

func TestSeed_CreatesDemoCatalog(t *testing.T) {
	c := &recCatalog{}
	require.NoError(t, seed(context.Background(), c))

	require.Len(t, c.users, 2)
	require.Len(t, c.tracks, 5)
	require.Len(t, c.links, 4)

	josh, dorrie := c.users[0], c.users[1]
	require.Equal(t, "josh@example.com", josh.Email)
	require.Equal(t, dorrie.ID, c.tracks[4].UserID)
	for _, tr := range c.tracks[:4] {
		require.Equal(t, josh.ID, tr.UserID)
	}

	// Две ссылки у первого трека, по одной у второго и третьего.
	byTrack := map[int64]int{}
	for _, l := range c.links {
		byTrack[l.TrackID]++
		require.Equal(t, josh.ID, l.UserID)
	}
	require.Equal(t, map[int64]int{c.tracks[0].ID: 2, c.tracks[1].ID: 1, c.tracks[2].ID: 1}, byTrack)
}

func TestSeed_StopsOnError(t *testing.T) {
	c := &recCatalog{failOn: "dorrie"}

	err := seed(context.Background(), c)
	require.True(t, errors.Is(err, service.ErrUserExists))
	require.Empty(t, c.tracks)
}
