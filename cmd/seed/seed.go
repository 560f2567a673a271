package main

import (
	"context"
	"fmt"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/service"
)

// catalog — то, что нужно сервису для наполнения базы.
type catalog interface {
	RegisterUser(ctx context.Context, in service.RegisterInput) (*models.User, error)
	CreateTrack(ctx context.Context, ownerID int64, in service.TrackInput) (*models.Track, error)
	CreateLink(ctx context.Context, ownerID int64, in service.LinkInput) (*models.TrackLink, error)
}

type seedLink struct {
	track    int // индекс в seedTracks
	linkType string
	url      string
}

var (
	seedUsers = []service.RegisterInput{
		{Username: "josh", Email: "josh@example.com", Password: "pass1"},
		{Username: "dorrie", Email: "dorrie@example.com", Password: "pass2"},
	}

	// owner — индекс в seedUsers.
	seedTracks = []struct {
		owner int
		in    service.TrackInput
	}{
		{0, service.TrackInput{Title: "Whoa Ghana", Artist: "Beautiful's Dream", Genre: "multi"}},
		{0, service.TrackInput{Title: "No Hitting", Artist: "Beautiful's Dream", Genre: "multi"}},
		{0, service.TrackInput{Title: "Donut City", Artist: "Beautiful's Dream", Genre: "multi"}},
		{0, service.TrackInput{Title: "Can I Get an Intro", Artist: "Beautiful's Dream", Genre: "multi"}},
		{1, service.TrackInput{Title: "Dorrie's Dumpling", Artist: "Dorrance", Genre: "demo"}},
	}

	seedLinks = []seedLink{
		{0, "youtube", "https://www.youtube.com/watch?v=OKgmt14oonA"},
		{1, "youtube", "https://www.youtube.com/watch?v=0MzQ2Pg4Zkc"},
		{0, "spotify", "https://open.spotify.com/track/0t4UVXTeUEtFCcMZGjsHPH?si=6e6be9b85c69428a"},
		{2, "spotify", "https://open.spotify.com/track/3HZ7gHamJJzcjKbEENuGyY?si=518cc1dba71443c4"},
	}
)

// seed создаёт пользователей, треки и ссылки через сервисный слой.
// Ссылка принадлежит владельцу своего трека.
func seed(ctx context.Context, c catalog) error {
	const op = "seed"

	users := make([]*models.User, 0, len(seedUsers))
	for _, in := range seedUsers {
		u, err := c.RegisterUser(ctx, in)
		if err != nil {
			return fmt.Errorf("%s: user %s: %w", op, in.Username, err)
		}
		users = append(users, u)
	}

	tracks := make([]*models.Track, 0, len(seedTracks))
	for _, st := range seedTracks {
		tr, err := c.CreateTrack(ctx, users[st.owner].ID, st.in)
		if err != nil {
			return fmt.Errorf("%s: track %q: %w", op, st.in.Title, err)
		}
		tracks = append(tracks, tr)
	}

	for _, sl := range seedLinks {
		tr := tracks[sl.track]
		in := service.LinkInput{LinkType: sl.linkType, LinkURL: sl.url, TrackID: tr.ID}
		if _, err := c.CreateLink(ctx, tr.UserID, in); err != nil {
			return fmt.Errorf("%s: link %s: %w", op, sl.url, err)
		}
	}

	return nil
}
