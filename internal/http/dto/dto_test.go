package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-tracks-api/internal/models"
	"github.com/pribylovaa/go-tracks-api/internal/validation"
)

func TestRegisterRequest_Validation(t *testing.T) {
	t.Parallel()

	err := validation.Struct(RegisterRequest{Username: "josh", Email: "not-an-email", Password: "x"})
	ve, ok := validation.As(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 1)
	require.Equal(t, "email", ve.Fields[0].Field)
	require.False(t, ve.MissingFields())

	err = validation.Struct(RegisterRequest{})
	ve, ok = validation.As(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 3)
	require.True(t, ve.MissingFields())

	require.NoError(t, validation.Struct(RegisterRequest{Username: "josh", Email: "josh@example.com", Password: "pass1"}))
}

func TestUpdateRequests_OmitNil(t *testing.T) {
	t.Parallel()

	require.NoError(t, validation.Struct(TrackUpdateRequest{}))
	require.NoError(t, validation.Struct(LinkUpdateRequest{}))

	empty := ""
	require.Error(t, validation.Struct(TrackUpdateRequest{Title: &empty}))

	bad := "nope"
	require.Error(t, validation.Struct(LinkUpdateRequest{LinkURL: &bad}))
}

func TestLinkCreateRequest_TrackIDRequired(t *testing.T) {
	t.Parallel()

	err := validation.Struct(LinkCreateRequest{LinkType: "youtube", LinkURL: "https://youtu.be/x"})
	ve, ok := validation.As(err)
	require.True(t, ok)
	require.Equal(t, "track_id", ve.Fields[0].Field)
}

func TestUserView_HasNoPasswordFields(t *testing.T) {
	t.Parallel()

	ts := time.Date(2025, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3*3600))
	raw, err := json.Marshal(User(models.User{ID: 1, Username: "josh", Email: "josh@example.com", PasswordHash: "secret-hash", CreatedAt: ts, UpdatedAt: ts}))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	require.ElementsMatch(t, []string{"id", "username", "email", "created_at", "updated_at"}, keys(m))
	require.NotContains(t, string(raw), "secret-hash")
	require.Equal(t, "2025-03-01T07:00:00Z", m["created_at"])
}

func TestTrackView_LinksNeverNull(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Track(models.Track{ID: 1, Title: "Whoa Ghana"}))
	require.NoError(t, err)
	require.Contains(t, string(raw), `"links":[]`)
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}

	return out
}
