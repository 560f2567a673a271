package validation

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type sample struct {
	Username string `json:"username" validate:"required,max=5"`
	Email    string `json:"email" validate:"required,email"`
	URL      string `json:"link_url" validate:"omitempty,url"`
}

func TestStruct_OK(t *testing.T) {
	t.Parallel()

	require.NoError(t, Struct(sample{Username: "josh", Email: "josh@x.com"}))
}

func TestStruct_CollectsFieldsByJSONName(t *testing.T) {
	t.Parallel()

	err := Struct(sample{Username: "toolongname", Email: "nope", URL: "::"})
	ve, ok := As(err)
	require.True(t, ok)
	require.Len(t, ve.Fields, 3)
	require.Equal(t, "username", ve.Fields[0].Field)
	require.Equal(t, "must be at most 5 characters", ve.Fields[0].Message)
	require.Equal(t, "email", ve.Fields[1].Field)
	require.Equal(t, "link_url", ve.Fields[2].Field)
	require.Contains(t, ve.Error(), "email: must be a valid email address")
	require.False(t, ve.MissingFields())
}

func TestStruct_MissingFields(t *testing.T) {
	t.Parallel()

	err := Struct(sample{})
	ve, ok := As(err)
	require.True(t, ok)
	require.True(t, ve.MissingFields())
}

func TestAs_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("op: %w", New("per_page cannot exceed 100"))
	ve, ok := As(wrapped)
	require.True(t, ok)
	require.Equal(t, "per_page cannot exceed 100", ve.Message)

	_, ok = As(fmt.Errorf("plain"))
	require.False(t, ok)
}
