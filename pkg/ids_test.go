package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalID(t *testing.T) {
	want := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	for _, raw := range []string{
		want,
		"6BA7B810-9DAD-11D1-80B4-00C04FD430C8",
		"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
		"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		"6ba7b8109dad11d180b400c04fd430c8",
		"  6ba7b810-9dad-11d1-80b4-00c04fd430c8 ",
	} {
		got, err := CanonicalID(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got)
	}

	_, err := CanonicalID("507f1f77bcf86cd799439011")
	assert.ErrorIs(t, err, ErrInvalidID)
	_, err = CanonicalID("")
	assert.ErrorIs(t, err, ErrInvalidID)
}

func TestNewID(t *testing.T) {
	id := NewID()
	canonical, err := CanonicalID(id)
	require.NoError(t, err)
	assert.Equal(t, id, canonical)
	assert.NotEqual(t, id, NewID())
}
