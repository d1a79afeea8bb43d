package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Generate("user-1", "session-1")
	require.NoError(t, err)

	claims, err := m.Validate(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "session-1", claims.ID)
}

func TestManager_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("different-secret", time.Hour)

	signed, err := m.Generate("user-1", "session-1")
	require.NoError(t, err)

	_, err = other.Validate(signed)
	assert.Error(t, err)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Generate("user-1", "session-1")
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.Error(t, err)
}

func TestManager_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Validate("not.a.token")
	assert.Error(t, err)
}
