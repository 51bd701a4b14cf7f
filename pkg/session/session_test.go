package session_test

import (
	"testing"

	"github.com/amirasaad/networth/pkg/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Parallel()
	s, err := session.New(uuid.New(), "a@b.com")
	require.NoError(t, err)
	assert.True(t, s.Valid())

	_, err = session.New(uuid.Nil, "a@b.com")
	assert.ErrorIs(t, err, session.ErrNoSession)
	_, err = session.New(uuid.New(), "")
	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.False(t, session.Session{}.Valid())
}
