package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStore_CreateDuplicate(t *testing.T) {
	s := NewRoomStore()

	room, err := s.Create("r1", "Friday Night", false)
	require.NoError(t, err)
	assert.Equal(t, StatusWaiting, room.Status)

	_, err = s.Create("r1", "Impostor", true)
	assert.ErrorIs(t, err, ErrDuplicateRoom)

	// the original room is untouched
	got, ok := s.Get("r1")
	require.True(t, ok)
	assert.Equal(t, "Friday Night", got.Name)
	assert.False(t, got.IsSinglePlayer)
}

func TestRoomStore_JoinIdempotent(t *testing.T) {
	s := NewRoomStore()
	_, err := s.Create("r1", "Friday Night", false)
	require.NoError(t, err)

	room, first, err := s.Join("r1", "u1", "alice")
	require.NoError(t, err)
	require.Len(t, room.Players, 1)

	first.HasWon = true

	room, second, err := s.Join("r1", "u1", "alice again")
	require.NoError(t, err)
	assert.Len(t, room.Players, 1)
	assert.Same(t, first, second)
	assert.Equal(t, first.Card.ID, second.Card.ID)
	assert.True(t, second.HasWon)
	assert.Equal(t, "alice", second.Name)
}

func TestRoomStore_JoinUnknownRoom(t *testing.T) {
	s := NewRoomStore()
	_, _, err := s.Join("ghost", "u1", "alice")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStore_LeaveEmptiesRoom(t *testing.T) {
	s := NewRoomStore()
	_, err := s.Create("r1", "Friday Night", false)
	require.NoError(t, err)
	_, _, err = s.Join("r1", "u1", "alice")
	require.NoError(t, err)
	_, _, err = s.Join("r1", "u2", "bob")
	require.NoError(t, err)

	room, emptied, err := s.Leave("r1", "u1")
	require.NoError(t, err)
	assert.False(t, emptied)
	require.Len(t, room.Players, 1)
	assert.Equal(t, "u2", room.Players[0].ID)

	_, emptied, err = s.Leave("r1", "u2")
	require.NoError(t, err)
	assert.True(t, emptied)

	_, ok := s.Get("r1")
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestRoomStore_LeaveUnknownRoom(t *testing.T) {
	s := NewRoomStore()
	_, _, err := s.Leave("ghost", "u1")
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoomStore_LeaveUnknownPlayerKeepsRoom(t *testing.T) {
	s := NewRoomStore()
	_, err := s.Create("r1", "Friday Night", false)
	require.NoError(t, err)
	_, _, err = s.Join("r1", "u1", "alice")
	require.NoError(t, err)

	room, emptied, err := s.Leave("r1", "stranger")
	require.NoError(t, err)
	assert.False(t, emptied)
	assert.Len(t, room.Players, 1)
}
