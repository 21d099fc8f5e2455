package domain

import "errors"

var (
	ErrListingNotFound      = errors.New("room listing not found")
	UnexpectedDatabaseError = errors.New("unexpected database error")
)

// RoomListing is the lobby-facing projection of a room, mirrored into
// postgres so the lobby page can list rooms without talking to the session
// engine.
type RoomListing struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	PlayerCount    int    `json:"playerCount"`
	Status         string `json:"status"`
	IsSinglePlayer bool   `json:"isSinglePlayer"`
}
