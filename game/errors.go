package game

import "errors"

var (
	ErrDuplicateRoom       = errors.New("room id already in use")
	ErrRoomNotFound        = errors.New("room not found")
	ErrInsufficientPlayers = errors.New("not enough players to start")
	ErrUnknownPlayer       = errors.New("player not in room")
	ErrInvalidWinClaim     = errors.New("card has no completed line")
	ErrInvalidPayload      = errors.New("malformed event payload")
)
