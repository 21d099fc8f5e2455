package game

import (
	"encoding/json"
	"errors"

	"github.com/rs/zerolog/log"
)

// Inbound event names, matching what the frontend emits.
const (
	EventCreateGame             = "createGame"
	EventCreateSinglePlayerGame = "createSinglePlayerGame"
	EventJoinGame               = "joinGame"
	EventLeaveGame              = "leaveGame"
	EventStartGame              = "startGame"
	EventPlayerWon              = "playerWon"
)

// Outbound event names.
const (
	EventGameCreated  = "gameCreated"
	EventGameUpdated  = "gameUpdated"
	EventGameState    = "gameState"
	EventNumberCalled = "numberCalled"
	EventGameWon      = "gameWon"
	EventAck          = "ack"
)

// Event is the wire envelope for both directions: a named event plus an
// optional JSON payload.
type Event struct {
	Name    string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

func makeEvent(name string, payload any) Event {
	e := Event{Name: name}
	if payload == nil {
		return e
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("event", name).Msg("failed to marshal event payload")
		return e
	}
	e.Payload = data
	return e
}

type CreateGamePayload struct {
	GameID string `json:"gameId"`
	Name   string `json:"name"`
}

type JoinGamePayload struct {
	GameID     string `json:"gameId"`
	UserID     string `json:"userId"`
	PlayerName string `json:"playerName"`
}

type LeaveGamePayload struct {
	GameID string `json:"gameId"`
	UserID string `json:"userId"`
}

type StartGamePayload struct {
	GameID string `json:"gameId"`
}

type PlayerWonPayload struct {
	GameID     string `json:"gameId"`
	UserID     string `json:"userId"`
	PlayerName string `json:"playerName"`
}

type NumberCalledPayload struct {
	GameID string `json:"gameId"`
	Number int    `json:"number"`
}

type GameWonPayload struct {
	GameID     string `json:"gameId"`
	UserID     string `json:"userId"`
	PlayerName string `json:"playerName"`
}

// AckPayload reports to the sender whether its event was processed, so a
// client can tell a rejected event apart from a silently dropped one.
type AckPayload struct {
	Event  string `json:"event"`
	GameID string `json:"gameId,omitempty"`
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, ErrDuplicateRoom):
		return "duplicateRoom"
	case errors.Is(err, ErrRoomNotFound):
		return "roomNotFound"
	case errors.Is(err, ErrInsufficientPlayers):
		return "insufficientPlayers"
	case errors.Is(err, ErrUnknownPlayer):
		return "unknownPlayer"
	case errors.Is(err, ErrInvalidWinClaim):
		return "invalidWinClaim"
	case errors.Is(err, ErrInvalidPayload):
		return "invalidPayload"
	default:
		return "internal"
	}
}
