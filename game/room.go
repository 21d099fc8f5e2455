package game

import "time"

type RoomStatus string

const (
	StatusWaiting  RoomStatus = "waiting"
	StatusPlaying  RoomStatus = "playing"
	StatusFinished RoomStatus = "finished"
)

const (
	minMultiplayerPlayers = 2

	singlePlayerCallInterval = 3 * time.Second
	multiplayerCallInterval  = 5 * time.Second
)

type Player struct {
	ID     string
	Name   string
	Card   Card
	HasWon bool
}

// Room is the aggregate for one bingo session. It is owned by the RoomStore
// and only ever touched from the hub goroutine.
type Room struct {
	ID             string
	Name           string
	Players        []*Player
	CalledNumbers  []int
	CurrentNumber  int // 0 until the first call
	Status         RoomStatus
	Winner         *Player
	IsSinglePlayer bool
}

func (r *Room) FindPlayer(userID string) *Player {
	for _, p := range r.Players {
		if p.ID == userID {
			return p
		}
	}
	return nil
}

// CallInterval is the cadence at which numbers are called for this room.
func (r *Room) CallInterval() time.Duration {
	if r.IsSinglePlayer {
		return singlePlayerCallInterval
	}
	return multiplayerCallInterval
}

// PlayerState and RoomState are the wire shapes broadcast to clients.

type PlayerState struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Card   Card   `json:"card"`
	HasWon bool   `json:"hasWon"`
}

type RoomState struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Players        []PlayerState `json:"players"`
	CalledNumbers  []int         `json:"calledNumbers"`
	CurrentNumber  *int          `json:"currentNumber"`
	Status         RoomStatus    `json:"status"`
	Winner         *PlayerState  `json:"winner"`
	IsSinglePlayer bool          `json:"isSinglePlayer"`
}

// State snapshots the room for a gameState broadcast.
func (r *Room) State() RoomState {
	state := RoomState{
		ID:             r.ID,
		Name:           r.Name,
		Players:        make([]PlayerState, 0, len(r.Players)),
		CalledNumbers:  append(make([]int, 0, len(r.CalledNumbers)), r.CalledNumbers...),
		Status:         r.Status,
		IsSinglePlayer: r.IsSinglePlayer,
	}
	for _, p := range r.Players {
		state.Players = append(state.Players, playerState(p))
	}
	if len(r.CalledNumbers) > 0 {
		current := r.CurrentNumber
		state.CurrentNumber = &current
	}
	if r.Winner != nil {
		winner := playerState(r.Winner)
		state.Winner = &winner
	}
	return state
}

func playerState(p *Player) PlayerState {
	return PlayerState{ID: p.ID, Name: p.Name, Card: p.Card, HasWon: p.HasWon}
}
