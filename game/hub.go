package game

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/acehidan/bingo/domain"
)

const (
	eventQueueSize = 256
	listingTimeout = 5 * time.Second
)

// ListingStore mirrors room metadata into the lobby listing. The hub uses it
// best-effort and never blocks its loop on it.
type ListingStore interface {
	UpsertListing(ctx context.Context, listing domain.RoomListing) error
	DeleteListing(ctx context.Context, roomID string) error
}

type inbound struct {
	event Event
	from  Subscriber
}

// Hub is the session protocol handler. One goroutine (Run) processes every
// client event, scheduler tick, and session attach/detach, so room state is
// mutated from exactly one place and needs no locks. Events for a room are
// handled in arrival order.
type Hub struct {
	store     *RoomStore
	scheduler *CallScheduler
	registry  *Registry
	listings  ListingStore

	events chan inbound
	attach chan Subscriber
	detach chan Subscriber
}

func NewHub(store *RoomStore, scheduler *CallScheduler, listings ListingStore) *Hub {
	return &Hub{
		store:     store,
		scheduler: scheduler,
		registry:  NewRegistry(),
		listings:  listings,
		events:    make(chan inbound, eventQueueSize),
		attach:    make(chan Subscriber, 16),
		detach:    make(chan Subscriber, 16),
	}
}

// Attach registers a connected session for global broadcasts.
func (h *Hub) Attach(sub Subscriber) {
	h.attach <- sub
}

// Detach drops a session from all broadcast sets. It does not touch any
// roster; membership is keyed by user id, not by connection.
func (h *Hub) Detach(sub Subscriber) {
	h.detach <- sub
}

// Dispatch queues a client event for processing. from receives the ack and
// any room-scoped broadcasts it becomes subscribed to.
func (h *Hub) Dispatch(e Event, from Subscriber) {
	h.events <- inbound{event: e, from: from}
}

// Run drives the hub until ctx is cancelled. started is closed once the loop
// is receiving.
func (h *Hub) Run(ctx context.Context, started chan struct{}) {
	close(started)
	for {
		select {
		case <-ctx.Done():
			return
		case sub := <-h.attach:
			h.registry.Attach(sub)
		case sub := <-h.detach:
			h.registry.Detach(sub)
		case roomID := <-h.scheduler.Ticks():
			h.handleTick(roomID)
		case in := <-h.events:
			h.dispatch(in)
		}
	}
}

func (h *Hub) dispatch(in inbound) {
	var err error
	var gameID string

	switch in.event.Name {
	case EventCreateGame:
		var p CreateGamePayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleCreate(p, false)
		}
	case EventCreateSinglePlayerGame:
		var p CreateGamePayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleCreate(p, true)
		}
	case EventJoinGame:
		var p JoinGamePayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleJoin(p, in.from)
		}
	case EventLeaveGame:
		var p LeaveGamePayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleLeave(p, in.from)
		}
	case EventStartGame:
		var p StartGamePayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleStart(p)
		}
	case EventPlayerWon:
		var p PlayerWonPayload
		if err = decode(in.event.Payload, &p); err == nil {
			gameID = p.GameID
			err = h.handleWin(p)
		}
	default:
		log.Debug().Str("event", in.event.Name).Msg("ignoring unknown event")
		return
	}

	h.ack(in.from, in.event.Name, gameID, err)
}

func decode(data json.RawMessage, dst any) error {
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

func (h *Hub) ack(to Subscriber, event, gameID string, err error) {
	if to == nil {
		return
	}
	payload := AckPayload{Event: event, GameID: gameID, OK: err == nil}
	if err != nil {
		payload.Error = errorCode(err)
		log.Debug().Err(err).Str("event", event).Str("room", gameID).Msg("event rejected")
	}
	to.Send(makeEvent(EventAck, payload))
}

func (h *Hub) handleCreate(p CreateGamePayload, singlePlayer bool) error {
	room, err := h.store.Create(p.GameID, p.Name, singlePlayer)
	if err != nil {
		return err
	}
	log.Info().Str("room", room.ID).Bool("single_player", singlePlayer).Msg("room created")
	h.registry.BroadcastAll(makeEvent(EventGameCreated, nil))
	h.syncListing(room)
	return nil
}

func (h *Hub) handleJoin(p JoinGamePayload, from Subscriber) error {
	room, _, err := h.store.Join(p.GameID, p.UserID, p.PlayerName)
	if err != nil {
		return err
	}
	if from != nil {
		h.registry.Subscribe(room.ID, from)
	}
	// Single-player rooms start calling the moment the player arrives.
	if room.IsSinglePlayer && room.Status == StatusWaiting {
		h.startCalling(room)
	}
	h.broadcastState(room)
	h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
	h.syncListing(room)
	return nil
}

func (h *Hub) handleLeave(p LeaveGamePayload, from Subscriber) error {
	room, emptied, err := h.store.Leave(p.GameID, p.UserID)
	if err != nil {
		return err
	}
	if from != nil {
		h.registry.Unsubscribe(p.GameID, from)
	}
	if emptied {
		h.scheduler.Stop(p.GameID)
		h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
		h.dropListing(p.GameID)
		log.Info().Str("room", p.GameID).Msg("room emptied, torn down")
		return nil
	}
	h.broadcastState(room)
	h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
	h.syncListing(room)
	return nil
}

func (h *Hub) handleStart(p StartGamePayload) error {
	room, ok := h.store.Get(p.GameID)
	if !ok {
		return ErrRoomNotFound
	}
	if !room.IsSinglePlayer && len(room.Players) < minMultiplayerPlayers {
		return ErrInsufficientPlayers
	}
	// waiting -> playing only; a repeat start on a playing or finished room
	// changes nothing.
	if room.Status != StatusWaiting {
		return nil
	}
	h.startCalling(room)
	h.broadcastState(room)
	h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
	h.syncListing(room)
	return nil
}

func (h *Hub) handleWin(p PlayerWonPayload) error {
	room, ok := h.store.Get(p.GameID)
	if !ok {
		return ErrRoomNotFound
	}
	player := room.FindPlayer(p.UserID)
	if player == nil {
		return ErrUnknownPlayer
	}
	if room.Status == StatusFinished {
		return nil
	}
	if !HasWinningLine(player.Card, room.CalledNumbers) {
		return ErrInvalidWinClaim
	}

	player.HasWon = true
	room.Winner = player
	room.Status = StatusFinished
	h.scheduler.Stop(room.ID)

	log.Info().Str("room", room.ID).Str("winner", player.ID).Msg("game won")
	h.registry.BroadcastRoom(room.ID, makeEvent(EventGameWon, GameWonPayload{
		GameID:     room.ID,
		UserID:     player.ID,
		PlayerName: player.Name,
	}))
	h.broadcastState(room)
	h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
	h.syncListing(room)
	return nil
}

// handleTick runs one call cycle for a room. A tick that arrives after the
// room finished or was torn down is a no-op beyond stopping the timer.
func (h *Hub) handleTick(roomID string) {
	room, ok := h.store.Get(roomID)
	if !ok {
		h.scheduler.Stop(roomID)
		return
	}
	if room.Status != StatusPlaying {
		h.scheduler.Stop(roomID)
		return
	}

	number, ok := DrawNumber(room.CalledNumbers)
	if !ok {
		room.Status = StatusFinished
		h.scheduler.Stop(roomID)
		h.broadcastState(room)
		h.registry.BroadcastAll(makeEvent(EventGameUpdated, nil))
		h.syncListing(room)
		return
	}

	room.CalledNumbers = append(room.CalledNumbers, number)
	room.CurrentNumber = number
	h.registry.BroadcastRoom(roomID, makeEvent(EventNumberCalled, NumberCalledPayload{
		GameID: roomID,
		Number: number,
	}))
	h.broadcastState(room)
}

func (h *Hub) startCalling(room *Room) {
	room.Status = StatusPlaying
	h.scheduler.Start(room.ID, room.CallInterval())
}

func (h *Hub) broadcastState(room *Room) {
	h.registry.BroadcastRoom(room.ID, makeEvent(EventGameState, room.State()))
}

func (h *Hub) syncListing(room *Room) {
	if h.listings == nil {
		return
	}
	listing := domain.RoomListing{
		ID:             room.ID,
		Name:           room.Name,
		PlayerCount:    len(room.Players),
		Status:         string(room.Status),
		IsSinglePlayer: room.IsSinglePlayer,
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), listingTimeout)
		defer cancel()
		if err := h.listings.UpsertListing(ctx, listing); err != nil {
			log.Error().Err(err).Str("room", listing.ID).Msg("listing upsert failed")
		}
	}()
}

func (h *Hub) dropListing(roomID string) {
	if h.listings == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), listingTimeout)
		defer cancel()
		if err := h.listings.DeleteListing(ctx, roomID); err != nil {
			log.Error().Err(err).Str("room", roomID).Msg("listing delete failed")
		}
	}()
}
