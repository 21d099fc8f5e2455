package game

// RoomStore is the in-memory source of truth for all sessions, keyed by room
// id. Every mutation happens on the hub goroutine, so the map carries no
// lock; nothing ever observes a room mid-mutation.
type RoomStore struct {
	rooms map[string]*Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{rooms: make(map[string]*Room)}
}

// Create registers a new room in the waiting state. Reusing a live room id
// is an error, never an overwrite.
func (s *RoomStore) Create(id, name string, singlePlayer bool) (*Room, error) {
	if _, exists := s.rooms[id]; exists {
		return nil, ErrDuplicateRoom
	}
	room := &Room{
		ID:             id,
		Name:           name,
		Players:        []*Player{},
		CalledNumbers:  []int{},
		Status:         StatusWaiting,
		IsSinglePlayer: singlePlayer,
	}
	s.rooms[id] = room
	return room, nil
}

func (s *RoomStore) Get(id string) (*Room, bool) {
	room, ok := s.rooms[id]
	return room, ok
}

// Join adds a player with a freshly generated card. Joining twice with the
// same user id returns the existing player untouched, card included.
func (s *RoomStore) Join(id, userID, name string) (*Room, *Player, error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, nil, ErrRoomNotFound
	}
	if existing := room.FindPlayer(userID); existing != nil {
		return room, existing, nil
	}
	player := &Player{ID: userID, Name: name, Card: GenerateCard()}
	room.Players = append(room.Players, player)
	return room, player, nil
}

// Leave removes the player from the roster. When the roster empties the room
// is deleted and emptied reports true so the caller can cancel its timer.
func (s *RoomStore) Leave(id, userID string) (room *Room, emptied bool, err error) {
	room, ok := s.rooms[id]
	if !ok {
		return nil, false, ErrRoomNotFound
	}
	for i, p := range room.Players {
		if p.ID == userID {
			room.Players = append(room.Players[:i], room.Players[i+1:]...)
			break
		}
	}
	if len(room.Players) == 0 {
		delete(s.rooms, id)
		return room, true, nil
	}
	return room, false, nil
}

func (s *RoomStore) Delete(id string) {
	delete(s.rooms, id)
}

func (s *RoomStore) Len() int {
	return len(s.rooms)
}
