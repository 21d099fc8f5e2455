package game

// Subscriber receives outbound events. Sessions implement it; tests assert
// on fakes instead of socket internals.
type Subscriber interface {
	Send(e Event)
}

// Registry tracks which subscribers are in which room plus the global set of
// connected subscribers that receive listing-changed signals. It is only
// touched from the hub goroutine.
type Registry struct {
	rooms  map[string]map[Subscriber]struct{}
	global map[Subscriber]struct{}
}

func NewRegistry() *Registry {
	return &Registry{
		rooms:  make(map[string]map[Subscriber]struct{}),
		global: make(map[Subscriber]struct{}),
	}
}

// Attach adds a connected subscriber to the global set.
func (r *Registry) Attach(sub Subscriber) {
	r.global[sub] = struct{}{}
}

// Detach removes a subscriber everywhere. Used on disconnect; room rosters
// are keyed by user id and stay untouched.
func (r *Registry) Detach(sub Subscriber) {
	delete(r.global, sub)
	for roomID := range r.rooms {
		r.Unsubscribe(roomID, sub)
	}
}

func (r *Registry) Subscribe(roomID string, sub Subscriber) {
	subs, ok := r.rooms[roomID]
	if !ok {
		subs = make(map[Subscriber]struct{})
		r.rooms[roomID] = subs
	}
	subs[sub] = struct{}{}
}

func (r *Registry) Unsubscribe(roomID string, sub Subscriber) {
	subs, ok := r.rooms[roomID]
	if !ok {
		return
	}
	delete(subs, sub)
	if len(subs) == 0 {
		delete(r.rooms, roomID)
	}
}

func (r *Registry) BroadcastRoom(roomID string, e Event) {
	for sub := range r.rooms[roomID] {
		sub.Send(e)
	}
}

func (r *Registry) BroadcastAll(e Event) {
	for sub := range r.global {
		sub.Send(e)
	}
}
