package game

import "time"

const tickQueueSize = 64

// CallScheduler owns the per-room call timers. Each started room gets one
// forwarding goroutine that funnels ticker fires into a single channel the
// hub drains, so all tick handling still happens on the hub goroutine.
// Start and Stop are themselves only called from the hub goroutine, which is
// why the running map needs no lock.
type CallScheduler struct {
	tickers TickerCreator
	ticks   chan string
	running map[string]chan struct{}
}

func NewCallScheduler(tickers TickerCreator) *CallScheduler {
	return &CallScheduler{
		tickers: tickers,
		ticks:   make(chan string, tickQueueSize),
		running: make(map[string]chan struct{}),
	}
}

// Ticks delivers the id of each room whose call timer fired.
func (s *CallScheduler) Ticks() <-chan string {
	return s.ticks
}

// Start begins the recurring call timer for a room. A second Start for a
// room that is already running is a no-op, so a duplicate startGame or an
// auto-start race cannot spin up a second timer.
func (s *CallScheduler) Start(roomID string, interval time.Duration) {
	if _, ok := s.running[roomID]; ok {
		return
	}
	done := make(chan struct{})
	s.running[roomID] = done

	tickC, stop := s.tickers.Create(interval)
	go func() {
		defer stop()
		for {
			select {
			case <-done:
				return
			case <-tickC:
				select {
				case s.ticks <- roomID:
				case <-done:
					return
				}
			}
		}
	}()
}

// Stop cancels a room's timer. Safe for rooms that were never started or
// were already stopped, so teardown paths can call it unconditionally.
func (s *CallScheduler) Stop(roomID string) {
	done, ok := s.running[roomID]
	if !ok {
		return
	}
	delete(s.running, roomID)
	close(done)
}

// Running reports whether a room currently has a live call timer.
func (s *CallScheduler) Running(roomID string) bool {
	_, ok := s.running[roomID]
	return ok
}
