package game

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// Conn is the transport a session reads and writes. The websocket adapter
// implements it; tests substitute mocks.
type Conn interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Ping() error
	Close(reason string)
}

const (
	sessionOutboxSize = 256
	pingInterval      = 30 * time.Second
)

// Session pumps events between one client connection and the hub.
type Session struct {
	conn    Conn
	hub     *Hub
	limiter *rate.Limiter
	outbox  chan []byte

	closed    chan struct{}
	closeOnce sync.Once
}

func NewSession(conn Conn, hub *Hub) *Session {
	return &Session{
		conn:    conn,
		hub:     hub,
		limiter: rate.NewLimiter(rate.Limit(5), 10),
		outbox:  make(chan []byte, sessionOutboxSize),
		closed:  make(chan struct{}),
	}
}

// Send implements Subscriber. A connection that cannot keep up has events
// dropped rather than stalling the hub loop.
func (s *Session) Send(e Event) {
	data, err := json.Marshal(e)
	if err != nil {
		log.Error().Err(err).Str("event", e.Name).Msg("failed to marshal outbound event")
		return
	}
	select {
	case s.outbox <- data:
	default:
		log.Warn().Str("event", e.Name).Msg("session outbox full, dropping event")
	}
}

// ReadPump decodes inbound events and hands them to the hub until the
// connection drops. Disconnecting detaches the session from broadcasts but
// mutates no room state; rosters are keyed by user id.
func (s *Session) ReadPump() {
	defer func() {
		s.hub.Detach(s)
		s.close("")
	}()

	for {
		data, err := s.conn.Read()
		if err != nil {
			return
		}
		if !s.limiter.Allow() {
			continue
		}
		var e Event
		if err := json.Unmarshal(data, &e); err != nil {
			continue
		}
		s.hub.Dispatch(e, s)
	}
}

// WritePump flushes outbound events and keeps the connection alive with
// periodic pings.
func (s *Session) WritePump(tickers TickerCreator) {
	pings, stop := tickers.Create(pingInterval)
	defer stop()

	for {
		select {
		case <-s.closed:
			return
		case data := <-s.outbox:
			if err := s.conn.Write(data); err != nil {
				s.close("")
				return
			}
		case <-pings:
			if err := s.conn.Ping(); err != nil {
				s.close("")
				return
			}
		}
	}
}

func (s *Session) close(reason string) {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.conn.Close(reason)
	})
}
