package game

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/acehidan/bingo/domain"
)

// --- Conn ---

type MockConn struct {
	mock.Mock
}

func (m *MockConn) Read() ([]byte, error) {
	args := m.Called()
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockConn) Write(data []byte) error {
	args := m.Called(data)
	return args.Error(0)
}

func (m *MockConn) Ping() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockConn) Close(reason string) {
	m.Called(reason)
}

// --- TickerCreator ---

type MockTickerCreator struct {
	mock.Mock
}

func (m *MockTickerCreator) Create(d time.Duration) (<-chan time.Time, func()) {
	args := m.Called(d)
	return args.Get(0).(chan time.Time), args.Get(1).(func())
}

// --- Subscriber ---

type captureSub struct {
	events []Event
}

func (c *captureSub) Send(e Event) {
	c.events = append(c.events, e)
}

func (c *captureSub) count(name string) int {
	n := 0
	for _, e := range c.events {
		if e.Name == name {
			n++
		}
	}
	return n
}

func (c *captureSub) last(t *testing.T, name string) Event {
	t.Helper()
	for i := len(c.events) - 1; i >= 0; i-- {
		if c.events[i].Name == name {
			return c.events[i]
		}
	}
	t.Fatalf("no %q event captured", name)
	return Event{}
}

func (c *captureSub) lastAck(t *testing.T) AckPayload {
	t.Helper()
	var ack AckPayload
	require.NoError(t, json.Unmarshal(c.last(t, EventAck).Payload, &ack))
	return ack
}

func (c *captureSub) reset() {
	c.events = nil
}

// --- ListingStore ---

type fakeListings struct {
	upserts chan domain.RoomListing
	deletes chan string
}

func newFakeListings() *fakeListings {
	return &fakeListings{
		upserts: make(chan domain.RoomListing, 16),
		deletes: make(chan string, 16),
	}
}

func (f *fakeListings) UpsertListing(_ context.Context, listing domain.RoomListing) error {
	f.upserts <- listing
	return nil
}

func (f *fakeListings) DeleteListing(_ context.Context, roomID string) error {
	f.deletes <- roomID
	return nil
}
