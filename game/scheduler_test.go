package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallScheduler_ForwardsTicks(t *testing.T) {
	tickers := &MockTickerCreator{}
	tickC := make(chan time.Time, 1)
	tickers.On("Create", 3*time.Second).Return(tickC, func() {}).Once()

	s := NewCallScheduler(tickers)
	s.Start("r1", 3*time.Second)
	require.True(t, s.Running("r1"))

	tickC <- time.Now()
	select {
	case roomID := <-s.Ticks():
		assert.Equal(t, "r1", roomID)
	case <-time.After(time.Second):
		t.Fatal("tick was not forwarded")
	}

	tickers.AssertExpectations(t)
}

func TestCallScheduler_DuplicateStartIsNoOp(t *testing.T) {
	tickers := &MockTickerCreator{}
	tickC := make(chan time.Time, 1)
	tickers.On("Create", 5*time.Second).Return(tickC, func() {}).Once()

	s := NewCallScheduler(tickers)
	s.Start("r1", 5*time.Second)
	s.Start("r1", 5*time.Second)

	tickers.AssertNumberOfCalls(t, "Create", 1)
}

func TestCallScheduler_StopCancelsTimer(t *testing.T) {
	tickers := &MockTickerCreator{}
	tickC := make(chan time.Time, 1)
	stopped := make(chan struct{})
	tickers.On("Create", 3*time.Second).Return(tickC, func() { close(stopped) }).Once()

	s := NewCallScheduler(tickers)
	s.Start("r1", 3*time.Second)
	s.Stop("r1")
	assert.False(t, s.Running("r1"))

	// double stop must be harmless
	s.Stop("r1")

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("underlying ticker was not stopped")
	}

	// once the forwarder has exited, a late fire goes nowhere
	tickC <- time.Now()
	select {
	case roomID := <-s.Ticks():
		t.Fatalf("unexpected tick for %q after stop", roomID)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestCallScheduler_StopUnknownRoom(t *testing.T) {
	s := NewCallScheduler(&MockTickerCreator{})
	s.Stop("never-started")
	assert.False(t, s.Running("never-started"))
}
