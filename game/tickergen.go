package game

import "time"

// TickerCreator abstracts time.Ticker construction so tick-driven loops can
// be tested with hand-fed channels. The returned func stops the ticker.
type TickerCreator interface {
	Create(d time.Duration) (<-chan time.Time, func())
}

type tickerGen struct{}

func (tickerGen) Create(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

func NewTickerGen() TickerCreator {
	return tickerGen{}
}
