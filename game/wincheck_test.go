package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedCard builds a deterministic card: cells[row][col] holds the column
// range's lowest number plus the row, so row 0 is 1,16,31,46,61 and column 0
// is 1..5.
func fixedCard() Card {
	card := Card{ID: "card-fixed"}
	for col := 0; col < cardSize; col++ {
		for row := 0; row < cardSize; row++ {
			card.Cells[row][col] = Cell{Number: columnRanges[col][0] + row}
		}
	}
	card.Cells[freeRow][freeCol] = Cell{Number: 0, Marked: true}
	return card
}

func TestHasWinningLine(t *testing.T) {
	card := fixedCard()

	testCases := []struct {
		desc   string
		called []int
		want   bool
	}{
		{desc: "nothing called", called: []int{}, want: false},
		{desc: "top row", called: []int{1, 16, 31, 46, 61}, want: true},
		{desc: "first column", called: []int{1, 2, 3, 4, 5}, want: true},
		{desc: "middle row through free cell", called: []int{3, 18, 48, 63}, want: true},
		{desc: "main diagonal through free cell", called: []int{1, 17, 49, 65}, want: true},
		{desc: "anti diagonal through free cell", called: []int{61, 47, 19, 5}, want: true},
		{desc: "four of five in a row", called: []int{1, 16, 31, 46}, want: false},
		{desc: "scattered calls", called: []int{1, 18, 35, 50, 62, 74}, want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			assert.Equal(t, tc.want, HasWinningLine(card, tc.called))
		})
	}
}

func TestHasWinningLine_IgnoresUncalledMarks(t *testing.T) {
	// A card whose cells are all client-marked still loses if the numbers
	// were never called; only calledNumbers is authoritative.
	card := fixedCard()
	for row := 0; row < cardSize; row++ {
		for col := 0; col < cardSize; col++ {
			card.Cells[row][col].Marked = true
		}
	}
	assert.False(t, HasWinningLine(card, []int{2, 20}))
}
