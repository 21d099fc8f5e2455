package game

import (
	"math/rand"

	"github.com/google/uuid"
)

const (
	cardSize = 5
	freeRow  = 2
	freeCol  = 2
)

// columnRanges reserves a disjoint sub-range of [1,75] per column:
// B 1-15, I 16-30, N 31-45, G 46-60, O 61-75.
var columnRanges = [cardSize][2]int{{1, 15}, {16, 30}, {31, 45}, {46, 60}, {61, 75}}

type Cell struct {
	Number int  `json:"number"`
	Marked bool `json:"marked"`
}

type Card struct {
	ID    string                   `json:"id"`
	Cells [cardSize][cardSize]Cell `json:"cells"`
}

// GenerateCard builds a fresh 5x5 card. Each column gets five distinct
// numbers from its reserved range, placed in draw order; the center cell is
// the free cell, number 0 and pre-marked.
func GenerateCard() Card {
	card := Card{ID: uuid.NewString()}

	for col := 0; col < cardSize; col++ {
		lo, hi := columnRanges[col][0], columnRanges[col][1]

		seen := make(map[int]bool, cardSize)
		numbers := make([]int, 0, cardSize)
		for len(numbers) < cardSize {
			n := rand.Intn(hi-lo+1) + lo
			if seen[n] {
				continue
			}
			seen[n] = true
			numbers = append(numbers, n)
		}

		for row := 0; row < cardSize; row++ {
			card.Cells[row][col] = Cell{Number: numbers[row]}
		}
	}

	card.Cells[freeRow][freeCol] = Cell{Number: 0, Marked: true}
	return card
}
