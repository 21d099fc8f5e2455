package game

// HasWinningLine reports whether the card contains a row, column, or
// diagonal whose every number has been called. The free cell counts as
// covered in any line through it. This is the authoritative win check; a
// client claim that fails it is rejected.
func HasWinningLine(card Card, called []int) bool {
	covered := make(map[int]bool, len(called))
	for _, n := range called {
		covered[n] = true
	}

	cellCovered := func(row, col int) bool {
		cell := card.Cells[row][col]
		return cell.Number == 0 || covered[cell.Number]
	}

	for i := 0; i < cardSize; i++ {
		rowDone, colDone := true, true
		for j := 0; j < cardSize; j++ {
			rowDone = rowDone && cellCovered(i, j)
			colDone = colDone && cellCovered(j, i)
		}
		if rowDone || colDone {
			return true
		}
	}

	mainDiag, antiDiag := true, true
	for i := 0; i < cardSize; i++ {
		mainDiag = mainDiag && cellCovered(i, i)
		antiDiag = antiDiag && cellCovered(i, cardSize-1-i)
	}
	return mainDiag || antiDiag
}
