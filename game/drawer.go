package game

import "math/rand"

// MaxCallNumber is the highest callable bingo number.
const MaxCallNumber = 75

// DrawNumber picks a uniformly random number in [1,75] that does not appear
// in called. ok is false once every number has been called. The called slice
// is never mutated.
func DrawNumber(called []int) (number int, ok bool) {
	used := make(map[int]bool, len(called))
	for _, n := range called {
		used[n] = true
	}

	available := make([]int, 0, MaxCallNumber-len(used))
	for n := 1; n <= MaxCallNumber; n++ {
		if !used[n] {
			available = append(available, n)
		}
	}

	if len(available) == 0 {
		return 0, false
	}
	return available[rand.Intn(len(available))], true
}
