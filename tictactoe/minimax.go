package tictactoe

// Minimax returns the optimal move for the player to move, assuming the
// opponent also plays optimally. ok is false on a terminal board.
func Minimax(b Board) (move Move, ok bool) {
	if b.Terminal() {
		return Move{}, false
	}

	if b.Player() == X {
		best := -2
		for _, m := range b.Actions() {
			next, err := b.Result(m)
			if err != nil {
				panic(err) // Actions only yields legal moves
			}
			if v := minValue(next); v > best {
				best = v
				move = m
			}
		}
	} else {
		best := 2
		for _, m := range b.Actions() {
			next, err := b.Result(m)
			if err != nil {
				panic(err)
			}
			if v := maxValue(next); v < best {
				best = v
				move = m
			}
		}
	}
	return move, true
}

func maxValue(b Board) int {
	if b.Terminal() {
		return b.Utility()
	}
	v := -2
	for _, m := range b.Actions() {
		next, _ := b.Result(m)
		if value := minValue(next); value > v {
			v = value
		}
	}
	return v
}

func minValue(b Board) int {
	if b.Terminal() {
		return b.Utility()
	}
	v := 2
	for _, m := range b.Actions() {
		next, _ := b.Result(m)
		if value := maxValue(next); value < v {
			v = value
		}
	}
	return v
}
