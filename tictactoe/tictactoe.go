// Package tictactoe implements an optimal tic-tac-toe player via exhaustive
// minimax search. Boards are values; every operation returns a new board.
package tictactoe

import "fmt"

// Mark is the content of one cell.
type Mark byte

const (
	Empty Mark = 0
	X     Mark = 'X'
	O     Mark = 'O'
)

func (m Mark) String() string {
	if m == Empty {
		return " "
	}
	return string(byte(m))
}

// Board is a 3x3 grid, row-major.
type Board [3][3]Mark

// Move places the current player's mark at (Row, Col).
type Move struct {
	Row, Col int
}

// Player returns whose turn it is. X always moves first.
func (b Board) Player() Mark {
	xs, os := 0, 0
	for _, row := range b {
		for _, cell := range row {
			switch cell {
			case X:
				xs++
			case O:
				os++
			}
		}
	}
	if xs > os {
		return O
	}
	return X
}

// Actions returns every empty cell, in row-major order.
func (b Board) Actions() []Move {
	var moves []Move
	for i := range b {
		for j := range b[i] {
			if b[i][j] == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

// Result returns the board after the current player plays the move. The
// original board is unchanged.
func (b Board) Result(m Move) (Board, error) {
	if m.Row < 0 || m.Row > 2 || m.Col < 0 || m.Col > 2 {
		return b, fmt.Errorf("move (%d, %d) is off the board", m.Row, m.Col)
	}
	if b[m.Row][m.Col] != Empty {
		return b, fmt.Errorf("cell (%d, %d) is already taken", m.Row, m.Col)
	}
	b[m.Row][m.Col] = b.Player()
	return b, nil
}

// Winner returns the winning mark, or Empty if nobody has won.
func (b Board) Winner() Mark {
	lines := [8][3]Move{
		{{0, 0}, {0, 1}, {0, 2}},
		{{1, 0}, {1, 1}, {1, 2}},
		{{2, 0}, {2, 1}, {2, 2}},
		{{0, 0}, {1, 0}, {2, 0}},
		{{0, 1}, {1, 1}, {2, 1}},
		{{0, 2}, {1, 2}, {2, 2}},
		{{0, 0}, {1, 1}, {2, 2}},
		{{0, 2}, {1, 1}, {2, 0}},
	}
	for _, line := range lines {
		first := b[line[0].Row][line[0].Col]
		if first != Empty &&
			first == b[line[1].Row][line[1].Col] &&
			first == b[line[2].Row][line[2].Col] {
			return first
		}
	}
	return Empty
}

// Terminal reports whether the game is over.
func (b Board) Terminal() bool {
	return b.Winner() != Empty || len(b.Actions()) == 0
}

// Utility scores a terminal board: 1 if X won, -1 if O won, 0 otherwise.
func (b Board) Utility() int {
	switch b.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

func (b Board) String() string {
	s := ""
	for i, row := range b {
		if i > 0 {
			s += "---+---+---\n"
		}
		s += fmt.Sprintf(" %s | %s | %s \n", row[0], row[1], row[2])
	}
	return s
}
