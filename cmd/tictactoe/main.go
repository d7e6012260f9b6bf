package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"cs50ai/tictactoe"
)

func main() {
	in := bufio.NewScanner(os.Stdin)
	human := chooseMark(in)

	board := tictactoe.Board{}
	for !board.Terminal() {
		fmt.Println()
		fmt.Print(board)

		var move tictactoe.Move
		if board.Player() == human {
			move = readMove(in, board)
		} else {
			move, _ = tictactoe.Minimax(board)
			fmt.Printf("Computer plays %d %d\n", move.Row, move.Col)
		}

		next, err := board.Result(move)
		if err != nil {
			fmt.Println(err)
			continue
		}
		board = next
	}

	fmt.Println()
	fmt.Print(board)
	switch board.Winner() {
	case tictactoe.Empty:
		fmt.Println("Draw.")
	case human:
		fmt.Println("You win.")
	default:
		fmt.Println("Computer wins.")
	}
}

func chooseMark(in *bufio.Scanner) tictactoe.Mark {
	for {
		fmt.Print("Play as X or O? ")
		if !in.Scan() {
			os.Exit(0)
		}
		switch strings.ToUpper(strings.TrimSpace(in.Text())) {
		case "X":
			return tictactoe.X
		case "O":
			return tictactoe.O
		}
		fmt.Println("Please answer X or O.")
	}
}

func readMove(in *bufio.Scanner, board tictactoe.Board) tictactoe.Move {
	for {
		fmt.Print("Your move (row col, 0-2): ")
		if !in.Scan() {
			os.Exit(0)
		}
		var move tictactoe.Move
		if _, err := fmt.Sscanf(strings.TrimSpace(in.Text()), "%d %d", &move.Row, &move.Col); err != nil {
			fmt.Println("Enter two numbers, e.g. 1 1.")
			continue
		}
		if _, err := board.Result(move); err != nil {
			fmt.Println(err)
			continue
		}
		return move
	}
}
