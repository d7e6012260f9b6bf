package main

import (
	"fmt"

	"cs50ai/knights"
)

func main() {
	for _, puzzle := range knights.Puzzles() {
		fmt.Println(puzzle.Name)
		for _, symbol := range knights.Solve(puzzle) {
			fmt.Printf("    %s\n", symbol)
		}
	}
}
