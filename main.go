package main

import "aoc-solver/cmd"

func main() {
	cmd.Execute()
}
