// Package cubes solves the "cube conundrum" puzzle.
//
// A game record looks like:
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
//
// Each ';'-separated set is one handful of cubes revealed from the bag.
//
// # Answers
//
//   - Part one: sum of the ids of games that are possible with a bag holding
//     12 red, 13 green and 14 blue cubes.
//   - Part two: sum over games of the power of the minimum bag, the product of
//     the largest red, green and blue counts seen in the game.
package cubes
