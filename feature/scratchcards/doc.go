// Package scratchcards solves the "scratchcards" puzzle.
//
// A card lists winning numbers and the numbers you have:
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
//
// # Answers
//
//   - Part one: a card with m matches is worth 2^(m-1) points (0 when m is 0);
//     the answer is the total worth of the deck.
//   - Part two: every instance of a card with m matches wins one copy of each
//     of the next m cards (never past the end of the deck); the answer is the
//     total number of card instances.
package scratchcards
