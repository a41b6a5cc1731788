package cubes

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"aoc-solver/core/utils"
)

// ErrMalformedGame is returned for records that do not match the game format.
var ErrMalformedGame = errors.New("malformed game record")

var (
	gameRx = regexp.MustCompile(`^Game\s+(\d+):(.*)$`)
	cubeRx = regexp.MustCompile(`^(\d+)\s+([a-z]+)$`)
)

// Colors are the cube colours that make up a bag.
var Colors = []string{"red", "green", "blue"}

// Set counts cubes per colour in one handful.
type Set map[string]int

// Game is a parsed game record.
type Game struct {
	ID   int
	Sets []Set
}

// ParseGame parses a single game record.
func ParseGame(record string) (Game, error) {
	m := gameRx.FindStringSubmatch(strings.TrimSpace(record))
	if m == nil {
		return Game{}, fmt.Errorf("%w: %q", ErrMalformedGame, record)
	}
	id, err := utils.ToInt(m[1])
	if err != nil {
		return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
	}

	game := Game{ID: id}
	for _, handful := range strings.Split(m[2], ";") {
		set := Set{}
		for _, cube := range strings.Split(handful, ",") {
			cm := cubeRx.FindStringSubmatch(strings.TrimSpace(cube))
			if cm == nil {
				return Game{}, fmt.Errorf("%w: game %d: bad cube %q", ErrMalformedGame, id, cube)
			}
			n, err := utils.ToInt(cm[1])
			if err != nil {
				return Game{}, fmt.Errorf("%w: %v", ErrMalformedGame, err)
			}
			set[cm[2]] += n
		}
		game.Sets = append(game.Sets, set)
	}
	return game, nil
}

// Possible reports whether every set fits inside the bag. Only colours
// present in the bag are checked.
func (g Game) Possible(bag Set) bool {
	for _, set := range g.Sets {
		for color, limit := range bag {
			if set[color] > limit {
				return false
			}
		}
	}
	return true
}

// MinimumBag returns, per colour, the largest count revealed in any set.
func (g Game) MinimumBag() Set {
	bag := Set{}
	for _, color := range Colors {
		bag[color] = 0
	}
	for _, set := range g.Sets {
		for color, n := range set {
			if n > bag[color] {
				bag[color] = n
			}
		}
	}
	return bag
}

// Power is the product of the minimum bag's red, green and blue counts.
func (g Game) Power() int {
	bag := g.MinimumBag()
	values := make([]int, 0, len(Colors))
	for _, color := range Colors {
		values = append(values, bag[color])
	}
	return utils.Product(values)
}
