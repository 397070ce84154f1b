package game

import "fmt"

// Owner is the content of a board cell: empty or one of the two players.
type Owner int

const (
	Empty  Owner = iota
	First        // connects column 0 to column size-1
	Second       // connects row 0 to row size-1
)

// Valid reports whether o names a player rather than an empty cell.
func (o Owner) Valid() bool {
	return o == First || o == Second
}

// Opponent returns the other player. Hex has exactly two owners, so 3-o flips between them.
func (o Owner) Opponent() Owner {
	if !o.Valid() {
		panic(fmt.Sprintf("owner %d has no opponent", o))
	}
	return 3 - o
}

func (o Owner) String() string {
	switch o {
	case Empty:
		return "empty"
	case First:
		return "player1"
	case Second:
		return "player2"
	default:
		return fmt.Sprintf("owner(%d)", int(o))
	}
}
