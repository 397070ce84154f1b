package game

import "fmt"

// Move is a board coordinate a player places a piece on.
type Move struct {
	Row int
	Col int
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
