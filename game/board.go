package game

import "fmt"

// Hex neighbour offsets. The order is fixed so that neighbour enumeration is reproducible.
var deltas = [6]Move{
	{Row: -1, Col: 0},
	{Row: -1, Col: 1},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 0},
}

// Board is a size×size Hex grid. It is mutated in place: pieces are placed during play and
// search, and removed again only to undo a search placement.
type Board struct {
	size   int
	cells  []Owner // Row-major, indexed by row*size+col
	stones [3]int  // Stone count per owner, index 0 holds the empty cell count
}

// NewBoard returns an empty board. It panics if size is not positive.
func NewBoard(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("board size must be positive, got %d", size))
	}
	b := &Board{
		size:  size,
		cells: make([]Owner, size*size),
	}
	b.stones[Empty] = size * size
	return b
}

func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether m addresses a cell of the board.
func (b *Board) InBounds(m Move) bool {
	return m.Row >= 0 && m.Row < b.size && m.Col >= 0 && m.Col < b.size
}

// Cell returns the owner of the cell at m. Coordinates must be in bounds.
func (b *Board) Cell(m Move) Owner {
	return b.cells[b.index(m)]
}

// Stones returns the number of cells holding owner (Empty counts empty cells).
func (b *Board) Stones(owner Owner) int {
	if owner < Empty || owner > Second {
		return 0
	}
	return b.stones[owner]
}

// EmptyCells returns the number of legal moves left.
func (b *Board) EmptyCells() int {
	return b.stones[Empty]
}

func (b *Board) Full() bool {
	return b.stones[Empty] == 0
}

// PlacePiece puts a piece of owner on m if the cell is empty and reports whether it did.
// An occupied cell or a non-player owner leaves the board unchanged.
func (b *Board) PlacePiece(m Move, owner Owner) bool {
	if !owner.Valid() {
		return false
	}
	i := b.index(m)
	if b.cells[i] != Empty {
		return false
	}
	b.cells[i] = owner
	b.stones[Empty]--
	b.stones[owner]++
	return true
}

// RemovePiece resets an occupied cell to empty and reports whether there was a piece to remove.
// It exists to undo placements made while searching.
func (b *Board) RemovePiece(m Move) bool {
	i := b.index(m)
	owner := b.cells[i]
	if owner == Empty {
		return false
	}
	b.cells[i] = Empty
	b.stones[owner]--
	b.stones[Empty]++
	return true
}

// PossibleMoves returns every empty cell in row-major order.
func (b *Board) PossibleMoves() []Move {
	moves := make([]Move, 0, b.stones[Empty])
	for i, owner := range b.cells {
		if owner == Empty {
			moves = append(moves, Move{Row: i / b.size, Col: i % b.size})
		}
	}
	return moves
}

// Neighbors returns the in-bounds hex neighbours of m.
func (b *Board) Neighbors(m Move) []Move {
	neighbors := make([]Move, 0, len(deltas))
	for _, d := range deltas {
		n := Move{Row: m.Row + d.Row, Col: m.Col + d.Col}
		if b.InBounds(n) {
			neighbors = append(neighbors, n)
		}
	}
	return neighbors
}

// IsConnected reports whether owner has a chain of its own pieces joining its two sides.
// The search is a single breadth-first pass seeded with every owner cell on the start side.
func (b *Board) IsConnected(owner Owner) bool {
	if !owner.Valid() {
		return false
	}

	visited := make([]bool, len(b.cells))
	queue := make([]Move, 0, b.size)
	for i := 0; i < b.size; i++ {
		start := Move{Row: i, Col: 0}
		if owner == Second {
			start = Move{Row: 0, Col: i}
		}
		if b.Cell(start) == owner {
			visited[b.index(start)] = true
			queue = append(queue, start)
		}
	}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if b.onTargetSide(current, owner) {
			return true
		}
		for _, n := range b.Neighbors(current) {
			i := b.index(n)
			if !visited[i] && b.cells[i] == owner {
				visited[i] = true
				queue = append(queue, n)
			}
		}
	}
	return false
}

// Winner returns the player who has connected their sides, or Empty if nobody has.
func (b *Board) Winner() Owner {
	if b.IsConnected(First) {
		return First
	}
	if b.IsConnected(Second) {
		return Second
	}
	return Empty
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Owner, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		size:   b.size,
		cells:  cells,
		stones: b.stones,
	}
}

// Equal reports whether both boards have the same size and identical cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b *Board) onTargetSide(m Move, owner Owner) bool {
	if owner == First {
		return m.Col == b.size-1
	}
	return m.Row == b.size-1
}

func (b *Board) index(m Move) int {
	return m.Row*b.size + m.Col
}
