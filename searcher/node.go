package searcher

import (
	"hex/game"
	"math"

	"golang.org/x/exp/rand"
)

const noParent = -1

// node is a search tree vertex addressed by its index in the tree arena.
// It records the move leading to it, never a copy of the board.
type node struct {
	parent   int
	children []int
	move     game.Move
	toMove   game.Owner  // Owner recorded when the node was created, flips at each ply
	untried  []game.Move // Legal moves at creation time not yet expanded; only ever shrinks
	wins     float64
	visits   int
}

// tree owns every node of one search. Children and parents are linked by index,
// so the whole tree is released at once when the search returns.
type tree struct {
	nodes []node
}

func newTree(board *game.Board, player game.Owner) *tree {
	t := &tree{nodes: make([]node, 0, 1024)}
	t.nodes = append(t.nodes, node{
		parent:  noParent,
		toMove:  player,
		untried: board.PossibleMoves(),
	})
	return t
}

func (t *tree) root() int {
	return 0
}

func (t *tree) size() int {
	return len(t.nodes)
}

// takeUntried removes and returns a uniformly random untried move of node i.
func (t *tree) takeUntried(i int, rng *rand.Rand) game.Move {
	n := &t.nodes[i]
	if len(n.untried) == 0 {
		panic("node has no untried moves")
	}
	k := rng.Intn(len(n.untried))
	move := n.untried[k]
	last := len(n.untried) - 1
	n.untried[k] = n.untried[last]
	n.untried = n.untried[:last]
	return move
}

// addChild attaches a node reached from parent by move. The board must already hold the move,
// since the child's untried moves are read from it.
func (t *tree) addChild(parent int, move game.Move, board *game.Board) int {
	child := node{
		parent:  parent,
		move:    move,
		toMove:  t.nodes[parent].toMove.Opponent(),
		untried: board.PossibleMoves(),
	}
	t.nodes = append(t.nodes, child)
	index := len(t.nodes) - 1
	t.nodes[parent].children = append(t.nodes[parent].children, index)
	return index
}

// uctValue scores node i for selection from its parent.
func (t *tree) uctValue(i int, exploration float64) float64 {
	n := &t.nodes[i]
	if n.visits == 0 {
		return math.Inf(1)
	}
	if n.parent == noParent {
		panic("root has no UCT value")
	}
	return newUCT(exploration, t.nodes[n.parent].visits).evaluate(n.wins, n.visits)
}

// bestChild returns the child of i with the highest UCT value, the first one on ties.
func (t *tree) bestChild(i int, exploration float64) int {
	children := t.nodes[i].children
	if len(children) == 0 {
		panic("node has no children")
	}
	if t.nodes[i].visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(exploration, t.nodes[i].visits)
	best := -1
	bestScore := math.Inf(-1)
	for _, c := range children {
		score := policy.evaluate(t.nodes[c].wins, t.nodes[c].visits)
		if score == math.Inf(1) {
			return c
		}
		if best == -1 || score > bestScore {
			best = c
			bestScore = score
		}
	}
	return best
}

// mostVisited returns the child of i with the most visits, the first one on ties.
func (t *tree) mostVisited(i int) int {
	children := t.nodes[i].children
	if len(children) == 0 {
		panic("node has no children")
	}

	best := children[0]
	for _, c := range children[1:] {
		if t.nodes[c].visits > t.nodes[best].visits {
			best = c
		}
	}
	return best
}

// backup adds one visit and the rollout result to every node from leaf up to the root.
// The same result is credited at every depth.
func (t *tree) backup(leaf int, result float64) {
	for i := leaf; i != noParent; i = t.nodes[i].parent {
		t.nodes[i].visits++
		t.nodes[i].wins += result
	}
}

// policy returns the visit count of every root child by move.
func (t *tree) policy() Policy {
	root := &t.nodes[t.root()]
	policy := make(Policy, len(root.children))
	for _, c := range root.children {
		policy[t.nodes[c].move] = t.nodes[c].visits
	}
	return policy
}
