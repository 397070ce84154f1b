package searcher

import "math"

type uct struct {
	exploration float64
	lnN         float64
}

func newUCT(exploration float64, N int) uct {
	if N == 0 {
		panic("N cannot be 0")
	}
	return uct{exploration: exploration, lnN: math.Log(float64(N))}
}

// evaluate scores a child with wins q over n visits. Unvisited children score +Inf so every
// child is tried before any statistic is trusted.
func (u uct) evaluate(q float64, n int) float64 {
	if n == 0 {
		return math.Inf(1)
	}
	// UCT = q/n + c*sqrt(ln(N)/n)
	return q/float64(n) + u.exploration*math.Sqrt(u.lnN/float64(n))
}
