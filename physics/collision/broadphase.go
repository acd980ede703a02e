// Package collision implements brute-force pair enumeration and per-shape
// narrow-phase tests over body.Body values.
//
// The broad phase is grounded directly on g3n-engine's
// physics/collision.Broadphase.FindCollisionPairs/NeedTest: an O(n^2) scan
// over every body pair, skipping a pair only when neither test could ever
// produce a manifold (both static, or both asleep). At board-game scale
// (tens to low hundreds of bodies) a spatial index buys nothing a reader
// couldn't verify by eye, so none is built.
package collision

import "github.com/mcp-tool-shop-org/tablesim/body"

// Pair is a candidate body pair the broad phase could not rule out.
type Pair struct {
	A, B *body.Body
}

// FindPairs enumerates every unordered pair of distinct bodies for which
// NeedTest holds.
func FindPairs(bodies []*body.Body) []Pair {
	pairs := make([]Pair, 0)
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if NeedTest(a, b) {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs
}

// NeedTest reports whether a pair is worth narrow-phase testing: a pair of
// two static bodies can never produce a manifold worth resolving, and a
// pair that is fully asleep has already settled.
func NeedTest(a, b *body.Body) bool {
	if a.IsStatic && b.IsStatic {
		return false
	}
	if a.IsSleeping && b.IsSleeping {
		return false
	}
	return true
}
