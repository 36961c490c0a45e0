package ledger

// DepthCache memoizes computed depths by transaction identifier. One cache
// must be shared across all depth queries of a statistics pass: shared
// ancestors in diamond-shaped graphs are then computed once instead of once
// per descendant path, which would otherwise blow up exponentially.
type DepthCache map[TxID]int

// NewDepthCache returns a cache sized for a graph with n transactions.
func NewDepthCache(n int) DepthCache {
	return make(DepthCache, n)
}

// Depth returns the shortest number of reference hops from the transaction
// back to Root: depth(Root) is 0 and depth(t) is 1 + min of the depths of
// t's two references.
//
// Evaluation is iterative with an explicit stack, so chains as long as the
// whole graph are safe. Depth is only defined on acyclic graphs; callers
// must have established ConnectedAcyclic before querying.
func (g *Graph) Depth(id TxID, cache DepthCache) int {
	if d, ok := cache[id]; ok {
		return d
	}

	stack := []TxID{id}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		t, ok := g.Tx(top)
		if !ok {
			// Dangling forward reference; unreachable on validated graphs.
			cache[top] = 0
			stack = stack[:len(stack)-1]
			continue
		}

		left, leftDone := refDepth(t.Left, cache)
		if !leftDone {
			stack = append(stack, TxID(t.Left))
			continue
		}
		right, rightDone := refDepth(t.Right, cache)
		if !rightDone {
			stack = append(stack, TxID(t.Right))
			continue
		}

		cache[top] = 1 + min(left, right)
		stack = stack[:len(stack)-1]
	}

	return cache[id]
}

// refDepth resolves the depth of a reference target: 0 for Root, the cached
// value for a transaction, or not-done when the target is still unknown.
func refDepth(ref ID, cache DepthCache) (int, bool) {
	if ref.IsRoot() {
		return 0, true
	}
	d, ok := cache[TxID(ref)]
	return d, ok
}
