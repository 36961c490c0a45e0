package ledger

// Connectivity is the three-valued outcome of the structural check: the graph
// is either a well-formed DAG rooted at Root, cyclic, or not fully reachable
// from Root. A cycle takes precedence over missing reachability.
type Connectivity int

const (
	// ConnectedAcyclic means every vertex is reachable from Root over reverse
	// edges and no cycle exists. Only this outcome permits computing depths
	// and statistics.
	ConnectedAcyclic Connectivity = iota
	// Cyclic means a reference cycle was found.
	Cyclic
	// Disconnected means some vertex is unreachable from Root.
	Disconnected
)

// String returns a short human-readable name for the outcome.
func (c Connectivity) String() string {
	switch c {
	case ConnectedAcyclic:
		return "connected and acyclic"
	case Cyclic:
		return "cyclic"
	default:
		return "disconnected"
	}
}

// Vertex colors for the depth-first search.
const (
	white = iota // undiscovered
	gray         // on the current DFS path
	black        // finished
)

// dfsFrame is one suspended vertex of the iterative depth-first search.
type dfsFrame struct {
	vertex ID
	refs   []TxID // inbound edges of vertex, in ascending order
	next   int    // index of the next edge to follow
}

// CheckConnectivity traverses the graph from Root along reverse edges (from a
// vertex toward every transaction referencing it) and classifies the result.
//
// The traversal is an iterative depth-first search with white/gray/black
// coloring: a gray vertex reappearing as a neighbor is a back edge and marks
// a cycle. The search does not abort on a back edge, so reachability is still
// measured in full. Colors live in a single slice indexed by identifier,
// which keeps the check linear in vertices plus edges, and the explicit stack
// makes arbitrarily long reference chains safe.
func (g *Graph) CheckConnectivity() Connectivity {
	// Identifiers are contiguous: Root is 1, transactions are 2..n+1.
	color := make([]byte, g.Len()+2)
	visited := 0
	cyclic := false

	stack := []dfsFrame{{vertex: Root, refs: g.References(Root).IDs()}}
	color[Root] = gray
	visited++

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next >= len(top.refs) {
			color[top.vertex] = black
			stack = stack[:len(stack)-1]
			continue
		}

		next := top.refs[top.next].ID()
		top.next++

		switch color[next] {
		case white:
			color[next] = gray
			visited++
			stack = append(stack, dfsFrame{vertex: next, refs: g.References(next).IDs()})
		case gray:
			cyclic = true
		}
	}

	switch {
	case cyclic:
		return Cyclic
	case visited < g.Len()+1:
		return Disconnected
	default:
		return ConnectedAcyclic
	}
}

// IsBipartite reports whether the reverse-edge graph admits a two-coloring
// where every edge connects differently colored vertices. The traversal
// starts at Root and flips the color at each step; the first vertex revisited
// with a conflicting color decides the answer.
//
// Callers must establish ConnectedAcyclic first: the check terminates on any
// input, but its result is only meaningful for connected acyclic graphs.
func (g *Graph) IsBipartite() bool {
	const uncolored = -1

	colors := make([]int8, g.Len()+2)
	for i := range colors {
		colors[i] = uncolored
	}

	colors[Root] = 0
	queue := []ID{Root}

	for len(queue) > 0 {
		vertex := queue[0]
		queue = queue[1:]

		flipped := 1 - colors[vertex]
		for _, ref := range g.References(vertex).IDs() {
			next := ref.ID()
			switch colors[next] {
			case uncolored:
				colors[next] = flipped
				queue = append(queue, next)
			case flipped:
				// consistent, already queued
			default:
				return false
			}
		}
	}

	return true
}
