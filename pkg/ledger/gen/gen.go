// Package gen produces random bipartite ledger DAGs in the line-oriented
// input text format. The generated graphs are connected, acyclic and
// two-colorable by construction, which makes them useful as fixtures for the
// validators and the statistics pass.
package gen

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/ledgertools/ledgerstats/pkg/errors"
)

// Options configures graph generation.
type Options struct {
	// Transactions is the number of transactions to generate (excluding the
	// Root vertex). Must be at least 1.
	Transactions int

	// Seed makes the output reproducible. The same seed produces the same
	// graph.
	Seed uint64
}

// vertex is one generated entry: two references and a timestamp.
type vertex struct {
	left, right int
	timestamp   uint64
}

// Generate writes a random bipartite DAG to w.
//
// Vertices are split into two color classes. Root is red; the first
// transaction is blue and references Root twice; every further transaction
// picks a color at random and references two random vertices of the opposite
// class, with a timestamp strictly greater than both referents'. Since every
// edge crosses the classes the graph is two-colorable, and since timestamps
// only grow along references it is acyclic and rooted.
func Generate(w io.Writer, opts Options) error {
	if opts.Transactions < 1 {
		return errors.New(errors.ErrCodeInvalidCount,
			"at least 1 transaction required, got %d", opts.Transactions)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	vertices := make([]vertex, 0, opts.Transactions+1)
	reds := make([]int, 0, opts.Transactions/2+1)
	blues := make([]int, 0, opts.Transactions/2+1)

	// Root occupies identifier 1 and carries no references of its own.
	vertices = append(vertices, vertex{})
	reds = append(reds, 1)

	// The first transaction has nothing but Root to reference.
	vertices = append(vertices, vertex{left: 1, right: 1, timestamp: rng.Uint64N(100)})
	blues = append(blues, 2)

	for id := 3; id <= opts.Transactions+1; id++ {
		red := rng.Uint64()&1 == 0

		// A red vertex references blue vertices and vice versa.
		pool := reds
		if red {
			pool = blues
		}

		left := pool[rng.IntN(len(pool))]
		right := pool[rng.IntN(len(pool))]

		floor := max(vertices[left-1].timestamp, vertices[right-1].timestamp)
		low := floor + 1 + rng.Uint64N(100)
		timestamp := low + rng.Uint64N(100)

		vertices = append(vertices, vertex{left: left, right: right, timestamp: timestamp})
		if red {
			reds = append(reds, id)
		} else {
			blues = append(blues, id)
		}
	}

	buf := bufio.NewWriter(w)
	fmt.Fprintln(buf, opts.Transactions)
	for _, v := range vertices[1:] {
		fmt.Fprintf(buf, "%d %d %d\n", v.left, v.right, v.timestamp)
	}
	return buf.Flush()
}
