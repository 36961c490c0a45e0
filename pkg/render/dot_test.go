package render

import (
	"strings"
	"testing"

	"github.com/ledgertools/ledgerstats/pkg/ledger"
)

func testGraph(t *testing.T) *ledger.Graph {
	t.Helper()
	g, err := ledger.ReadGraph(strings.NewReader("3\n1 1 0\n1 2 5\n2 2 7\n"))
	if err != nil {
		t.Fatalf("ReadGraph: %v", err)
	}
	return g
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	if !strings.Contains(dot, "digraph ledger") {
		t.Error("missing digraph declaration")
	}
	if !strings.Contains(dot, "rankdir=BT") {
		t.Error("missing rankdir")
	}
	if !strings.Contains(dot, `"Root" [shape=ellipse, fillcolor=lightgrey];`) {
		t.Error("missing Root node")
	}
	for _, node := range []string{`"Tx:2"`, `"Tx:3"`, `"Tx:4"`} {
		if !strings.Contains(dot, node) {
			t.Errorf("missing node %s", node)
		}
	}
	for _, edge := range []string{
		`"Tx:2" -> "Root";`,
		`"Tx:3" -> "Root";`,
		`"Tx:3" -> "Tx:2";`,
		`"Tx:4" -> "Tx:2";`,
	} {
		if !strings.Contains(dot, edge) {
			t.Errorf("missing edge %s", edge)
		}
	}
}

func TestToDOTParallelEdges(t *testing.T) {
	// Transaction 2 references Root with both references; both edges appear.
	dot := ToDOT(testGraph(t), Options{})
	if got := strings.Count(dot, `"Tx:2" -> "Root";`); got != 2 {
		t.Errorf("Tx:2 -> Root edge count = %d, want 2", got)
	}
	if got := strings.Count(dot, `"Tx:4" -> "Tx:2";`); got != 2 {
		t.Errorf("Tx:4 -> Tx:2 edge count = %d, want 2", got)
	}
}

func TestToDOTTimestamps(t *testing.T) {
	plain := ToDOT(testGraph(t), Options{})
	if strings.Contains(plain, "ts:") {
		t.Error("timestamps present without option")
	}

	dot := ToDOT(testGraph(t), Options{Timestamps: true})
	if !strings.Contains(dot, `ts: 5`) {
		t.Error("missing timestamp label for Tx:3")
	}
	if !strings.Contains(dot, `ts: 7`) {
		t.Error("missing timestamp label for Tx:4")
	}
}
