// Package render converts ledger graphs to Graphviz DOT and renders them to
// SVG for visual inspection of small and medium fixtures.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/ledgertools/ledgerstats/pkg/ledger"
)

// Options configures DOT conversion.
type Options struct {
	// Timestamps includes each transaction's timestamp in its node label.
	Timestamps bool
}

// ToDOT converts a ledger graph to Graphviz DOT format. Root is rendered as a
// filled ellipse at the top; every transaction points at its two referents,
// so edges run in reference direction (toward Root). A transaction whose left
// and right references coincide produces two parallel edges, matching the
// reference count kept by the reverse index.
func ToDOT(g *ledger.Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph ledger {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("\n")
	buf.WriteString("  \"Root\" [shape=ellipse, fillcolor=lightgrey];\n")

	for _, t := range g.Transactions() {
		label := t.ID.String()
		if opts.Timestamps {
			label = fmt.Sprintf("%s\\nts: %d", t.ID, t.Timestamp)
		}
		fmt.Fprintf(&buf, "  %q [label=\"%s\"];\n", t.ID.String(), label)
	}

	buf.WriteString("\n")
	for _, t := range g.Transactions() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", t.ID.String(), t.Left.String())
		fmt.Fprintf(&buf, "  %q -> %q;\n", t.ID.String(), t.Right.String())
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
