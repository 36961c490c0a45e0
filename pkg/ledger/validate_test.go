package ledger

import "testing"

func TestCheckConnectivity(t *testing.T) {
	tests := []struct {
		name  string
		graph func(t *testing.T) *Graph
		want  Connectivity
	}{
		{name: "Chain", graph: chainGraph, want: ConnectedAcyclic},
		{name: "Bipartite", graph: bipartiteGraph, want: ConnectedAcyclic},
		{name: "Cyclic", graph: cyclicGraph, want: Cyclic},
		{name: "Unconnected", graph: unconnectedGraph, want: Disconnected},
		{
			name:  "SingleTransaction",
			graph: func(t *testing.T) *Graph { return mustRead(t, "1\n1 1 0\n") },
			want:  ConnectedAcyclic,
		},
		{
			name:  "SelfReference",
			graph: func(t *testing.T) *Graph { return mustRead(t, "1\n2 2 0\n") },
			want:  Disconnected,
		},
		{
			name:  "ReachableSelfReference",
			graph: func(t *testing.T) *Graph { return mustRead(t, "1\n1 2 0\n") },
			want:  Cyclic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.graph(t).CheckConnectivity(); got != tt.want {
				t.Errorf("CheckConnectivity() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckConnectivityCyclePrecedence(t *testing.T) {
	// Transactions 4 and 5 cycle while 6 is detached; both defects are
	// present but the cycle decides the outcome.
	g := mustRead(t, "5\n1 1 0\n1 2 1\n5 2 2\n4 3 3\n6 6 4\n")
	if got := g.CheckConnectivity(); got != Cyclic {
		t.Errorf("CheckConnectivity() = %v, want %v", got, Cyclic)
	}
}

func TestConnectivityString(t *testing.T) {
	tests := []struct {
		c    Connectivity
		want string
	}{
		{ConnectedAcyclic, "connected and acyclic"},
		{Cyclic, "cyclic"},
		{Disconnected, "disconnected"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Connectivity(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestIsBipartite(t *testing.T) {
	tests := []struct {
		name  string
		graph func(t *testing.T) *Graph
		want  bool
	}{
		{name: "Alternating", graph: bipartiteGraph, want: true},
		{name: "Chain", graph: chainGraph, want: false},
		{
			name:  "SingleTransaction",
			graph: func(t *testing.T) *Graph { return mustRead(t, "1\n1 1 0\n") },
			want:  true,
		},
		{
			// Transaction 4 references both Root and transaction 2,
			// collapsing the two classes.
			name:  "MixedReferences",
			graph: func(t *testing.T) *Graph { return mustRead(t, "3\n1 1 0\n2 2 1\n1 2 2\n") },
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.graph(t).IsBipartite(); got != tt.want {
				t.Errorf("IsBipartite() = %v, want %v", got, tt.want)
			}
		})
	}
}
