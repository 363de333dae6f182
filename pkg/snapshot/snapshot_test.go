package snapshot

import (
	"testing"

	"github.com/matzehuels/cargoscope/pkg/graph"
)

func TestNew(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "ws/app"}, {ID: "ws/lib"}, {ID: "ws/tool"}},
		Edges: []graph.Edge{{From: "ws/app", To: "ws/lib"}},
	}

	snap := New("ws", g)

	if snap.ID == "" {
		t.Error("ID should be assigned")
	}
	if snap.Root != "ws" {
		t.Errorf("Root = %q", snap.Root)
	}
	if snap.Nodes != 3 || snap.Edges != 1 {
		t.Errorf("counts = (%d, %d), want (3, 1)", snap.Nodes, snap.Edges)
	}
	if snap.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	// app and tool have no dependents.
	want := map[string]bool{"ws/app": true, "ws/tool": true}
	if len(snap.Unused) != 2 {
		t.Fatalf("Unused = %v", snap.Unused)
	}
	for _, dir := range snap.Unused {
		if !want[dir] {
			t.Errorf("unexpected unused entry %q", dir)
		}
	}
}

func TestNewUniqueIDs(t *testing.T) {
	g := graph.Graph{}
	if New("ws", g).ID == New("ws", g).ID {
		t.Error("snapshots should get unique IDs")
	}
}
