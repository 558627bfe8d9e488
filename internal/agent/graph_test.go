package agent

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_ComponentReachability(t *testing.T) {
	g := NewGraph()
	g.Connect("ANCHOR", "BRIDGE")
	g.Connect("BRIDGE", "CANDLE")
	g.Intern("DRIFT")

	comp, err := g.Component("ANCHOR")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"ANCHOR", "BRIDGE", "CANDLE"}, comp); diff != "" {
		t.Fatalf("component mismatch (-want +got):\n%s", diff)
	}

	assert.True(t, g.IsConnected("ANCHOR", "CANDLE"))
	assert.False(t, g.IsConnected("ANCHOR", "DRIFT"))
	assert.False(t, g.IsConnected("GHOST", "ANCHOR"))
}

func TestGraph_EdgesAreUndirected(t *testing.T) {
	g := NewGraph()
	g.Connect("RIVER", "STONE")

	na, err := g.Neighbors("RIVER")
	require.NoError(t, err)
	nb, err := g.Neighbors("STONE")
	require.NoError(t, err)
	assert.Equal(t, []string{"STONE"}, na)
	assert.Equal(t, []string{"RIVER"}, nb)
}

func TestGraph_SelfLoopIgnored(t *testing.T) {
	g := NewGraph()
	g.Connect("MIRROR", "MIRROR")

	n, err := g.Neighbors("MIRROR")
	require.NoError(t, err)
	assert.Empty(t, n, "node interned, no self edge")
}

func TestGraph_ConnectIdempotent(t *testing.T) {
	g := NewGraph()
	g.Connect("A", "B")
	g.Connect("B", "A")
	g.Connect("A", "B")
	assert.Equal(t, [][2]string{{"A", "B"}}, g.Pairs())
}

func TestGraph_ConnectStrictRejectsSelfLoop(t *testing.T) {
	g := NewGraph()
	err := g.ConnectStrict("ECHO", "ECHO")
	var gerr *GraphError
	require.ErrorAs(t, err, &gerr)
}

func TestGraph_NeighborsUnknownSymbol(t *testing.T) {
	g := NewGraph()
	_, err := g.Neighbors("GHOST")
	var serr *SymbolError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, "GHOST", serr.Name)

	_, err = g.Component("GHOST")
	assert.Error(t, err)
}

func TestGraph_PairsDeterministic(t *testing.T) {
	g := NewGraph()
	g.Connect("ZINC", "ASH")
	g.Connect("ASH", "MOSS")
	want := [][2]string{{"ASH", "MOSS"}, {"ASH", "ZINC"}}
	for i := 0; i < 5; i++ {
		assert.Equal(t, want, g.Pairs())
	}
}

func TestGraph_NodesSorted(t *testing.T) {
	g := NewGraph()
	g.Intern("C")
	g.Intern("A")
	g.Intern("B")
	assert.Equal(t, []string{"A", "B", "C"}, g.Nodes())
	assert.Equal(t, 3, g.Len())
}
