package condense_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mzeevi/digra/condense"
	"github.com/mzeevi/digra/core"
	"github.com/mzeevi/digra/scc"
)

func TestBuild_NilGraph(t *testing.T) {
	d := condense.Build(nil, nil)
	assert.Equal(t, 0, d.Size())
	assert.True(t, d.Acyclic())

	_, ok := d.ComponentOf("A")
	assert.False(t, ok)
}

func TestBuild_CollapsesCycle(t *testing.T) {
	// A ⇄ B form one component; C hangs off it.
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "C")

	comps := scc.Tarjan(g)
	d := condense.Build(g, comps)

	require.Equal(t, 2, d.Size())
	ab, ok := d.ComponentOf("A")
	require.True(t, ok)
	ab2, ok := d.ComponentOf("B")
	require.True(t, ok)
	c, ok := d.ComponentOf("C")
	require.True(t, ok)

	assert.Equal(t, ab, ab2)
	assert.NotEqual(t, ab, c)
	assert.Equal(t, []int{c}, d.Successors(ab))
	assert.Empty(t, d.Successors(c))
	assert.True(t, d.Acyclic())
}

func TestBuild_IdsFollowPartitionOrder(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")

	comps := []scc.Component{{"B"}, {"A"}}
	d := condense.Build(g, comps)

	b, _ := d.ComponentOf("B")
	a, _ := d.ComponentOf("A")
	assert.Equal(t, 0, b)
	assert.Equal(t, 1, a)
	assert.Equal(t, scc.Component{"B"}, d.Members(0))
	assert.Equal(t, scc.Component{"A"}, d.Members(1))
}

func TestBuild_DeduplicatesParallelEdges(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B") // parallel
	g.AddEdge("A", "B", core.WithWeight(9))

	d := condense.Build(g, scc.Tarjan(g))
	a, _ := d.ComponentOf("A")
	b, _ := d.ComponentOf("B")

	assert.Len(t, d.Successors(a), 1)
	assert.Equal(t, 1, d.InDegrees()[b])
}

func TestBuild_InDegrees(t *testing.T) {
	// Two disjoint sources feeding one sink.
	g := core.NewGraph()
	g.AddEdge("A", "C")
	g.AddEdge("B", "C")

	d := condense.Build(g, scc.Tarjan(g))
	a, _ := d.ComponentOf("A")
	b, _ := d.ComponentOf("B")
	c, _ := d.ComponentOf("C")

	deg := d.InDegrees()
	assert.Equal(t, 0, deg[a])
	assert.Equal(t, 0, deg[b])
	assert.Equal(t, 2, deg[c])
}

func TestBuild_AirportCondensationShape(t *testing.T) {
	g := core.NewGraph()
	for _, arc := range [][2]string{
		{"DSM", "ORD"}, {"ORD", "BGI"}, {"BGI", "LGA"},
		{"JFK", "LGA"}, {"ICN", "JFK"}, {"HND", "ICN"},
		{"HND", "JFK"}, {"EWR", "HND"}, {"SFO", "DSM"},
		{"SFO", "SAN"}, {"SAN", "EYW"}, {"EYW", "LHR"},
		{"LHR", "SFO"}, {"TLV", "DEL"}, {"DEL", "DOH"},
		{"DEL", "CDG"}, {"CDG", "BUD"}, {"CDG", "SIN"},
		{"SIN", "CDG"},
	} {
		g.AddEdge(arc[0], arc[1])
	}

	d := condense.Build(g, scc.Tarjan(g))
	require.True(t, d.Acyclic())

	// {CDG,SIN} collapses to one node whose only successor is {BUD}.
	cdg, ok := d.ComponentOf("CDG")
	require.True(t, ok)
	sin, _ := d.ComponentOf("SIN")
	assert.Equal(t, cdg, sin)

	bud, _ := d.ComponentOf("BUD")
	assert.Equal(t, []int{bud}, d.Successors(cdg))
}

func TestAcyclic_RandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for trial := 0; trial < 50; trial++ {
		g := core.NewGraph()
		n := 2 + rng.Intn(25)
		for i := 0; i < n; i++ {
			g.EnsureVertex(fmt.Sprintf("V%02d", i))
		}
		for i := 0; i < rng.Intn(4*n); i++ {
			g.AddEdge(fmt.Sprintf("V%02d", rng.Intn(n)), fmt.Sprintf("V%02d", rng.Intn(n)))
		}

		for _, comps := range [][]scc.Component{scc.Tarjan(g), scc.Kosaraju(g)} {
			d := condense.Build(g, comps)
			assert.Truef(t, d.Acyclic(), "trial %d: condensation must be a DAG", trial)
			assert.Equal(t, len(comps), d.Size())
		}
	}
}
