package automaton

import (
	"io"
	"strconv"

	"github.com/emicklei/dot"
)

const epsilonLabel = "&epsilon;"

// dotGraph builds the Graphviz digraph of the automaton: one circle per state labelled with its
// number, double circles on accept states, a synthetic unlabelled start node pointing at state 0,
// one edge per symbol transition and one per epsilon transition.
func (a *Automaton) dotGraph() *dot.Graph {
	g := dot.NewGraph(dot.Directed)
	g.ID("G")

	nodes := make([]dot.Node, a.GetNumStates())
	for s := range nodes {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		nodes[s] = g.Node(strconv.Itoa(s)).Attr("shape", shape)
	}

	if len(nodes) > 0 {
		start := g.Node("start").Attr("shape", "none").Label("")
		g.Edge(start, nodes[0])
	}
	for _, t := range a.transitions {
		g.Edge(nodes[t.Source], nodes[t.Dest], string(t.Label))
	}
	for _, t := range a.epsilons {
		g.Edge(nodes[t.Source], nodes[t.Dest], epsilonLabel)
	}
	return g
}

// WriteDot Writes the automaton as a Graphviz digraph.
func (a *Automaton) WriteDot(w io.Writer) error {
	_, err := io.WriteString(w, a.ToDot())
	return err
}

// ToDot Returns the WriteDot rendering as a string.
func (a *Automaton) ToDot() string {
	return a.dotGraph().String()
}
