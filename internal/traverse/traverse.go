// Package traverse is for walking an assembly graph and splitting it
// into maximal non-branching paths: the contigs of a De Bruijn graph or
// the read layouts of an overlap graph.
package traverse

// Walk is a path through the graph as indices into its arcs.
type Walk struct {
	// Arcs in walk order
	Arcs []int

	// Cycle is set when the walk goes around an isolated cycle
	// and ends on the node it started from
	Cycle bool
}

// Nodes returns the node ids visited by w, starting node included.
func (w Walk) Nodes(arcs []Arc) []int {
	if len(w.Arcs) == 0 {
		return nil
	}

	ids := make([]int, 0, len(w.Arcs)+1)
	ids = append(ids, arcs[w.Arcs[0]].From)
	for _, a := range w.Arcs {
		ids = append(ids, arcs[a].To)
	}
	return ids
}

// Walks splits the n node graph of arcs into maximal non-branching walks.
//
// A walk starts on every node that isn't simple (in-degree and out-degree of 1)
// with out-arcs, once per out-arc in creation order, and extends through simple
// nodes until it reaches one that isn't. Nodes are started in id order. The arcs
// left after that are on isolated cycles of simple nodes; each is walked once,
// from the lowest numbered arc around back to its first node.
//
// Every arc is in exactly one walk. Nodes without arcs are in none.
func Walks(n int, arcs []Arc) (walks []Walk) {
	ns := newNodes(n, arcs)
	visited := make([]bool, len(arcs))

	// extend follows simple nodes from the end of the walk
	extend := func(walk []int, stop int) []int {
		v := arcs[walk[len(walk)-1]].To
		for v != stop && ns.simple(v) {
			next := ns.outArcs[v][0]
			if visited[next] {
				break
			}
			visited[next] = true
			walk = append(walk, next)
			v = arcs[next].To
		}
		return walk
	}

	for v := 0; v < n; v++ {
		if ns.simple(v) {
			continue
		}

		for _, a := range ns.outArcs[v] {
			if visited[a] {
				continue
			}
			visited[a] = true
			walks = append(walks, Walk{Arcs: extend([]int{a}, -1)})
		}
	}

	for a := range arcs {
		if visited[a] {
			continue
		}
		visited[a] = true
		walks = append(walks, Walk{Arcs: extend([]int{a}, arcs[a].From), Cycle: true})
	}

	return walks
}
