package traverse

// Arc is a directed edge between two node ids. Parallel arcs and
// self-loops are allowed.
type Arc struct {
	From int
	To   int
}

// nodes is the degree of each node and its out-arcs in creation order.
// It's derived from the arcs once per traversal and never updated.
type nodes struct {
	in  []int
	out []int

	// outArcs are the indices of each node's out-arcs
	outArcs [][]int
}

func newNodes(n int, arcs []Arc) *nodes {
	ns := &nodes{
		in:      make([]int, n),
		out:     make([]int, n),
		outArcs: make([][]int, n),
	}
	for i, a := range arcs {
		ns.out[a.From]++
		ns.in[a.To]++
		ns.outArcs[a.From] = append(ns.outArcs[a.From], i)
	}
	return ns
}

// simple returns whether a walk passes through v: one arc in, one arc out.
func (ns *nodes) simple(v int) bool {
	return ns.in[v] == 1 && ns.out[v] == 1
}

// Degrees returns the in and out degree of each of n nodes.
func Degrees(n int, arcs []Arc) (in, out []int) {
	ns := newNodes(n, arcs)
	return ns.in, ns.out
}
