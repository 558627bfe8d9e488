package agent

import "sort"

// SymbolError reports a graph query against a symbol the graph has never
// seen.
type SymbolError struct {
	Name string
}

func (e *SymbolError) Error() string { return "unknown symbol: " + e.Name }

// GraphError reports an invalid edge request on the strict API variant.
type GraphError struct {
	Msg string
}

func (e *GraphError) Error() string { return "graph error: " + e.Msg }

// Graph is an undirected adjacency structure over interned symbol names.
// Nodes are flat string keys into adjacency sets; there are no self-loops and
// no parallel edges. The graph is append-only for the agent's lifetime.
type Graph struct {
	adj map[string]map[string]struct{}
}

func NewGraph() *Graph {
	return &Graph{adj: make(map[string]map[string]struct{})}
}

// Intern registers a node without connecting it.
func (g *Graph) Intern(name string) {
	if _, ok := g.adj[name]; !ok {
		g.adj[name] = make(map[string]struct{})
	}
}

// Connect adds the undirected edge between a and b. Self-loops are ignored; re-adding an
// existing edge is a no-op.
func (g *Graph) Connect(a, b string) {
	if a == b {
		return
	}
	g.Intern(a)
	g.Intern(b)
	g.adj[a][b] = struct{}{}
	g.adj[b][a] = struct{}{}
}

// ConnectStrict is the strict variant: an identical-endpoint edge is
// rejected instead of ignored.
func (g *Graph) ConnectStrict(a, b string) error {
	if a == b {
		return &GraphError{Msg: "identical-endpoint edge " + a + ".." + b}
	}
	g.Connect(a, b)
	return nil
}

// Neighbors returns the adjacent symbols of name, sorted.
func (g *Graph) Neighbors(name string) ([]string, error) {
	set, ok := g.adj[name]
	if !ok {
		return nil, &SymbolError{Name: name}
	}
	out := make([]string, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// Component returns the connected component of name (the node itself
// included), computed by breadth-first traversal, sorted.
func (g *Graph) Component(name string) ([]string, error) {
	if _, ok := g.adj[name]; !ok {
		return nil, &SymbolError{Name: name}
	}
	seen := map[string]bool{name: true}
	queue := []string{name}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for n := range g.adj[cur] {
			if !seen[n] {
				seen[n] = true
				queue = append(queue, n)
			}
		}
	}
	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out, nil
}

// IsConnected reports whether a path exists between a and b. Unknown
// endpoints are simply not connected.
func (g *Graph) IsConnected(a, b string) bool {
	comp, err := g.Component(a)
	if err != nil {
		return false
	}
	for _, n := range comp {
		if n == b {
			return true
		}
	}
	return false
}

// Nodes returns every known symbol, sorted.
func (g *Graph) Nodes() []string {
	out := make([]string, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Pairs returns each undirected edge exactly once as [a b] with a < b,
// sorted. The deterministic order matters for reproducible protocol
// evaluation.
func (g *Graph) Pairs() [][2]string {
	var out [][2]string
	for a, set := range g.adj {
		for b := range set {
			if a < b {
				out = append(out, [2]string{a, b})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

func (g *Graph) Len() int { return len(g.adj) }
