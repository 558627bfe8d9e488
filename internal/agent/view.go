package agent

// State is a read-only view of the agent's long-lived state, handed to dream
// synthesis and protocol evaluation. It is rebuilt per phase and never
// retained.
type State struct {
	Current   *Emotion
	Emotions  []Emotion
	Symbols   map[string]string
	Graph     *Graph
	Narrative string
	Related   map[string]bool // pairKey -> a relate action was already recorded
}

// pairKey is the canonical undirected key for a symbol pair.
func pairKey(a, b string) string {
	if b < a {
		a, b = b, a
	}
	return a + "|" + b
}
