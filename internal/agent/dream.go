package agent

import (
	"math/rand"
	"strings"
)

// neutralEmotion is the template pool used when the stack is empty or the
// current emotion has no pool of its own.
const neutralEmotion = "CALM"

// DefaultTemplates is the built-in per-emotion vision pool. Placeholders:
// {a} and {b} are symbol names drawn without replacement, {emotion} is the
// pool's emotion, {context} is a narrative snippet.
func DefaultTemplates() map[string][]string {
	return map[string][]string{
		"CALM": {
			"Dream of {a} meeting {b} under {emotion}; context: {context}",
			"Still water: {a} rests beside {b}.",
		},
		"FEAR": {
			"{a} flickers in the dark; {b} is out of reach.",
			"Dream of running from {a} while {b} watches.",
		},
		"GRIEF": {
			"Dream of {a} fading; {b} keeps the echo.",
			"{a} and {b} stand where something was lost.",
		},
		"HOPE": {
			"A thin light over {a}; {b} leans toward it.",
			"Dream of {a} growing toward {b}.",
		},
		"LOVE": {
			"{a} and {b} share one warmth.",
			"Dream of carrying {a} home to {b}.",
		},
		"JOY": {
			"Dream of {a} dancing with {b}.",
			"{a} laughs and {b} answers.",
		},
		"WONDER": {
			"Dream of {a} opening into {b}.",
			"{a} is larger on the inside; {b} steps through.",
		},
		"WISDOM": {
			"{a} and {b} were the same thing all along.",
			"Dream of naming {a} and letting {b} go.",
		},
	}
}

// DreamEngine deterministically renders short vision strings from the
// current emotion and known symbols. All randomness flows through the caller
// supplied rng; identical seed and state reproduce identical output.
type DreamEngine struct {
	templates map[string][]string
	count     int
}

func NewDreamEngine(templates map[string][]string, count int) *DreamEngine {
	if len(templates) == 0 {
		templates = DefaultTemplates()
	}
	if count <= 0 {
		count = 3
	}
	return &DreamEngine{templates: templates, count: count}
}

// Visions produces one finite batch of vision strings. Callers wanting fresh
// dreams call again with the advanced rng.
func (d *DreamEngine) Visions(st *State, rng *rand.Rand) []string {
	name := neutralEmotion
	if st.Current != nil {
		name = st.Current.Name
	}
	pool, ok := d.templates[name]
	if !ok || len(pool) == 0 {
		pool = d.templates[neutralEmotion]
	}
	symbols := st.Graph.Nodes()

	out := make([]string, 0, d.count)
	for i := 0; i < d.count; i++ {
		tmpl := pool[rng.Intn(len(pool))]
		a, b := drawPair(symbols, rng)
		out = append(out, strings.NewReplacer(
			"{a}", a,
			"{b}", b,
			"{emotion}", name,
			"{context}", snippet(st.Narrative, 160),
		).Replace(tmpl))
	}
	return out
}

// drawPair picks two distinct symbols via rng, falling back to the stock
// MEMORY/LIGHT anchors when the graph is too small.
func drawPair(symbols []string, rng *rand.Rand) (string, string) {
	switch len(symbols) {
	case 0:
		return "MEMORY", "LIGHT"
	case 1:
		return symbols[0], "LIGHT"
	default:
		i := rng.Intn(len(symbols))
		j := rng.Intn(len(symbols) - 1)
		if j >= i {
			j++
		}
		return symbols[i], symbols[j]
	}
}
