package agent

import "fmt"

// ActionKind is the bounded set of behaviors a protocol can propose.
type ActionKind string

const (
	ActionStabilize ActionKind = "stabilize"
	ActionTransform ActionKind = "transform"
	ActionRelate    ActionKind = "relate"
)

// Action is advisory output. It is constructed only by protocols, recorded
// by the agent during the Act phase, and never executed against the outside
// world.
type Action struct {
	Kind    ActionKind
	Payload map[string]string
}

func (a Action) String() string {
	return fmt.Sprintf("%s %v", a.Kind, a.Payload)
}

// ProtocolKind is the closed set of scoring rules the registry evaluates.
// Protocols are a tagged variant, not an open interface: the set is fixed
// and every switch over it is exhaustive.
type ProtocolKind int

const (
	ProtocolOath ProtocolKind = iota
	ProtocolRitual
	ProtocolContract
	ProtocolMemory
)

func (k ProtocolKind) String() string {
	switch k {
	case ProtocolOath:
		return "oath.stability"
	case ProtocolRitual:
		return "ritual.transformation"
	case ProtocolContract:
		return "contract.relationship"
	case ProtocolMemory:
		return "memory.baseline"
	}
	return "protocol.unknown"
}

// protocolThreshold is the minimum current intensity for Oath and Ritual to
// apply.
const protocolThreshold = 5

// memoryBaseline keeps selection non-empty whenever Memory is registered.
const memoryBaseline = 0.05

// Evaluate scores the protocol against state into [0,1]. ok=false means not
// applicable.
func (k ProtocolKind) Evaluate(st *State) (score float64, ok bool) {
	switch k {
	case ProtocolOath:
		return currentScore(st, "FEAR", "GRIEF")
	case ProtocolRitual:
		return currentScore(st, "HOPE", "LOVE")
	case ProtocolContract:
		if _, _, ok := unrelatedPair(st); ok {
			return 0.6, true
		}
		return 0, false
	case ProtocolMemory:
		return memoryBaseline, true
	}
	return 0, false
}

// Apply builds the protocol's Action. Callers only invoke it for a protocol
// whose Evaluate returned ok.
func (k ProtocolKind) Apply(st *State) Action {
	switch k {
	case ProtocolOath:
		return Action{Kind: ActionStabilize, Payload: map[string]string{
			"affirmation": "You are safe.",
		}}
	case ProtocolRitual:
		return Action{Kind: ActionTransform, Payload: map[string]string{
			"pledge": "We move with care.",
			"source": snippet(st.Narrative, 120),
		}}
	case ProtocolContract:
		a, b, _ := unrelatedPair(st)
		return Action{Kind: ActionRelate, Payload: map[string]string{
			"a": a,
			"b": b,
		}}
	case ProtocolMemory:
		return Action{Kind: ActionStabilize, Payload: map[string]string{
			"summary": fmt.Sprintf("%d active emotions, %d symbols; narrative: %s",
				len(st.Emotions), len(st.Symbols), snippet(st.Narrative, 80)),
		}}
	}
	return Action{Kind: ActionStabilize, Payload: map[string]string{}}
}

func currentScore(st *State, names ...string) (float64, bool) {
	cur := st.Current
	if cur == nil || cur.Intensity < protocolThreshold {
		return 0, false
	}
	for _, n := range names {
		if cur.Name == n {
			return float64(cur.Intensity) / 10, true
		}
	}
	return 0, false
}

// unrelatedPair returns the first connected pair (in the graph's
// deterministic pair order) that no relate action has marked yet.
func unrelatedPair(st *State) (string, string, bool) {
	for _, p := range st.Graph.Pairs() {
		if !st.Related[pairKey(p[0], p[1])] {
			return p[0], p[1], true
		}
	}
	return "", "", false
}

// Registry evaluates its protocols in registration order and picks the
// strictly highest score; an exact tie goes to the earliest-registered
// protocol, which keeps selection deterministic.
type Registry struct {
	kinds []ProtocolKind
}

// NewRegistry registers the given protocols in order. With no arguments it
// registers the standard set.
func NewRegistry(kinds ...ProtocolKind) *Registry {
	if len(kinds) == 0 {
		kinds = []ProtocolKind{ProtocolOath, ProtocolRitual, ProtocolContract, ProtocolMemory}
	}
	return &Registry{kinds: kinds}
}

// Select returns the winning protocol's action, kind and score, or ok=false
// when no registered protocol applies.
func (r *Registry) Select(st *State) (Action, ProtocolKind, float64, bool) {
	var (
		best      float64
		bestKind  ProtocolKind
		haveMatch bool
	)
	for _, k := range r.kinds {
		score, ok := k.Evaluate(st)
		if !ok {
			continue
		}
		if !haveMatch || score > best {
			best = score
			bestKind = k
			haveMatch = true
		}
	}
	if !haveMatch {
		return Action{}, 0, 0, false
	}
	return bestKind.Apply(st), bestKind, best, true
}
