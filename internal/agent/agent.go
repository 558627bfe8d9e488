// Package agent implements the stateful consumer of artifacts: a bounded
// emotion stack, an undirected symbol graph, deterministic dream synthesis
// and a rule-based protocol selector, orchestrated as one
// perceive, reflect, decide, act, tick cycle per Step call.
package agent

import (
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"chaos-v0/internal/lang"
)

// Report snapshots one completed cycle. It is created fresh per Step and is
// read-only to the caller.
type Report struct {
	Emotions  []Emotion
	Symbols   map[string]string
	Narrative string
	Action    *Action
	Dreams    []string
	Log       string
}

// Agent owns the emotional history, the symbol graph and the cycle log for
// its whole lifetime. It carries no internal synchronization: the caller
// serializes Step calls on one instance; distinct agents share nothing.
type Agent struct {
	id        string
	name      string
	cfg       Config
	rng       *rand.Rand
	stack     *EmotionStack
	graph     *Graph
	symbols   map[string]string
	related   map[string]bool
	registry  *Registry
	dreams    *DreamEngine
	book      *Logbook
	zlog      *zap.Logger
	narrative string

	seed    int64
	seedSet bool
}

type Option func(*Agent)

// WithSeed fixes the dream RNG; equal seeds and equal state reproduce equal
// visions.
func WithSeed(seed int64) Option {
	return func(a *Agent) { a.seed, a.seedSet = seed, true }
}

func WithConfig(cfg Config) Option {
	return func(a *Agent) { a.cfg = cfg }
}

// WithLogger mirrors logbook entries to l at debug level. The logbook itself
// is always kept; the mirror is diagnostics only.
func WithLogger(l *zap.Logger) Option {
	return func(a *Agent) { a.zlog = l }
}

func WithRegistry(r *Registry) Option {
	return func(a *Agent) { a.registry = r }
}

func New(name string, opts ...Option) *Agent {
	a := &Agent{
		id:   uuid.NewString(),
		name: name,
		cfg:  DefaultConfig(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if !a.seedSet {
		a.seed = time.Now().UnixNano()
	}
	if a.zlog == nil {
		a.zlog = zap.NewNop()
	}
	if a.registry == nil {
		a.registry = NewRegistry()
	}
	a.rng = rand.New(rand.NewSource(a.seed))
	a.stack = NewEmotionStack(a.cfg.Triggers)
	a.dreams = NewDreamEngine(a.cfg.Templates, a.cfg.DreamCount)
	a.graph = NewGraph()
	a.symbols = make(map[string]string)
	a.related = make(map[string]bool)
	a.book = NewLogbook()
	return a
}

func (a *Agent) ID() string   { return a.id }
func (a *Agent) Name() string { return a.name }

// Step executes exactly one full cycle and returns its report. Both inputs
// are optional; an empty call still advances the Tick phase.
func (a *Agent) Step(text, artifactSource string) *Report {
	a.perceive(text, artifactSource)
	dreams := a.reflect()
	action := a.decide()
	a.act(action)
	a.tick()

	symbols := make(map[string]string, len(a.symbols))
	for k, v := range a.symbols {
		symbols[k] = v
	}
	return &Report{
		Emotions:  a.stack.Snapshot(),
		Symbols:   symbols,
		Narrative: a.narrative,
		Action:    action,
		Dreams:    dreams,
		Log:       a.book.Export(),
	}
}

// ExportLog dumps the accumulated cycle log. It is append-only and cleared
// only by Reset.
func (a *Agent) ExportLog() string { return a.book.Export() }

// Reset discards all long-lived state: emotions, graph, symbols, narrative
// and the log.
func (a *Agent) Reset() {
	a.stack.Clear()
	a.graph = NewGraph()
	a.symbols = make(map[string]string)
	a.related = make(map[string]bool)
	a.narrative = ""
	a.book.Reset()
	a.logf("%s reset", a.name)
}

// ClearNarrative drops the accumulated chaosfield text only.
func (a *Agent) ClearNarrative() { a.narrative = "" }

func (a *Agent) logf(format string, args ...any) {
	a.zlog.Debug(a.book.Logf(format, args...))
}

// perceive ingests raw text and/or an artifact. A parse failure is logged
// and contained: the remaining phases run against the prior state.
func (a *Agent) perceive(text, source string) {
	if text != "" {
		a.logf("%s perceived: %s", a.name, snippet(text, 120))
		a.fireTriggers(text)
	}
	if source == "" {
		return
	}
	env, err := lang.Run(source)
	if err != nil {
		a.logf("perceive error: %v", err)
		return
	}
	for _, key := range env.CoreKeys {
		a.mergeCoreEntry(key, env.StructuredCore[key])
	}
	for _, tag := range env.EmotiveLayer {
		a.stack.Push(tag.Name, tag.Intensity)
		a.logf("emotion %s:%d", tag.Name, clampIntensity(tag.Intensity))
	}
	if env.Chaosfield != "" {
		if a.narrative == "" {
			a.narrative = env.Chaosfield
		} else {
			a.narrative += "\n\n" + env.Chaosfield
		}
		a.logf("narrative %s", snippet(env.Chaosfield, 120))
		a.fireTriggers(env.Chaosfield)
	}
}

func (a *Agent) fireTriggers(text string) {
	for _, tr := range a.stack.TriggerFromText(text) {
		a.logf("trigger %q -> %s:%d", tr.Keyword, tr.Emotion, tr.Intensity)
	}
}

// mergeCoreEntry interns core entries as symbols. SYMBOL:A names the node A;
// SYMBOL:A:B names both and connects them, which is how structured cores
// update the relationship graph.
func (a *Agent) mergeCoreEntry(key, value string) {
	if strings.HasPrefix(key, "SYMBOL:") {
		parts := splitSymbolKey(key)
		for _, p := range parts {
			a.symbols[p] = value
			a.graph.Intern(p)
		}
		for i := 1; i < len(parts); i++ {
			a.graph.Connect(parts[i-1], parts[i])
			a.logf("edge %s-%s", parts[i-1], parts[i])
		}
		return
	}
	norm := normKey(key)
	a.symbols[norm] = value
	a.graph.Intern(norm)
	a.logf("symbol %s=%s", norm, value)
}

func (a *Agent) reflect() []string {
	dreams := a.dreams.Visions(a.view(), a.rng)
	for _, d := range dreams {
		a.logf("dream %s", snippet(d, 120))
	}
	return dreams
}

func (a *Agent) decide() *Action {
	action, kind, score, ok := a.registry.Select(a.view())
	if !ok {
		a.logf("idle")
		return nil
	}
	a.logf("protocol %s score %.2f -> %s", kind, score, action.Kind)
	return &action
}

// act records the action. Actions are advisory: the only state change is the
// bookkeeping that a proposed pair is now related.
func (a *Agent) act(action *Action) {
	if action == nil {
		return
	}
	a.logf("act %s", action)
	if action.Kind == ActionRelate {
		a.related[pairKey(action.Payload["a"], action.Payload["b"])] = true
	}
}

func (a *Agent) tick() {
	a.stack.DecayAll(a.cfg.DecayAmount)
	if a.cfg.TransitionOnTick && a.stack.Transition() {
		if cur, ok := a.stack.Current(); ok {
			a.logf("transition -> %s:%d", cur.Name, cur.Intensity)
		}
	}
}

func (a *Agent) view() *State {
	st := &State{
		Emotions:  a.stack.Snapshot(),
		Symbols:   a.symbols,
		Graph:     a.graph,
		Narrative: a.narrative,
		Related:   a.related,
	}
	if cur, ok := a.stack.Current(); ok {
		st.Current = &cur
	}
	return st
}
