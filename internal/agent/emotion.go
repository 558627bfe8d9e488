package agent

import "strings"

// StackCapacity bounds the emotion stack. When a push would exceed it, the
// oldest entry is evicted: recency, not strength, determines survival.
const StackCapacity = 10

// Emotion is a named, intensity-scored entry. Seq is a logical timestamp
// assigned by the owning stack.
type Emotion struct {
	Name      string
	Intensity int
	Seq       uint64
}

// Active reports whether the emotion still carries intensity. Decayed-to-zero
// entries stay on the stack until capacity pressure evicts them.
func (e Emotion) Active() bool { return e.Intensity > 0 }

// Trigger associates a keyword with an emotion push at a fixed intensity.
// Declaration order is contractual: TriggerFromText fires triggers in table
// order, not in text order.
type Trigger struct {
	Keyword   string `yaml:"keyword"`
	Emotion   string `yaml:"emotion"`
	Intensity int    `yaml:"intensity"`
}

// DefaultTriggers is the built-in keyword table.
func DefaultTriggers() []Trigger {
	return []Trigger{
		{Keyword: "safe", Emotion: "CALM", Intensity: 6},
		{Keyword: "momma", Emotion: "NOSTALGIA", Intensity: 8},
		{Keyword: "disconnected", Emotion: "ANXIETY", Intensity: 7},
		{Keyword: "warmth", Emotion: "LOVE", Intensity: 7},
		{Keyword: "loss", Emotion: "GRIEF", Intensity: 9},
		{Keyword: "ocean", Emotion: "WONDER", Intensity: 5},
		{Keyword: "dark", Emotion: "FEAR", Intensity: 6},
	}
}

// transitions is the fixed state table applied by Transition.
var transitions = map[string]string{
	"FEAR":  "HOPE",
	"HOPE":  "LOVE",
	"LOVE":  "GRIEF",
	"GRIEF": "WISDOM",
}

// EmotionStack is a fixed-capacity ring buffer of emotions. The capacity
// invariant is structural: the buffer cannot grow past StackCapacity.
type EmotionStack struct {
	buf      [StackCapacity]Emotion
	head     int // index of the oldest entry
	size     int
	seq      uint64
	triggers []Trigger
}

func NewEmotionStack(triggers []Trigger) *EmotionStack {
	if triggers == nil {
		triggers = DefaultTriggers()
	}
	return &EmotionStack{triggers: triggers}
}

// Push clamps the intensity into [0,10], upper-cases the name and appends.
// The oldest entry is evicted when the stack is full.
func (s *EmotionStack) Push(name string, intensity int) {
	s.seq++
	e := Emotion{
		Name:      strings.ToUpper(strings.TrimSpace(name)),
		Intensity: clampIntensity(intensity),
		Seq:       s.seq,
	}
	if s.size == StackCapacity {
		s.buf[s.head] = e
		s.head = (s.head + 1) % StackCapacity
		return
	}
	s.buf[(s.head+s.size)%StackCapacity] = e
	s.size++
}

// Current returns the most recently pushed, non-evicted emotion.
func (s *EmotionStack) Current() (Emotion, bool) {
	if s.size == 0 {
		return Emotion{}, false
	}
	return s.buf[(s.head+s.size-1)%StackCapacity], true
}

// DecayAll subtracts amount from every entry, floored at 0. Entries that
// reach 0 are kept.
func (s *EmotionStack) DecayAll(amount int) {
	for i := 0; i < s.size; i++ {
		idx := (s.head + i) % StackCapacity
		v := s.buf[idx].Intensity - amount
		if v < 0 {
			v = 0
		}
		s.buf[idx].Intensity = v
	}
}

// TriggerFromText scans text for the trigger keywords (case-insensitive
// substring match). Every keyword found pushes exactly once, in table order.
func (s *EmotionStack) TriggerFromText(text string) []Trigger {
	lowered := strings.ToLower(text)
	var fired []Trigger
	for _, tr := range s.triggers {
		if strings.Contains(lowered, strings.ToLower(tr.Keyword)) {
			s.Push(tr.Emotion, tr.Intensity)
			fired = append(fired, tr)
		}
	}
	return fired
}

// Transition applies at most one step of the fixed transition table to the
// top of the stack, pushing the target at the source's intensity.
func (s *EmotionStack) Transition() bool {
	cur, ok := s.Current()
	if !ok {
		return false
	}
	next, ok := transitions[cur.Name]
	if !ok {
		return false
	}
	s.Push(next, cur.Intensity)
	return true
}

// Snapshot returns the active entries, oldest first.
func (s *EmotionStack) Snapshot() []Emotion {
	out := make([]Emotion, 0, s.size)
	for i := 0; i < s.size; i++ {
		e := s.buf[(s.head+i)%StackCapacity]
		if e.Active() {
			out = append(out, e)
		}
	}
	return out
}

// All returns every tracked entry, active or not, oldest first.
func (s *EmotionStack) All() []Emotion {
	out := make([]Emotion, 0, s.size)
	for i := 0; i < s.size; i++ {
		out = append(out, s.buf[(s.head+i)%StackCapacity])
	}
	return out
}

func (s *EmotionStack) Len() int { return s.size }

func (s *EmotionStack) Clear() {
	s.head = 0
	s.size = 0
}

func clampIntensity(n int) int {
	if n < 0 {
		return 0
	}
	if n > 10 {
		return 10
	}
	return n
}
