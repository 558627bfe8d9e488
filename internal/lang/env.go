package lang

import (
	"strconv"
	"strings"
)

// EmotionTag is one entry of the emotive layer. Raw keeps the intensity
// field as written, so the preflight validator can reject what Run repairs.
type EmotionTag struct {
	Name      string
	Intensity int
	Raw       string
}

// Environment is the canonical result of interpreting an artifact. It is
// produced once per parse, owned by the caller, and never mutated afterwards.
type Environment struct {
	StructuredCore map[string]string
	CoreKeys       []string // insertion order, first occurrence wins
	EmotiveLayer   []EmotionTag
	Chaosfield     string
}

// Serialize renders the Environment back into artifact syntax. Parsing the
// result yields an equal Environment (round-trip law).
func (e *Environment) Serialize() string {
	var b strings.Builder
	for _, key := range e.CoreKeys {
		val := e.StructuredCore[key]
		if strings.HasPrefix(key, symbolPrefix) && val == "" {
			b.WriteString("[" + key + "]\n")
			continue
		}
		b.WriteString("[" + key + "]: " + val + "\n")
	}
	for _, tag := range e.EmotiveLayer {
		b.WriteString("[" + emotionPrefix + tag.Name + ":" + strconv.Itoa(tag.Intensity) + "]\n")
	}
	b.WriteString("{ " + e.Chaosfield + " }\n")
	return b.String()
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
