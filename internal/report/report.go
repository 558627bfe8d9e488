// Package report projects an interpreted Environment into an
// executive-facing snapshot for the CLI layer.
package report

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"chaos-v0/internal/lang"
)

type EmotionEntry struct {
	Name      string `json:"name"`
	Intensity int    `json:"intensity"`
}

type Report struct {
	Structured  map[string]string `json:"structured"`
	Keys        []string          `json:"keys"`
	Emotions    []EmotionEntry    `json:"emotions"`
	TopEmotion  string            `json:"top_emotion,omitempty"`
	Narrative   string            `json:"narrative"`
	Tags        []string          `json:"tags"`
	Insight     string            `json:"insight"`
	GeneratedAt string            `json:"generated_at,omitempty"`
}

// Generate builds the snapshot. Emotions are clamped and ordered by
// intensity descending, then name; the narrative is shortened to a snippet.
// The timestamp is optional so tests stay deterministic.
func Generate(env *lang.Environment, includeTimestamp bool) *Report {
	r := &Report{
		Structured: env.StructuredCore,
		Keys:       env.CoreKeys,
		Narrative:  snippet(env.Chaosfield, 280),
	}
	for _, tag := range env.EmotiveLayer {
		name := strings.ToUpper(strings.TrimSpace(tag.Name))
		if name == "" {
			continue
		}
		n := tag.Intensity
		if n < 0 {
			n = 0
		}
		if n > 10 {
			n = 10
		}
		r.Emotions = append(r.Emotions, EmotionEntry{Name: name, Intensity: n})
	}
	sort.SliceStable(r.Emotions, func(i, j int) bool {
		if r.Emotions[i].Intensity != r.Emotions[j].Intensity {
			return r.Emotions[i].Intensity > r.Emotions[j].Intensity
		}
		return r.Emotions[i].Name < r.Emotions[j].Name
	})
	if len(r.Emotions) > 0 {
		r.TopEmotion = r.Emotions[0].Name
	}
	for _, key := range env.CoreKeys {
		if key == strings.ToUpper(key) {
			r.Tags = append(r.Tags, key)
		}
	}
	r.Insight = craftInsight(env.StructuredCore, r.TopEmotion, r.Narrative)
	if includeTimestamp {
		r.GeneratedAt = time.Now().UTC().Format(time.RFC3339)
	}
	return r
}

// RenderLines flattens a report into CLI-friendly lines.
func RenderLines(r *Report) []string {
	generated := r.GeneratedAt
	if generated == "" {
		generated = "n/a"
	}
	top := r.TopEmotion
	if top == "" {
		top = "None"
	}
	lines := []string{
		"=== CHAOS Report ===",
		"Generated: " + generated,
		"Top emotion: " + top,
	}
	if len(r.Keys) > 0 {
		lines = append(lines, "-- Structured Core --")
		for _, key := range r.Keys {
			lines = append(lines, key+": "+r.Structured[key])
		}
	}
	if len(r.Emotions) > 0 {
		lines = append(lines, "-- Emotive Layer --")
		for _, e := range r.Emotions {
			lines = append(lines, e.Name+": "+strconv.Itoa(e.Intensity))
		}
	}
	if r.Narrative != "" {
		lines = append(lines, "-- Chaosfield Narrative --", r.Narrative)
	}
	if r.Insight != "" {
		lines = append(lines, "-- Insight --", r.Insight)
	}
	return lines
}

func craftInsight(structured map[string]string, topEmotion, narrative string) string {
	var pieces []string
	if account := firstOf(structured, "ACCOUNT", "ACCOUNT_ID", "CLIENT"); account != "" {
		pieces = append(pieces, "Account "+account)
	}
	if stage := firstOf(structured, "STAGE", "STATUS"); stage != "" {
		pieces = append(pieces, "is at "+stage)
	}
	if topEmotion != "" {
		pieces = append(pieces, "feeling "+strings.ToLower(topEmotion))
	}
	summary := strings.Join(pieces, " ")
	if narrative != "" {
		if summary == "" {
			return "Narrative: " + narrative
		}
		return summary + ". Narrative: " + narrative
	}
	return summary
}

func firstOf(m map[string]string, keys ...string) string {
	for _, k := range keys {
		if v := m[k]; v != "" {
			return v
		}
	}
	return ""
}

func snippet(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= limit {
		return text
	}
	return text[:limit-1] + "…"
}
