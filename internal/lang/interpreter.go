package lang

import "strings"

// Interpret walks the tree into a canonical Environment. It performs no
// validation beyond what the parser guarantees: intensities outside [0,10]
// are clamped, not rejected, and the narrative is trimmed.
func Interpret(tree *Tree) *Environment {
	env := &Environment{
		StructuredCore: make(map[string]string, len(tree.Core)),
		CoreKeys:       make([]string, 0, len(tree.Core)),
		EmotiveLayer:   make([]EmotionTag, 0, len(tree.Emotions)),
		Chaosfield:     strings.TrimSpace(tree.Narrative),
	}
	for _, entry := range tree.Core {
		env.StructuredCore[entry.Key] = entry.Value
		env.CoreKeys = append(env.CoreKeys, entry.Key)
	}
	for _, tag := range tree.Emotions {
		env.EmotiveLayer = append(env.EmotiveLayer, EmotionTag{
			Name:      tag.Name,
			Intensity: clampIntensity(tag.Intensity),
			Raw:       tag.Raw,
		})
	}
	return env
}
