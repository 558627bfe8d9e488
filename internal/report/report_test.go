package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chaos-v0/internal/lang"
)

func sampleEnv(t *testing.T) *lang.Environment {
	t.Helper()
	env, err := lang.Run(`[ACCOUNT]: ACME-042
[STAGE]: onboarding
[EMOTION:CALM:3]
[EMOTION:HOPE:7]
[EMOTION:JOY:7]
{ The kickoff call went better than anyone expected. }
`)
	require.NoError(t, err)
	return env
}

func TestGenerate_OrdersEmotions(t *testing.T) {
	r := Generate(sampleEnv(t), false)

	require.Len(t, r.Emotions, 3)
	// Intensity descending, name ascending on ties.
	assert.Equal(t, EmotionEntry{Name: "HOPE", Intensity: 7}, r.Emotions[0])
	assert.Equal(t, EmotionEntry{Name: "JOY", Intensity: 7}, r.Emotions[1])
	assert.Equal(t, EmotionEntry{Name: "CALM", Intensity: 3}, r.Emotions[2])
	assert.Equal(t, "HOPE", r.TopEmotion)
}

func TestGenerate_InsightAndTags(t *testing.T) {
	r := Generate(sampleEnv(t), false)

	assert.Equal(t, []string{"ACCOUNT", "STAGE"}, r.Tags)
	assert.Contains(t, r.Insight, "Account ACME-042")
	assert.Contains(t, r.Insight, "is at onboarding")
	assert.Contains(t, r.Insight, "feeling hope")
	assert.Empty(t, r.GeneratedAt)
}

func TestGenerate_Timestamp(t *testing.T) {
	r := Generate(sampleEnv(t), true)
	assert.NotEmpty(t, r.GeneratedAt)
}

func TestGenerate_NoEmotions(t *testing.T) {
	env, err := lang.Run("[EVENT]: quiet\n{ nothing much happened }\n")
	require.NoError(t, err)

	r := Generate(env, false)
	assert.Empty(t, r.Emotions)
	assert.Empty(t, r.TopEmotion)
	assert.Contains(t, r.Insight, "Narrative: nothing much happened")
}

func TestRenderLines(t *testing.T) {
	lines := RenderLines(Generate(sampleEnv(t), false))

	require.NotEmpty(t, lines)
	assert.Equal(t, "=== CHAOS Report ===", lines[0])
	assert.Contains(t, lines, "Generated: n/a")
	assert.Contains(t, lines, "Top emotion: HOPE")
	assert.Contains(t, lines, "ACCOUNT: ACME-042")
	assert.Contains(t, lines, "HOPE: 7")
	assert.Contains(t, lines, "-- Chaosfield Narrative --")
}

func TestRenderLines_EmptyReport(t *testing.T) {
	lines := RenderLines(&Report{})
	assert.Equal(t, []string{
		"=== CHAOS Report ===",
		"Generated: n/a",
		"Top emotion: None",
	}, lines)
}
