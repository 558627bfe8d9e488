package lang

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpret_CanonicalEnvironment(t *testing.T) {
	env, err := Run("[EVENT]: greeting\n[EMOTION:JOY:5]\n{ Hello, world. }")
	require.NoError(t, err)

	want := &Environment{
		StructuredCore: map[string]string{"EVENT": "greeting"},
		CoreKeys:       []string{"EVENT"},
		EmotiveLayer:   []EmotionTag{{Name: "JOY", Intensity: 5, Raw: "5"}},
		Chaosfield:     "Hello, world.",
	}
	if diff := cmp.Diff(want, env); diff != "" {
		t.Fatalf("environment mismatch (-want +got):\n%s", diff)
	}
}

func TestInterpret_ClampsOutOfRangeIntensity(t *testing.T) {
	env, err := Run("[EMOTION:JOY:15]\n{ story }")
	require.NoError(t, err)
	require.Len(t, env.EmotiveLayer, 1)
	assert.Equal(t, 10, env.EmotiveLayer[0].Intensity)

	env, err = Run("[EMOTION:DREAD:-2]\n{ story }")
	require.NoError(t, err)
	assert.Equal(t, 0, env.EmotiveLayer[0].Intensity)
}

func TestInterpret_TrimsNarrative(t *testing.T) {
	env, err := Run("{   padded story \n }")
	require.NoError(t, err)
	assert.Equal(t, "padded story", env.Chaosfield)
}

func TestInterpret_NonNumericIntensityFallsBack(t *testing.T) {
	env, err := Run("[EMOTION:JOY:high]\n{ story }")
	require.NoError(t, err)
	require.Len(t, env.EmotiveLayer, 1)
	assert.Equal(t, 5, env.EmotiveLayer[0].Intensity)
}
