package lang

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *Tree {
	t.Helper()
	tree, err := Parse(Tokenize(source))
	require.NoError(t, err)
	return tree
}

func TestParse_ThreeSections(t *testing.T) {
	tree := mustParse(t, "[EVENT]: greeting\n[EMOTION:JOY:5]\n{ Hello, world. }")
	want := &Tree{
		Core:      []CoreEntry{{Key: "EVENT", Value: "greeting"}},
		Emotions:  []EmotionTag{{Name: "JOY", Intensity: 5, Raw: "5"}},
		Narrative: " Hello, world. ",
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SectionsMayBeEmptyExceptNarrative(t *testing.T) {
	tree := mustParse(t, "{ only a story }")
	assert.Empty(t, tree.Core)
	assert.Empty(t, tree.Emotions)
}

func TestParse_EmptyNarrativeIsSyntaxError(t *testing.T) {
	for _, source := range []string{"{}", "{   }", "{\n\t\n}"} {
		_, err := Parse(Tokenize(source))
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "source %q", source)
	}
}

func TestParse_MissingNarrativeIsSyntaxError(t *testing.T) {
	_, err := Parse(Tokenize("[EVENT]: greeting\n[EMOTION:JOY:5]"))
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Msg, "missing narrative")
}

func TestParse_UnmatchedBrace(t *testing.T) {
	_, err := Parse(Tokenize("{ never ends"))
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Msg, "unmatched")
}

func TestParse_TrailingContentRejected(t *testing.T) {
	for _, source := range []string{
		"{ story } extra words",
		"{ story } [EMOTION:JOY:5]",
		"{ story } [EVENT]: late",
		"{ story } { another }",
	} {
		_, err := Parse(Tokenize(source))
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr, "source %q", source)
	}
}

func TestParse_CoreEntryAfterEmotionSection(t *testing.T) {
	_, err := Parse(Tokenize("[EMOTION:JOY:5]\n[EVENT]: late\n{ story }"))
	var syntaxErr *SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
	assert.Contains(t, syntaxErr.Msg, "after emotion section")
}

func TestParse_StableKeySemantics(t *testing.T) {
	tree := mustParse(t, "[A]: one\n[B]: two\n[A]: three\n{ story }")
	want := []CoreEntry{{Key: "A", Value: "three"}, {Key: "B", Value: "two"}}
	if diff := cmp.Diff(want, tree.Core); diff != "" {
		t.Fatalf("core mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_EmotionTagFieldCount(t *testing.T) {
	for _, source := range []string{
		"[EMOTION:JOY]\n{ story }",
		"[EMOTION:JOY:5:EXTRA]\n{ story }",
	} {
		_, err := Parse(Tokenize(source))
		var emotionErr *EmotionError
		require.ErrorAs(t, err, &emotionErr, "source %q", source)
	}
}

func TestParse_EmotionNameUpperCased(t *testing.T) {
	tree := mustParse(t, "[EMOTION:joy:5]\n{ story }")
	require.Len(t, tree.Emotions, 1)
	assert.Equal(t, "JOY", tree.Emotions[0].Name)
}

func TestParse_DuplicateEmotionsPreserved(t *testing.T) {
	tree := mustParse(t, "[EMOTION:JOY:5]\n[EMOTION:JOY:3]\n{ story }")
	require.Len(t, tree.Emotions, 2)
	assert.Equal(t, 5, tree.Emotions[0].Intensity)
	assert.Equal(t, 3, tree.Emotions[1].Intensity)
}

func TestParse_UnknownTagRejected(t *testing.T) {
	_, err := Parse(Tokenize("[WHAT IS THIS]\n{ story }"))
	require.Error(t, err)
	assert.True(t, errors.As(err, new(*SyntaxError)))
}

func TestParse_SymbolTagsAreCoreEntries(t *testing.T) {
	tree := mustParse(t, "[SYMBOL:RIVER]\n[SYMBOL:STONE]: heavy\n{ story }")
	want := []CoreEntry{
		{Key: "SYMBOL:RIVER", Value: ""},
		{Key: "SYMBOL:STONE", Value: "heavy"},
	}
	if diff := cmp.Diff(want, tree.Core); diff != "" {
		t.Fatalf("core mismatch (-want +got):\n%s", diff)
	}
}
