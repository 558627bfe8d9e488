package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVerb(t *testing.T) {
	for _, tc := range []struct {
		line, verb, arg string
	}{
		{":quit", "quit", ""},
		{":open artifact.chaos", "open", "artifact.chaos"},
		{":open  spaced name.chaos ", "open", "spaced name.chaos"},
		{":dreams", "dreams", ""},
		{":", "", ""},
	} {
		verb, arg := parseVerb(tc.line)
		assert.Equal(t, tc.verb, verb, "line %q", tc.line)
		assert.Equal(t, tc.arg, arg, "line %q", tc.line)
	}
}
