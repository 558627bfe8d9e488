// Package lang implements the three-section artifact format: a structured
// key/value core, an ordered emotive layer, and a brace-delimited chaosfield
// narrative. Run turns source text into an Environment; Validate performs the
// same grammar checks as a cheap preflight gate.
package lang

import "strconv"

// Run tokenizes, parses and interprets source. Out-of-range intensities are
// clamped here; Validate rejects them instead. The asymmetry is deliberate
// and both behaviors are load-bearing.
func Run(source string) (*Environment, error) {
	tree, err := Parse(Tokenize(source))
	if err != nil {
		return nil, err
	}
	return Interpret(tree), nil
}

// Validate performs the grammar checks of Run without producing an
// Environment, plus preflight checks Run does not enforce: the core section
// must be present, and every emotion intensity must be a numeric value
// within [0,10].
func Validate(source string) error {
	tree, err := Parse(Tokenize(source))
	if err != nil {
		return err
	}
	if len(tree.Core) == 0 {
		return validationErrf("missing core section")
	}
	for _, tag := range tree.Emotions {
		n, err := strconv.Atoi(tag.Raw)
		if err != nil {
			return validationErrf("emotion %s: non-numeric intensity %q", tag.Name, tag.Raw)
		}
		if n < 0 || n > 10 {
			return validationErrf("emotion %s: intensity %d out of range [0,10]", tag.Name, n)
		}
	}
	return nil
}
