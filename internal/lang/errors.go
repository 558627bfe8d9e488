package lang

import "fmt"

// SyntaxError reports a structural violation found while tokenizing or
// parsing: unmatched braces, out-of-order sections, missing or empty
// narrative, trailing content.
type SyntaxError struct {
	Line int
	Col  int
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return "syntax error: " + e.Msg
}

func syntaxErrf(tok Token, format string, args ...any) error {
	return &SyntaxError{Line: tok.Line, Col: tok.Col, Msg: fmt.Sprintf(format, args...)}
}

// ValidationError reports a preflight check failure. Validate rejects
// conditions (out-of-range or non-numeric intensity, missing core section)
// that Run deliberately repairs instead.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "validation error: " + e.Msg }

func validationErrf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// EmotionError reports a malformed emotion tag, e.g. a wrong field count.
type EmotionError struct {
	Line int
	Col  int
	Msg  string
}

func (e *EmotionError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("emotion error at %d:%d: %s", e.Line, e.Col, e.Msg)
	}
	return "emotion error: " + e.Msg
}
