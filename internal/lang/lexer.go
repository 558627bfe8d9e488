package lang

import "strings"

const (
	emotionPrefix = "EMOTION:"
	symbolPrefix  = "SYMBOL:"
)

// Tokenize scans source in a single left-to-right pass with no backtracking.
// It is total: bracket content that matches none of the known tag shapes is
// emitted as an unknown-tag token and left for the parser to reject.
// Lines starting with '#' are comments and produce no tokens.
func Tokenize(source string) []Token {
	lx := &lexer{src: source, line: 1, col: 1}
	lx.run()
	return lx.tokens
}

type lexer struct {
	src    string
	i      int
	line   int
	col    int
	tokens []Token
}

func (lx *lexer) run() {
	for lx.i < len(lx.src) {
		switch c := lx.src[lx.i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			lx.advance()
		case c == '#':
			lx.skipToEOL()
		case c == '[':
			lx.scanTag()
		case c == '{':
			lx.scanNarrative()
		case c == '}':
			// Stray close brace; the parser reports the mismatch.
			lx.emit(KindBraceClose, "}", lx.line, lx.col)
			lx.advance()
		default:
			lx.scanFreeText()
		}
	}
	lx.emit(KindEOF, "", lx.line, lx.col)
}

func (lx *lexer) emit(kind Kind, literal string, line, col int) {
	lx.tokens = append(lx.tokens, Token{Kind: kind, Literal: literal, Line: line, Col: col})
}

func (lx *lexer) advance() byte {
	c := lx.src[lx.i]
	lx.i++
	if c == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}
	return c
}

func (lx *lexer) skipToEOL() {
	for lx.i < len(lx.src) && lx.src[lx.i] != '\n' {
		lx.advance()
	}
}

// scanTag consumes a '[' ... ']' tag and classifies its inner text.
// A tag that is not closed on the same line is emitted as unknown-tag.
func (lx *lexer) scanTag() {
	line, col := lx.line, lx.col
	lx.advance() // '['
	var b strings.Builder
	closed := false
	for lx.i < len(lx.src) {
		c := lx.src[lx.i]
		if c == '\n' {
			break
		}
		lx.advance()
		if c == ']' {
			closed = true
			break
		}
		b.WriteByte(c)
	}
	inner := strings.TrimSpace(b.String())
	if !closed {
		lx.emit(KindUnknownTag, inner, line, col)
		return
	}

	switch {
	case strings.HasPrefix(inner, emotionPrefix):
		lx.emit(KindEmotionTag, inner, line, col)
	case strings.HasPrefix(inner, symbolPrefix):
		lx.emit(KindSymbolTag, inner, line, col)
		lx.maybeScanValue()
	case isKeyShape(inner):
		// Plain keys are only core pairs when a ': value' follows.
		if lx.peekColon() {
			lx.emit(KindSectionKey, inner, line, col)
			lx.maybeScanValue()
		} else {
			lx.emit(KindUnknownTag, inner, line, col)
		}
	default:
		lx.emit(KindUnknownTag, inner, line, col)
	}
}

// peekColon reports whether the next non-blank character on this line is ':'.
func (lx *lexer) peekColon() bool {
	for j := lx.i; j < len(lx.src); j++ {
		switch lx.src[j] {
		case ' ', '\t', '\r':
			continue
		case ':':
			return true
		default:
			return false
		}
	}
	return false
}

// maybeScanValue consumes an optional ': value' to end of line and emits a
// section-value token. Surrounding double quotes are stripped from the value.
func (lx *lexer) maybeScanValue() {
	for lx.i < len(lx.src) && (lx.src[lx.i] == ' ' || lx.src[lx.i] == '\t' || lx.src[lx.i] == '\r') {
		lx.advance()
	}
	if lx.i >= len(lx.src) || lx.src[lx.i] != ':' {
		return
	}
	lx.advance() // ':'
	line, col := lx.line, lx.col
	var b strings.Builder
	for lx.i < len(lx.src) && lx.src[lx.i] != '\n' {
		b.WriteByte(lx.advance())
	}
	val := strings.TrimSpace(b.String())
	if len(val) >= 2 && val[0] == '"' && val[len(val)-1] == '"' {
		val = val[1 : len(val)-1]
	}
	lx.emit(KindSectionValue, val, line, col)
}

// scanNarrative consumes '{' raw-text '}' verbatim, newlines included.
// A missing closing brace leaves the brace-close token out; the parser
// reports the unmatched brace.
func (lx *lexer) scanNarrative() {
	lx.emit(KindBraceOpen, "{", lx.line, lx.col)
	lx.advance() // '{'
	line, col := lx.line, lx.col
	var b strings.Builder
	closed := false
	for lx.i < len(lx.src) {
		c := lx.src[lx.i]
		if c == '}' {
			closed = true
			break
		}
		b.WriteByte(lx.advance())
	}
	lx.emit(KindFreeText, b.String(), line, col)
	if closed {
		lx.emit(KindBraceClose, "}", lx.line, lx.col)
		lx.advance() // '}'
	}
}

// scanFreeText consumes literal text outside tags up to end of line or the
// next structural character.
func (lx *lexer) scanFreeText() {
	line, col := lx.line, lx.col
	var b strings.Builder
	for lx.i < len(lx.src) {
		c := lx.src[lx.i]
		if c == '\n' || c == '[' || c == '{' || c == '}' || c == '#' {
			break
		}
		b.WriteByte(lx.advance())
	}
	if text := strings.TrimSpace(b.String()); text != "" {
		lx.emit(KindFreeText, text, line, col)
	}
}

func isKeyShape(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c == '_':
		case c >= '0' && c <= '9', c == '-':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
