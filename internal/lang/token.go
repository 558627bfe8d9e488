package lang

// Kind classifies a lexed token.
type Kind int

const (
	KindSectionKey Kind = iota
	KindSectionValue
	KindEmotionTag
	KindSymbolTag
	KindBraceOpen
	KindBraceClose
	KindFreeText
	KindUnknownTag
	KindEOF
)

func (k Kind) String() string {
	switch k {
	case KindSectionKey:
		return "section-key"
	case KindSectionValue:
		return "section-value"
	case KindEmotionTag:
		return "emotion-tag"
	case KindSymbolTag:
		return "symbol-tag"
	case KindBraceOpen:
		return "brace-open"
	case KindBraceClose:
		return "brace-close"
	case KindFreeText:
		return "free-text"
	case KindUnknownTag:
		return "unknown-tag"
	case KindEOF:
		return "end-of-input"
	}
	return "invalid"
}

// Token is immutable once produced. Line and Col are 1-based and point at
// the first character of the token in the source.
type Token struct {
	Kind    Kind
	Literal string
	Line    int
	Col     int
}
