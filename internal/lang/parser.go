package lang

import (
	"strconv"
	"strings"
)

// Tree is the three-child syntax tree: structured core, emotive layer,
// chaosfield narrative.
type Tree struct {
	Core      []CoreEntry
	Emotions  []EmotionTag
	Narrative string // raw block content; the interpreter trims it
}

type CoreEntry struct {
	Key   string
	Value string
}

// Parse consumes a token stream and enforces the strict section order:
// core, then emotions, then narrative. The narrative block is mandatory and must be
// non-empty after trimming; anything after its closing brace is rejected.
func Parse(tokens []Token) (*Tree, error) {
	p := &parser{tokens: tokens}
	tree := &Tree{}
	p.parseCore(tree)
	if err := p.parseEmotions(tree); err != nil {
		return nil, err
	}
	if err := p.parseNarrative(tree); err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != KindEOF {
		return nil, syntaxErrf(tok, "unexpected %s after narrative block", tok.Kind)
	}
	return tree, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != KindEOF {
		p.pos++
	}
	return tok
}

func (p *parser) parseCore(tree *Tree) {
	for {
		switch p.peek().Kind {
		case KindSectionKey, KindSymbolTag:
			key := p.next().Literal
			val := ""
			if p.peek().Kind == KindSectionValue {
				val = p.next().Literal
			}
			setCore(tree, key, val)
		default:
			return
		}
	}
}

// setCore applies stable-key semantics: a duplicate key overwrites the value
// but keeps the position of its first occurrence.
func setCore(tree *Tree, key, value string) {
	for i := range tree.Core {
		if tree.Core[i].Key == key {
			tree.Core[i].Value = value
			return
		}
	}
	tree.Core = append(tree.Core, CoreEntry{Key: key, Value: value})
}

func (p *parser) parseEmotions(tree *Tree) error {
	for {
		switch tok := p.peek(); tok.Kind {
		case KindEmotionTag:
			p.next()
			tag, err := parseEmotionTag(tok)
			if err != nil {
				return err
			}
			tree.Emotions = append(tree.Emotions, tag)
		case KindSectionKey, KindSymbolTag:
			// parseCore consumed every leading core entry, so this one
			// sits after an emotion tag.
			return syntaxErrf(tok, "core entry [%s] after emotion section", tok.Literal)
		default:
			return nil
		}
	}
}

func parseEmotionTag(tok Token) (EmotionTag, error) {
	fields := strings.Split(tok.Literal, ":")
	if len(fields) != 3 {
		return EmotionTag{}, &EmotionError{
			Line: tok.Line,
			Col:  tok.Col,
			Msg:  "expected EMOTION:NAME:INTENSITY, got " + strconv.Itoa(len(fields)) + " field(s)",
		}
	}
	name := strings.ToUpper(strings.TrimSpace(fields[1]))
	if name == "" {
		return EmotionTag{}, &EmotionError{Line: tok.Line, Col: tok.Col, Msg: "empty emotion name"}
	}
	raw := strings.TrimSpace(fields[2])
	intensity, err := strconv.Atoi(raw)
	if err != nil {
		// Soft fallback kept from the artifact semantics: Run repairs a
		// non-numeric intensity, Validate rejects it via Raw.
		intensity = 5
	}
	return EmotionTag{Name: name, Intensity: intensity, Raw: raw}, nil
}

func (p *parser) parseNarrative(tree *Tree) error {
	open := p.next()
	if open.Kind != KindBraceOpen {
		switch open.Kind {
		case KindEOF:
			return syntaxErrf(open, "missing narrative block")
		case KindUnknownTag:
			return syntaxErrf(open, "unknown tag [%s]", open.Literal)
		case KindBraceClose:
			return syntaxErrf(open, "unmatched '}'")
		case KindFreeText:
			return syntaxErrf(open, "free text outside narrative block")
		default:
			return syntaxErrf(open, "expected narrative block, found %s", open.Kind)
		}
	}
	text := ""
	if p.peek().Kind == KindFreeText {
		text = p.next().Literal
	}
	if p.peek().Kind != KindBraceClose {
		return syntaxErrf(open, "unmatched '{'")
	}
	p.next()
	if strings.TrimSpace(text) == "" {
		return syntaxErrf(open, "empty narrative block")
	}
	tree.Narrative = text
	return nil
}
