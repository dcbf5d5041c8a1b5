package tossicat

import (
	"fmt"
	"strings"
)

type TokenKind int

const (
	TextToken TokenKind = iota
	PlaceholderToken
)

// Token is a piece of a sentence template. Start and End are byte offsets of
// the raw span. Text holds literal text with escapes resolved; Word and
// Particle are set for placeholders.
type Token struct {
	Kind     TokenKind
	Text     string
	Word     string
	Particle string
	Start    int
	End      int
}

type TokenStream struct {
	Tokens []Token
}

func NewTokenStream(tokens []Token) TokenStream {
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

// Placeholders returns the placeholder tokens in order.
func (ts TokenStream) Placeholders() []Token {
	r := make([]Token, 0, ts.Size())
	for _, t := range ts.Tokens {
		if t.Kind == PlaceholderToken {
			r = append(r, t)
		}
	}
	return r
}

type scanState int

const (
	outside scanState = iota
	inWord
	inParticle
)

// Scan splits a template into text and `{word, particle}` placeholders.
// Literal braces are written doubled: "{{" and "}}".
func Scan(template string) (TokenStream, error) {
	var (
		tokens    []Token
		text      strings.Builder
		textStart int
		open      int // offset of the '{' of the current placeholder
		comma     int
		state     = outside
	)
	fail := func(start, end int, reason string) (TokenStream, error) {
		return TokenStream{}, &TemplateSyntaxError{Template: template, Start: start, End: end, Reason: reason}
	}
	flushText := func(end int) {
		if end > textStart {
			tokens = append(tokens, Token{Kind: TextToken, Text: text.String(), Start: textStart, End: end})
		}
		text.Reset()
	}

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch state {
		case outside:
			switch {
			case c == '{' && i+1 < len(template) && template[i+1] == '{':
				text.WriteByte('{')
				i++
			case c == '}' && i+1 < len(template) && template[i+1] == '}':
				text.WriteByte('}')
				i++
			case c == '{':
				flushText(i)
				open = i
				state = inWord
			case c == '}':
				return fail(i, i+1, "unmatched closing brace")
			default:
				text.WriteByte(c)
			}
		case inWord:
			switch c {
			case ',':
				comma = i
				state = inParticle
			case '{':
				return fail(open, i+1, "nested placeholder")
			case '}':
				return fail(open, i+1, "missing comma between word and particle")
			}
		case inParticle:
			switch c {
			case '}':
				word := strings.TrimSpace(template[open+1 : comma])
				particle := strings.TrimSpace(template[comma+1 : i])
				if word == "" {
					return fail(open, i+1, "empty word")
				}
				if particle == "" {
					return fail(open, i+1, "empty particle")
				}
				tokens = append(tokens, Token{
					Kind:     PlaceholderToken,
					Text:     template[open : i+1],
					Word:     word,
					Particle: particle,
					Start:    open,
					End:      i + 1,
				})
				textStart = i + 1
				state = outside
			case '{':
				return fail(open, i+1, "nested placeholder")
			case ',':
				return fail(open, i+1, "more than one comma")
			}
		}
	}
	if state != outside {
		return fail(open, len(template), "unclosed placeholder")
	}
	flushText(len(template))
	return NewTokenStream(tokens), nil
}

// Rewriter replaces placeholders with the word followed by its particle.
type Rewriter struct {
	decomposer *Decomposer
	resolver   *Resolver
}

func NewRewriter(decomposer *Decomposer, resolver *Resolver) *Rewriter {
	return &Rewriter{
		decomposer: decomposer,
		resolver:   resolver,
	}
}

func (r *Rewriter) Rewrite(template string) (string, error) {
	ts, err := Scan(template)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(template))
	for _, t := range ts.Tokens {
		if t.Kind == TextToken {
			b.WriteString(t.Text)
			continue
		}
		p, err := r.resolver.Parse(t.Particle)
		if err != nil {
			return "", fmt.Errorf("placeholder at %d: %w", t.Start, err)
		}
		dec, err := r.decomposer.Decompose(t.Word)
		if err != nil {
			return "", fmt.Errorf("placeholder at %d: %w", t.Start, err)
		}
		b.WriteString(t.Word)
		b.WriteString(r.resolver.Resolve(dec, p).Form)
	}
	return b.String(), nil
}
