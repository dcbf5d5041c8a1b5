// Package tossicat attaches Korean postposition particles (tossi) to words,
// choosing the allomorph that matches the word's final sound: 은/는, 이/가,
// 을/를, 와/과, (으)로 and the other (이)-prefixed particles.
//
//	tossicat.Postfix("집", "으로")                   // "집으로"
//	tossicat.Transform("토씨캣", "(은)는")            // "토씨캣", "은"
//	tossicat.ModifySentence("{커피, 을} 좋아해요")   // "커피를 좋아해요"
//
// Words are read the way they are pronounced: bracketed text is ignored and
// numbers are read out ("비타500" ends in 백). Words without Hangul fall back
// to the paired spelling ("google(을)를") unless a Reader knows them.
package tossicat

import (
	"go.uber.org/zap"
)

type options struct {
	table       Table
	charFilters []CharFilter
	readers     []Reader
	maxLength   int
	logger      *zap.Logger
}

type Option func(*options)

func WithTable(table Table) Option {
	return func(o *options) {
		o.table = table
	}
}

// WithCharFilters runs filters before the default bracket and number filters.
func WithCharFilters(filters ...CharFilter) Option {
	return func(o *options) {
		o.charFilters = append(o.charFilters, filters...)
	}
}

// WithReaders consults readers, in order, for words without Hangul.
func WithReaders(readers ...Reader) Option {
	return func(o *options) {
		o.readers = append(o.readers, readers...)
	}
}

// WithMaxWordLength limits words to n characters; n <= 0 removes the limit.
func WithMaxWordLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Engine is safe for concurrent use.
type Engine struct {
	decomposer *Decomposer
	resolver   *Resolver
	rewriter   *Rewriter
}

func New(opts ...Option) *Engine {
	o := options{
		table:     DefaultTable(),
		maxLength: DefaultMaxWordLength,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	filters := append(append([]CharFilter(nil), o.charFilters...), DefaultCharFilters()...)
	decomposer := NewDecomposer(filters, o.readers, o.maxLength, o.logger.Named("decomposer"))
	resolver := NewResolver(o.table, o.logger.Named("resolver"))
	return &Engine{
		decomposer: decomposer,
		resolver:   resolver,
		rewriter:   NewRewriter(decomposer, resolver),
	}
}

func (e *Engine) Decompose(word string) (Decomposition, error) {
	return e.decomposer.Decompose(word)
}

// Resolve checks the particle first, then the word.
func (e *Engine) Resolve(word, particle string) (Resolution, error) {
	p, err := e.resolver.Parse(particle)
	if err != nil {
		return Resolution{}, err
	}
	dec, err := e.decomposer.Decompose(word)
	if err != nil {
		return Resolution{}, err
	}
	return e.resolver.Resolve(dec, p), nil
}

// Postfix returns word followed by the particle form that fits it.
func (e *Engine) Postfix(word, particle string) (string, error) {
	r, err := e.Resolve(word, particle)
	if err != nil {
		return "", err
	}
	return word + r.Form, nil
}

// Pick returns only the particle form that fits word.
func (e *Engine) Pick(word, particle string) (string, error) {
	r, err := e.Resolve(word, particle)
	if err != nil {
		return "", err
	}
	return r.Form, nil
}

// Transform returns word and its particle separately so that they can be
// styled apart; joined they equal Postfix(word, particle).
func (e *Engine) Transform(word, particle string) (string, string, error) {
	r, err := e.Resolve(word, particle)
	if err != nil {
		return "", "", err
	}
	return word, r.Form, nil
}

// ModifySentence rewrites every `{word, particle}` placeholder in template.
func (e *Engine) ModifySentence(template string) (string, error) {
	return e.rewriter.Rewrite(template)
}

// Verify reports whether Postfix would succeed for word and particle.
func (e *Engine) Verify(word, particle string) error {
	_, err := e.Resolve(word, particle)
	return err
}

var defaultEngine = New()

func Postfix(word, particle string) (string, error) {
	return defaultEngine.Postfix(word, particle)
}

func Pick(word, particle string) (string, error) {
	return defaultEngine.Pick(word, particle)
}

func Transform(word, particle string) (string, string, error) {
	return defaultEngine.Transform(word, particle)
}

func ModifySentence(template string) (string, error) {
	return defaultEngine.ModifySentence(template)
}

func Verify(word, particle string) error {
	return defaultEngine.Verify(word, particle)
}
