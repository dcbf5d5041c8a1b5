package tossicat

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
)

// DefaultMaxWordLength is the longest word, in characters, a Decomposer accepts
// unless configured otherwise.
const DefaultMaxWordLength = 50

// Decomposition describes the final sound of a word. Final is the trailing
// consonant jamo, 0 when the word ends in a vowel. Known is false when the
// word has no Hangul and no Reader could tell its final sound.
type Decomposition struct {
	Letter   rune // last significant syllable, 0 when a Reader decided
	Syllable Syllable
	Final    rune
	Known    bool
}

func (d Decomposition) HasFinalConsonant() bool {
	return d.Final != 0
}

// LastVowel is the medial of the last syllable, 0 when unknown.
func (d Decomposition) LastVowel() rune {
	return d.Syllable.Medial
}

func (d Decomposition) LastConsonant() (rune, bool) {
	return d.Final, d.Final != 0
}

// Decomposer finds the syllable that decides the particle of a word.
type Decomposer struct {
	analyzer  Analyzer
	readers   []Reader
	maxLength int
	logger    *zap.Logger
}

// NewDecomposer applies charFilters in order before looking at the word and
// asks readers in order about words without Hangul. maxLength <= 0 disables
// the length check.
func NewDecomposer(charFilters []CharFilter, readers []Reader, maxLength int, logger *zap.Logger) *Decomposer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Decomposer{
		analyzer:  NewAnalyzer(charFilters),
		readers:   readers,
		maxLength: maxLength,
		logger:    logger,
	}
}

// DefaultCharFilters returns the filters every Engine runs: bracket removal
// followed by number reading.
func DefaultCharFilters() []CharFilter {
	return []CharFilter{NewBracketCharFilter(), NewNumberReadingCharFilter()}
}

func (d *Decomposer) Decompose(word string) (Decomposition, error) {
	if strings.TrimSpace(word) == "" {
		return Decomposition{}, &InvalidInputError{Word: word, Reason: "empty word"}
	}
	if d.maxLength > 0 && utf8.RuneCountInString(word) > d.maxLength {
		return Decomposition{}, &InvalidInputError{
			Word:   word,
			Reason: fmt.Sprintf("longer than %d characters", d.maxLength),
		}
	}

	s := d.analyzer.Analyze(word)

	runes := []rune(s)
	for i := len(runes) - 1; i >= 0; i-- {
		if syl, ok := SplitPhonemes(runes[i]); ok {
			return Decomposition{Letter: runes[i], Syllable: syl, Final: syl.Final, Known: true}, nil
		}
	}

	if strings.IndexFunc(s, unicode.IsLetter) < 0 {
		return Decomposition{}, &InvalidInputError{Word: word, Reason: "no letters or digits"}
	}

	foreign := strings.TrimSpace(s)
	for i, r := range d.readers {
		final, ok, err := r.FinalSound(foreign)
		if err != nil {
			return Decomposition{}, fmt.Errorf("read %q: %w", foreign, err)
		}
		if ok {
			d.logger.Debug("final sound from reader",
				zap.String("word", word),
				zap.Int("reader", i),
				zap.Bool("final_consonant", final != 0))
			return Decomposition{Final: final, Known: true}, nil
		}
	}
	d.logger.Debug("final sound unknown", zap.String("word", word))
	return Decomposition{}, nil
}
