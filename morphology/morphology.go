package morphology

import "unicode"

// Morphology splits Japanese text into terms with their katakana readings.
type Morphology interface {
	Analyze(string) []MorphologyToken
}

type MorphologyToken struct {
	Term string
	Kana string
}

func NewMorphologyToken(term, kana string) MorphologyToken {
	return MorphologyToken{
		Term: term,
		Kana: kana,
	}
}

// IsKana reports whether s is a non-empty run of hiragana, katakana and
// prolonged sound marks. Unknown words come back from the tokenizer with
// their surface as the reading, so this tells real readings apart.
func IsKana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r == 'ー' {
			continue
		}
		if !unicode.In(r, unicode.Hiragana, unicode.Katakana) {
			return false
		}
	}
	return true
}
