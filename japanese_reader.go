package tossicat

import (
	"strings"

	"github.com/kotaroooo0/gojaconv/jaconv"
	"github.com/kotaroooo0/tossicat/morphology"
)

// JapaneseReader finds the final sound of Japanese words from their kana
// reading. A word ending in ん takes ㄴ and one ending in っ takes ㅅ, as in
// Korean transcription; every other mora ends in a vowel.
type JapaneseReader struct {
	morphology morphology.Morphology
}

func NewJapaneseReader(morphology morphology.Morphology) *JapaneseReader {
	return &JapaneseReader{
		morphology: morphology,
	}
}

func (r *JapaneseReader) FinalSound(word string) (rune, bool, error) {
	tokens := r.morphology.Analyze(word)
	if len(tokens) == 0 {
		return 0, false, nil
	}
	kana := strings.TrimRight(tokens[len(tokens)-1].Kana, "ー")
	if !morphology.IsKana(kana) {
		return 0, false, nil
	}

	hiragana := jaconv.KatakanaToHiragana(kana)
	if strings.HasSuffix(hiragana, "っ") {
		return 'ㅅ', true, nil
	}
	// ヘボン式ローマ字の末尾で判定する
	romaji := jaconv.ToHebon(hiragana)
	switch {
	case strings.HasSuffix(romaji, "n"):
		return 'ㄴ', true, nil
	case strings.HasSuffix(romaji, "a"), strings.HasSuffix(romaji, "i"),
		strings.HasSuffix(romaji, "u"), strings.HasSuffix(romaji, "e"),
		strings.HasSuffix(romaji, "o"):
		return 0, true, nil
	}
	return 0, false, nil
}
