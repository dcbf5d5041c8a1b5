package tossicat

const (
	syllableBase = '가'
	syllableLast = '힣'

	medialCount = 21
	finalCount  = 28
)

var initials = [...]rune{
	'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ',
	'ㅌ', 'ㅍ', 'ㅎ',
}

var medials = [...]rune{
	'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ',
	'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ',
}

// finals[0] is the empty final.
var finals = [...]rune{
	0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ',
	'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
}

// Syllable is a precomposed Hangul syllable split into its jamo.
// Final is 0 for an open syllable.
type Syllable struct {
	Initial rune
	Medial  rune
	Final   rune
}

func (s Syllable) HasFinal() bool {
	return s.Final != 0
}

// IsHangeul reports whether r is a precomposed Hangul syllable.
func IsHangeul(r rune) bool {
	return r >= syllableBase && r <= syllableLast
}

// SplitPhonemes decomposes a Hangul syllable. ok is false when r is not one.
func SplitPhonemes(r rune) (s Syllable, ok bool) {
	if !IsHangeul(r) {
		return Syllable{}, false
	}
	offset := int(r - syllableBase)
	return Syllable{
		Initial: initials[offset/(medialCount*finalCount)],
		Medial:  medials[(offset/finalCount)%medialCount],
		Final:   finals[offset%finalCount],
	}, true
}

// JoinPhonemes composes jamo back into a syllable. ok is false when the jamo
// do not form a valid syllable.
func JoinPhonemes(s Syllable) (r rune, ok bool) {
	i, ok := indexOf(initials[:], s.Initial)
	if !ok {
		return 0, false
	}
	m, ok := indexOf(medials[:], s.Medial)
	if !ok {
		return 0, false
	}
	f, ok := indexOf(finals[:], s.Final)
	if !ok {
		return 0, false
	}
	return syllableBase + rune((i*medialCount+m)*finalCount+f), true
}

func indexOf(jamo []rune, r rune) (int, bool) {
	for i, j := range jamo {
		if j == r {
			return i, true
		}
	}
	return 0, false
}
