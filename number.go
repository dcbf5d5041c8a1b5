package tossicat

import "strings"

var digitReadings = [...]string{"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}

// units inside a group of four digits, indexed by position from the right
var placeUnits = [...]string{"", "십", "백", "천"}

// myriad units, one per group of four digits
var groupUnits = [...]string{"", "만", "억", "조", "경", "해", "자", "양", "구", "간", "정", "재", "극"}

// ReadNumber returns the Sino-Korean reading of a run of ASCII digits, e.g.
// "500" -> "오백", "10000" -> "만", "1004" -> "천사". Digits beyond the largest
// supported unit are read one by one. Non-digit input yields "".
func ReadNumber(digits string) string {
	for _, r := range digits {
		if !isDigit(r) {
			return ""
		}
	}
	if digits == "" {
		return ""
	}
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return digitReadings[0]
	}
	if len(trimmed) > 4*len(groupUnits) {
		return readDigitByDigit(trimmed)
	}

	var groups []string
	for end := len(trimmed); end > 0; end -= 4 {
		start := end - 4
		if start < 0 {
			start = 0
		}
		groups = append(groups, trimmed[start:end])
	}

	var b strings.Builder
	for g := len(groups) - 1; g >= 0; g-- {
		reading := readGroup(groups[g])
		if reading == "" {
			continue
		}
		// 만 is read without a leading 일, larger units keep it (일억).
		if g == 1 && reading == digitReadings[1] {
			reading = ""
		}
		b.WriteString(reading)
		b.WriteString(groupUnits[g])
	}
	return b.String()
}

func readGroup(group string) string {
	var b strings.Builder
	for i, r := range group {
		d := int(r - '0')
		if d == 0 {
			continue
		}
		place := len(group) - 1 - i
		if d != 1 || place == 0 {
			b.WriteString(digitReadings[d])
		}
		b.WriteString(placeUnits[place])
	}
	return b.String()
}

func readDigitByDigit(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		b.WriteString(digitReadings[r-'0'])
	}
	return b.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

