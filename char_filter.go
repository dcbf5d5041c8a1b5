package tossicat

import (
	"sort"
	"strings"
)

type CharFilter interface {
	Filter(string) string
}

type MappingCharFilter struct {
	keys   []string
	mapper map[string]string // key->valueにマッピングする
}

// NewMappingCharFilter replaces every key with its value. Longer keys are
// applied first so that overlapping keys behave deterministically.
func NewMappingCharFilter(mapper map[string]string) *MappingCharFilter {
	keys := make([]string, 0, len(mapper))
	for k := range mapper {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return &MappingCharFilter{keys: keys, mapper: mapper}
}

func (c *MappingCharFilter) Filter(s string) string {
	for _, k := range c.keys {
		s = strings.ReplaceAll(s, k, c.mapper[k])
	}
	return s
}

// BracketCharFilter drops parenthesised text, so "넥슨(코리아)" reads as "넥슨".
// An unclosed bracket drops the rest of the string.
type BracketCharFilter struct{}

func NewBracketCharFilter() BracketCharFilter {
	return BracketCharFilter{}
}

func (f BracketCharFilter) Filter(s string) string {
	var b strings.Builder
	depth := 0
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NumberReadingCharFilter replaces each run of ASCII digits with its
// Sino-Korean reading: "비타500" -> "비타오백".
type NumberReadingCharFilter struct{}

func NewNumberReadingCharFilter() NumberReadingCharFilter {
	return NumberReadingCharFilter{}
}

func (f NumberReadingCharFilter) Filter(s string) string {
	var b strings.Builder
	start := -1
	for i, r := range s {
		if isDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			b.WriteString(ReadNumber(s[start:i]))
			start = -1
		}
		b.WriteRune(r)
	}
	if start >= 0 {
		b.WriteString(ReadNumber(s[start:]))
	}
	return b.String()
}
