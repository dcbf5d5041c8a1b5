package tossicat

import (
	"fmt"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Reader tells the final sound of a word that has no Hangul in it, such as a
// foreign name. final is the trailing consonant jamo or 0 for a vowel; ok is
// false when the reader does not know the word.
type Reader interface {
	FinalSound(word string) (final rune, ok bool, err error)
}

// MapReader looks words up in an in-memory dictionary of Hangul readings,
// e.g. "google" -> "구글". Keys are case-insensitive.
type MapReader struct {
	finals map[string]rune
}

func NewMapReader(readings map[string]string) (*MapReader, error) {
	finals := make(map[string]rune, len(readings))
	for word, reading := range readings {
		final, ok := finalOfReading(reading)
		if !ok {
			return nil, fmt.Errorf("reading %q of %q has no Hangul syllable", reading, word)
		}
		finals[strings.ToLower(word)] = final
	}
	return &MapReader{finals: finals}, nil
}

func (r *MapReader) FinalSound(word string) (rune, bool, error) {
	final, ok := r.finals[strings.ToLower(word)]
	return final, ok, nil
}

// finalOfReading returns the final of the last Hangul syllable in reading.
func finalOfReading(reading string) (rune, bool) {
	runes := []rune(reading)
	for i := len(runes) - 1; i >= 0; i-- {
		if syl, ok := SplitPhonemes(runes[i]); ok {
			return syl.Final, true
		}
	}
	return 0, false
}

type cachedSound struct {
	final rune
	ok    bool
}

// CachedReader memoizes another Reader, misses included. Errors are not cached.
type CachedReader struct {
	reader Reader
	cache  *gocache.Cache
}

func NewCachedReader(reader Reader, ttl, cleanupInterval time.Duration) *CachedReader {
	return &CachedReader{
		reader: reader,
		cache:  gocache.New(ttl, cleanupInterval),
	}
}

func (r *CachedReader) FinalSound(word string) (rune, bool, error) {
	if v, found := r.cache.Get(word); found {
		s := v.(cachedSound)
		return s.final, s.ok, nil
	}
	final, ok, err := r.reader.FinalSound(word)
	if err != nil {
		return 0, false, err
	}
	r.cache.Set(word, cachedSound{final: final, ok: ok}, gocache.DefaultExpiration)
	return final, ok, nil
}

// Flush drops every cached entry.
func (r *CachedReader) Flush() {
	r.cache.Flush()
}
