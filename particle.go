package tossicat

import (
	"fmt"
	"strings"
)

// Family is the grammatical role shared by the allomorphs of a particle.
type Family int

const (
	Invariant Family = iota
	Neun
	Ka
	Eul
	Wa
	Ro
	Roseo
	Rosseo
	Robuteo
	Ida
	Na
	Nama
	Ni
	Rang
	Ran
	Myeo
	Ko
	Deun
	Deunji
	Deunka
	Yeo
	Raya
	Rado
	Yamalro
)

var familyNames = map[Family]string{
	Invariant: "invariant",
	Neun:      "neun",
	Ka:        "ka",
	Eul:       "eul",
	Wa:        "wa",
	Ro:        "ro",
	Roseo:     "roseo",
	Rosseo:    "rosseo",
	Robuteo:   "robuteo",
	Ida:       "ida",
	Na:        "na",
	Nama:      "nama",
	Ni:        "ni",
	Rang:      "rang",
	Ran:       "ran",
	Myeo:      "myeo",
	Ko:        "ko",
	Deun:      "deun",
	Deunji:    "deunji",
	Deunka:    "deunka",
	Yeo:       "yeo",
	Raya:      "raya",
	Rado:      "rado",
	Yamalro:   "yamalro",
}

func (f Family) String() string {
	if name, ok := familyNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily looks a family up by its String name.
func ParseFamily(name string) (Family, bool) {
	for f, n := range familyNames {
		if n == name {
			return f, true
		}
	}
	return 0, false
}

// Entry holds the surface forms of one particle family.
type Entry struct {
	Family    Family
	Paired    string // used when the final sound is unknown, e.g. "(은)는"
	Vowel     string // after an open syllable
	Consonant string // after a closed syllable
	// VowelLikeFinals lists finals that take the Vowel form anyway, e.g. ㄹ
	// for (으)로: 구글로, 서울로.
	VowelLikeFinals []rune
}

func (e Entry) takesVowelForm(final rune) bool {
	if final == 0 {
		return true
	}
	for _, f := range e.VowelLikeFinals {
		if f == final {
			return true
		}
	}
	return false
}

var defaultEntries = []Entry{
	{Family: Neun, Paired: "(은)는", Vowel: "는", Consonant: "은"},
	{Family: Ka, Paired: "(이)가", Vowel: "가", Consonant: "이"},
	{Family: Eul, Paired: "(을)를", Vowel: "를", Consonant: "을"},
	{Family: Wa, Paired: "(와)과", Vowel: "와", Consonant: "과"},
	{Family: Ro, Paired: "(으)로", Vowel: "로", Consonant: "으로", VowelLikeFinals: []rune{'ㄹ'}},
	{Family: Roseo, Paired: "(으)로서", Vowel: "로서", Consonant: "으로서", VowelLikeFinals: []rune{'ㄹ'}},
	{Family: Rosseo, Paired: "(으)로써", Vowel: "로써", Consonant: "으로써", VowelLikeFinals: []rune{'ㄹ'}},
	{Family: Robuteo, Paired: "(으)로부터", Vowel: "로부터", Consonant: "으로부터", VowelLikeFinals: []rune{'ㄹ'}},
	{Family: Ida, Paired: "(이)다", Vowel: "다", Consonant: "이다"},
	{Family: Na, Paired: "(이)나", Vowel: "나", Consonant: "이나"},
	{Family: Nama, Paired: "(이)나마", Vowel: "나마", Consonant: "이나마"},
	{Family: Ni, Paired: "(이)니", Vowel: "니", Consonant: "이니"},
	{Family: Rang, Paired: "(이)랑", Vowel: "랑", Consonant: "이랑"},
	{Family: Ran, Paired: "(이)란", Vowel: "란", Consonant: "이란"},
	{Family: Myeo, Paired: "(이)며", Vowel: "며", Consonant: "이며"},
	{Family: Ko, Paired: "(이)고", Vowel: "고", Consonant: "이고"},
	{Family: Deun, Paired: "(이)든", Vowel: "든", Consonant: "이든"},
	{Family: Deunji, Paired: "(이)든지", Vowel: "든지", Consonant: "이든지"},
	{Family: Deunka, Paired: "(이)든가", Vowel: "든가", Consonant: "이든가"},
	{Family: Yeo, Paired: "(이)여", Vowel: "여", Consonant: "이여"},
	{Family: Raya, Paired: "(이)라야", Vowel: "라야", Consonant: "이라야"},
	{Family: Rado, Paired: "(이)라도", Vowel: "라도", Consonant: "이라도"},
	{Family: Yamalro, Paired: "(이)야말로", Vowel: "야말로", Consonant: "이야말로"},
}

var defaultInvariants = []string{
	"같이", "까지", "께", "도", "마냥", "마저", "만", "밖에", "보다", "부터", "뿐",
	"에", "에게", "에게로", "에게서", "에다가", "에서", "에서부터", "의", "조차",
	"처럼", "커녕", "하고", "한테",
}

// Table is an immutable particle rule table. The zero value is empty; use
// DefaultTable or NewTable.
type Table struct {
	entries    map[Family]Entry
	spellings  map[string]Family
	invariants map[string]struct{}
}

// NewTable builds a table from entries and invariant particles. Spellings
// must not collide across families.
func NewTable(entries []Entry, invariants []string) (Table, error) {
	t := Table{
		entries:    make(map[Family]Entry, len(entries)),
		spellings:  make(map[string]Family, 2*len(entries)),
		invariants: make(map[string]struct{}, len(invariants)),
	}
	for _, e := range entries {
		if e.Family == Invariant {
			return Table{}, fmt.Errorf("entry %q: invariant particles are listed separately", e.Paired)
		}
		if e.Vowel == "" || e.Consonant == "" {
			return Table{}, fmt.Errorf("entry %v: both forms are required", e.Family)
		}
		if _, ok := t.entries[e.Family]; ok {
			return Table{}, fmt.Errorf("entry %v: duplicated family", e.Family)
		}
		e.VowelLikeFinals = append([]rune(nil), e.VowelLikeFinals...)
		t.entries[e.Family] = e
		for _, s := range []string{e.Vowel, e.Consonant} {
			if f, ok := t.spellings[s]; ok && f != e.Family {
				return Table{}, fmt.Errorf("spelling %q is shared by %v and %v", s, f, e.Family)
			}
			t.spellings[s] = e.Family
		}
	}
	for _, s := range invariants {
		if _, ok := t.spellings[s]; ok {
			return Table{}, fmt.Errorf("invariant %q collides with a variable particle", s)
		}
		t.invariants[s] = struct{}{}
	}
	return t, nil
}

var defaultTable = func() Table {
	t, err := NewTable(defaultEntries, defaultInvariants)
	if err != nil {
		panic(err)
	}
	return t
}()

// DefaultTable returns the built-in particle table.
func DefaultTable() Table {
	return defaultTable
}

// Entry returns the forms of a family.
func (t Table) Entry(f Family) (Entry, bool) {
	e, ok := t.entries[f]
	return e, ok
}

// Lookup finds the entry a plain spelling such as "은" or "으로" belongs to.
func (t Table) Lookup(spelling string) (Entry, bool) {
	if _, ok := t.invariants[spelling]; ok {
		return Entry{Family: Invariant, Paired: spelling, Vowel: spelling, Consonant: spelling}, true
	}
	f, ok := t.spellings[spelling]
	if !ok {
		return Entry{}, false
	}
	return t.entries[f], true
}

// WithVowelLikeFinal returns a copy of t in which final takes the vowel form
// of family f.
func (t Table) WithVowelLikeFinal(f Family, final rune) (Table, error) {
	e, ok := t.entries[f]
	if !ok {
		return Table{}, fmt.Errorf("family %v is not in the table", f)
	}
	if _, ok := indexOf(finals[1:], final); !ok {
		return Table{}, fmt.Errorf("%q is not a final consonant", final)
	}
	if e.takesVowelForm(final) {
		return t, nil
	}

	entries := make(map[Family]Entry, len(t.entries))
	for k, v := range t.entries {
		entries[k] = v
	}
	e.VowelLikeFinals = append(append([]rune(nil), e.VowelLikeFinals...), final)
	entries[f] = e
	return Table{
		entries:    entries,
		spellings:  t.spellings,
		invariants: t.invariants,
	}, nil
}

// Particle is a parsed particle request. Specs such as "(은)는" or "은(는)"
// are Ambiguous: Optional holds the parenthesised part and Base the rest.
type Particle struct {
	Spec      string
	Entry     Entry
	Ambiguous bool
	Optional  string
	Base      string
}

// Parse resolves a particle spec against the table.
func (t Table) Parse(spec string) (Particle, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return Particle{}, &UnknownParticleError{Spec: spec}
	}
	if !strings.ContainsAny(s, "()") {
		e, ok := t.Lookup(s)
		if !ok {
			return Particle{}, &UnknownParticleError{Spec: spec}
		}
		return Particle{Spec: spec, Entry: e, Base: s}, nil
	}

	optional, base, ok := splitParenthesised(s)
	if !ok {
		return Particle{}, &UnknownParticleError{Spec: spec}
	}
	e, ok := t.Lookup(base)
	if !ok || e.Family == Invariant {
		return Particle{}, &UnknownParticleError{Spec: spec}
	}
	// "(은)는" pairs two allomorphs, "(으)로" prefixes one.
	if o, ok := t.Lookup(optional); !ok || o.Family != e.Family {
		if p, ok := t.Lookup(optional + base); !ok || p.Family != e.Family {
			return Particle{}, &UnknownParticleError{Spec: spec}
		}
	}
	return Particle{Spec: spec, Entry: e, Ambiguous: true, Optional: optional, Base: base}, nil
}

// splitParenthesised splits "(X)Y" or "X(Y)" into X-or-Y parts. Exactly one
// non-empty group at either end is accepted.
func splitParenthesised(s string) (optional, base string, ok bool) {
	open := strings.IndexByte(s, '(')
	closing := strings.IndexByte(s, ')')
	if open < 0 || closing < open ||
		strings.Count(s, "(") != 1 || strings.Count(s, ")") != 1 {
		return "", "", false
	}
	optional = s[open+1 : closing]
	switch {
	case open == 0:
		base = s[closing+1:]
	case closing == len(s)-1:
		base = s[:open]
	default:
		return "", "", false
	}
	if optional == "" || base == "" {
		return "", "", false
	}
	return optional, base, true
}
