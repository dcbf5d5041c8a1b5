package tossicat

import "go.uber.org/zap"

// Resolution is the allomorph chosen for a word. Undecided is set when the
// final sound was unknown and Form is the paired spelling such as "(은)는".
type Resolution struct {
	Family    Family
	Form      string
	Undecided bool
}

type Resolver struct {
	table  Table
	logger *zap.Logger
}

func NewResolver(table Table, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		table:  table,
		logger: logger,
	}
}

func (r *Resolver) Table() Table {
	return r.table
}

func (r *Resolver) Parse(spec string) (Particle, error) {
	return r.table.Parse(spec)
}

// Resolve picks the form of p that follows a word decomposed as dec.
func (r *Resolver) Resolve(dec Decomposition, p Particle) Resolution {
	e := p.Entry
	switch {
	case e.Family == Invariant:
		return Resolution{Family: Invariant, Form: e.Vowel}
	case !dec.Known:
		r.logger.Debug("paired form used", zap.Stringer("family", e.Family))
		return Resolution{Family: e.Family, Form: e.Paired, Undecided: true}
	case e.takesVowelForm(dec.Final):
		return Resolution{Family: e.Family, Form: e.Vowel}
	default:
		return Resolution{Family: e.Family, Form: e.Consonant}
	}
}
