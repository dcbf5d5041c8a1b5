package tossicat

// Analyzer turns a word into the text its final sound is read from by running
// char filters in order.
type Analyzer struct {
	charFilters []CharFilter
}

func NewAnalyzer(charFilters []CharFilter) Analyzer {
	return Analyzer{
		charFilters: charFilters,
	}
}

func (a Analyzer) Analyze(s string) string {
	for _, c := range a.charFilters {
		s = c.Filter(s)
	}
	return s
}
