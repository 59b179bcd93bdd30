package voynich

// Analyzer decomposes token text into (articulator, prefix, middle,
// suffix) by ordered longest-match stripping. It is stateless: the same
// input always yields the same Morphology, so callers may memoize by
// text value.
type Analyzer struct {
	articulators AffixTable
	prefixes     AffixTable
	suffixes     AffixTable
}

// NewAnalyzer builds an analyzer from curated affix lists. The
// articulator list is the fixed membership subset of the prefix table;
// list order is the equal-length tie-break (see AffixTable).
func NewAnalyzer(articulators, prefixes, suffixes []string) *Analyzer {
	return &Analyzer{
		articulators: NewAffixTable(articulators),
		prefixes:     NewAffixTable(prefixes),
		suffixes:     NewAffixTable(suffixes),
	}
}

// DefaultAnalyzer returns an analyzer over the curated default lists.
func DefaultAnalyzer() *Analyzer {
	return NewAnalyzer(defaultArticulators, defaultPrefixes, defaultSuffixes)
}

// Decompose splits text into its sub-lexical units. The stripping order
// is articulator, prefix, suffix; each strip is greedy (longest match),
// irrevocable, and only taken when it leaves a non-empty remainder.
// Whatever remains after all three is the middle, which may be empty.
// Every input has a defined decomposition: a token matching no affix
// comes back with middle equal to the whole text, and the empty string
// yields the zero Morphology.
func (a *Analyzer) Decompose(text string) Morphology {
	var m Morphology
	rest := text

	if art, r, ok := a.articulators.stripPrefix(rest); ok {
		m.Articulator = art
		rest = r
	}
	if pre, r, ok := a.prefixes.stripPrefix(rest); ok {
		m.Prefix = pre
		rest = r
	}
	if suf, r, ok := a.suffixes.stripSuffix(rest); ok {
		m.Suffix = suf
		rest = r
	}
	m.Middle = rest
	return m
}

// Middle is a convenience for Decompose(text).Middle.
func (a *Analyzer) Middle(text string) string {
	return a.Decompose(text).Middle
}
