package voynich

// FolioStats is the per-folio summary consumed by the downstream
// aggregation scripts: size, record structure, character-class ratios
// and affix-family distributions of the decomposed tokens.
type FolioStats struct {
	Folio       string `json:"folio"`
	TokenCount  int    `json:"token_count"`
	RecordCount int    `json:"record_count"`

	// GallowsDensity is the share of gallows letters among all letters
	// on the folio.
	GallowsDensity float64 `json:"gallows_density"`

	// PrefixCounts and SuffixCounts hold the affix-family distribution
	// of the folio's decomposed tokens. Articulators count under their
	// own family.
	ArticulatorCounts map[string]int `json:"articulator_counts"`
	PrefixCounts      map[string]int `json:"prefix_counts"`
	SuffixCounts      map[string]int `json:"suffix_counts"`

	// ClassCounts tallies classified middles by class label
	// ("RI", "PP", "UNCLASSIFIED").
	ClassCounts map[string]int `json:"class_counts"`

	// EmptyMiddles counts tokens whose decomposition left no middle;
	// they are excluded from ClassCounts.
	EmptyMiddles int `json:"empty_middles"`
}

// Aggregator computes folio summaries from the decomposition and
// classification layers. The classifier may be nil, in which case
// ClassCounts is left empty.
type Aggregator struct {
	analyzer   *Analyzer
	classifier *MiddleClassifier
	segmenter  *Segmenter
}

// NewAggregator builds an aggregator over the given components.
func NewAggregator(a *Analyzer, mc *MiddleClassifier, s *Segmenter) *Aggregator {
	return &Aggregator{analyzer: a, classifier: mc, segmenter: s}
}

// FolioStats summarizes one folio's token stream.
func (ag *Aggregator) FolioStats(folio string, tokens []Token) FolioStats {
	st := FolioStats{
		Folio:             folio,
		TokenCount:        len(tokens),
		RecordCount:       len(ag.segmenter.Segment(tokens)),
		ArticulatorCounts: make(map[string]int),
		PrefixCounts:      make(map[string]int),
		SuffixCounts:      make(map[string]int),
		ClassCounts:       make(map[string]int),
	}

	letters, gallows := 0, 0
	for _, tok := range tokens {
		for _, r := range tok.Text {
			letters++
			if IsGallows(r) {
				gallows++
			}
		}

		m := ag.analyzer.Decompose(tok.Text)
		if m.Articulator != "" {
			st.ArticulatorCounts[m.Articulator]++
		}
		if m.Prefix != "" {
			st.PrefixCounts[m.Prefix]++
		}
		if m.Suffix != "" {
			st.SuffixCounts[m.Suffix]++
		}
		if m.Middle == "" {
			st.EmptyMiddles++
			continue
		}
		if ag.classifier != nil {
			st.ClassCounts[ag.classifier.Classify(m.Middle).String()]++
		}
	}
	if letters > 0 {
		st.GallowsDensity = float64(gallows) / float64(letters)
	}
	return st
}

// CorpusStats summarizes every folio of the corpus, in first-appearance
// order.
func (ag *Aggregator) CorpusStats(c *Corpus) []FolioStats {
	folios := c.Folios()
	out := make([]FolioStats, 0, len(folios))
	for _, folio := range folios {
		out = append(out, ag.FolioStats(folio, c.FolioTokens(folio)))
	}
	return out
}
