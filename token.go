package voynich

// Track identifies which of the two statistically distinct sub-corpora
// (Currier's language A and language B) a token belongs to.
type Track rune

const (
	TrackA     Track = 'A'
	TrackB     Track = 'B'
	TrackOther Track = '-'
)

// ParseTrack maps the corpus-track field of a transcription row to a Track.
func ParseTrack(s string) Track {
	switch s {
	case "A", "a":
		return TrackA
	case "B", "b":
		return TrackB
	default:
		return TrackOther
	}
}

func (t Track) String() string {
	switch t {
	case TrackA:
		return "A"
	case TrackB:
		return "B"
	default:
		return "other"
	}
}

// Token is one occurrence of a word in the transcription. Tokens are
// created once at load time and never mutated.
type Token struct {
	// Text is the normalized transliterated word.
	Text string
	// Folio is the document unit the token appears on (e.g. "f1v").
	Folio string
	// Line is the line identifier within the folio.
	Line string
	// Position is the 1-based position of the token within its line.
	Position int
	// Track is the sub-corpus the token belongs to.
	Track Track
	// Section is the manuscript section label (herbal, astro, ...).
	Section string
	// Placement is the placement-zone label (paragraph, label, ...).
	Placement string
	// Transcriber is the transcription-source label of the row.
	Transcriber string
}

// Morphology is the decomposition of one token's text into ordered
// sub-lexical units. Absent parts are empty strings.
type Morphology struct {
	Articulator string `json:"articulator,omitempty"`
	Prefix      string `json:"prefix,omitempty"`
	Middle      string `json:"middle,omitempty"`
	Suffix      string `json:"suffix,omitempty"`
}

// Parts returns the non-empty units in decomposition order.
func (m Morphology) Parts() []string {
	var out []string
	for _, p := range []string{m.Articulator, m.Prefix, m.Middle, m.Suffix} {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Join concatenates the non-empty units in order.
func (m Morphology) Join() string {
	s := ""
	for _, p := range m.Parts() {
		s += p
	}
	return s
}

// Record is a contiguous run of tokens within one folio, bounded by the
// line-initial gallows rule. The concatenation of a folio's records, in
// order, reproduces the folio's token sequence exactly.
type Record struct {
	Folio     string  `json:"folio"`
	StartLine string  `json:"start_line"`
	EndLine   string  `json:"end_line"`
	Tokens    []Token `json:"-"`
}
