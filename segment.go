package voynich

import "strings"

// TriggerSet is the set of line-initial letters that open a new record.
// The historical scripts disagree on whether the fourth gallows belongs
// in it, so the choice is explicit: a Segmenter must be given one.
type TriggerSet struct {
	runes string
}

// NewTriggerSet builds a trigger set from the letters of s.
func NewTriggerSet(s string) TriggerSet {
	return TriggerSet{runes: s}
}

// Both historical trigger conventions, named so callers state which one
// they mean. Neither is canonical.
var (
	// GallowsFour is the full gallows class k t p f.
	GallowsFour = NewTriggerSet("ktpf")
	// GallowsThree is the k t p convention used by the older scripts,
	// which treat f as too rare to anchor paragraphs.
	GallowsThree = NewTriggerSet("ktp")
)

// Contains reports whether r is in the set.
func (ts TriggerSet) Contains(r rune) bool {
	return strings.ContainsRune(ts.runes, r)
}

// String returns the set's letters.
func (ts TriggerSet) String() string { return ts.runes }

// Segmenter groups a folio's ordered token stream into records
// (paragraphs). A new record begins whenever the first token of a line
// starts with a trigger letter; all other lines append to the open
// record. Segmentation conserves tokens: no token is dropped,
// duplicated, or reordered.
type Segmenter struct {
	triggers TriggerSet
}

// NewSegmenter returns a segmenter using the given trigger set.
func NewSegmenter(triggers TriggerSet) *Segmenter {
	return &Segmenter{triggers: triggers}
}

// Triggers returns the segmenter's trigger set.
func (s *Segmenter) Triggers() TriggerSet { return s.triggers }

// Segment splits tokens (one folio, line order ascending, line-internal
// order preserved) into records. A folio with zero tokens yields zero
// records. When the first line does not start with a trigger, the
// opening record absorbs lines until the first trigger-initial line.
func (s *Segmenter) Segment(tokens []Token) []Record {
	if len(tokens) == 0 {
		return nil
	}

	var records []Record
	var open *Record
	currentLine := ""

	flush := func() {
		if open != nil && len(open.Tokens) > 0 {
			records = append(records, *open)
		}
		open = nil
	}

	for _, tok := range tokens {
		lineStart := tok.Line != currentLine
		currentLine = tok.Line

		if lineStart && s.startsRecord(tok) {
			flush()
		}
		if open == nil {
			open = &Record{Folio: tok.Folio, StartLine: tok.Line}
		}
		open.Tokens = append(open.Tokens, tok)
		open.EndLine = tok.Line
	}
	flush()
	return records
}

// startsRecord reports whether a line-initial token opens a new record.
func (s *Segmenter) startsRecord(tok Token) bool {
	for _, r := range tok.Text {
		return s.triggers.Contains(r)
	}
	return false
}

// SegmentCorpus segments every folio of the corpus, in folio order.
func (s *Segmenter) SegmentCorpus(c *Corpus) []Record {
	var out []Record
	for _, folio := range c.Folios() {
		out = append(out, s.Segment(c.FolioTokens(folio))...)
	}
	return out
}
