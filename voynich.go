// Package voynich provides the token morphology and classification
// engine shared by the Voynich corpus analysis scripts: loading the
// tab-separated transcription into typed tokens, decomposing tokens
// into sub-lexical units by ordered longest-match affix stripping,
// partitioning the resulting middles by Currier-track occurrence, and
// segmenting folio token streams into paragraph records on line-initial
// gallows.
package voynich

// Corpus is an immutable snapshot of the filtered transcription: the
// primary transcriber's tokens in file order, indexed by folio. It is
// built once by LoadCorpus and shared by reference; nothing mutates it
// after construction.
type Corpus struct {
	tokens  []Token
	folios  []string
	byFolio map[string][]int
	skipped int
}

// Len returns the number of tokens in the corpus.
func (c *Corpus) Len() int { return len(c.tokens) }

// Tokens returns the full token sequence in file order. The returned
// slice is shared; callers must not modify it.
func (c *Corpus) Tokens() []Token { return c.tokens }

// Folios returns folio identifiers in first-appearance order.
func (c *Corpus) Folios() []string { return c.folios }

// FolioTokens returns the tokens of one folio in file order, or nil if
// the folio is absent.
func (c *Corpus) FolioTokens(folio string) []Token {
	idx, ok := c.byFolio[folio]
	if !ok {
		return nil
	}
	out := make([]Token, len(idx))
	for i, j := range idx {
		out[i] = c.tokens[j]
	}
	return out
}

// Skipped returns the number of malformed rows dropped during the load.
func (c *Corpus) Skipped() int { return c.skipped }

// TrackTokens returns all tokens belonging to the given track.
func (c *Corpus) TrackTokens(track Track) []Token {
	var out []Token
	for _, tok := range c.tokens {
		if tok.Track == track {
			out = append(out, tok)
		}
	}
	return out
}
