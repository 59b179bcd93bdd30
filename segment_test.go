package voynich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mkLine builds one line of tokens for folio f.
func mkLine(folio, line string, words ...string) []Token {
	out := make([]Token, len(words))
	for i, w := range words {
		out[i] = Token{Text: w, Folio: folio, Line: line, Position: i + 1, Track: TrackA, Transcriber: "H"}
	}
	return out
}

func lines(groups ...[]Token) []Token {
	var out []Token
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func TestSegmentTriggerLinesOpenRecords(t *testing.T) {
	toks := lines(
		mkLine("f1r", "1", "kchol", "daiin"), // k: trigger
		mkLine("f1r", "2", "chedy", "ol"),
		mkLine("f1r", "3", "tchedy", "dar"), // t: trigger
		mkLine("f1r", "4", "olchey"),
	)
	recs := NewSegmenter(GallowsFour).Segment(toks)
	require.Len(t, recs, 2)
	assert.Equal(t, "1", recs[0].StartLine)
	assert.Equal(t, "2", recs[0].EndLine)
	assert.Len(t, recs[0].Tokens, 4)
	assert.Equal(t, "3", recs[1].StartLine)
	assert.Equal(t, "4", recs[1].EndLine)
	assert.Len(t, recs[1].Tokens, 3)
}

func TestSegmentFirstLineNonTrigger(t *testing.T) {
	// The opening record absorbs lines until the first trigger-initial
	// line.
	toks := lines(
		mkLine("f1r", "1", "daiin", "ol"),
		mkLine("f1r", "2", "chedy"),
		mkLine("f1r", "3", "pchedy", "dar"), // p: trigger
	)
	recs := NewSegmenter(GallowsFour).Segment(toks)
	require.Len(t, recs, 2)
	assert.Len(t, recs[0].Tokens, 3)
	assert.Equal(t, "3", recs[1].StartLine)
}

func TestSegmentMidLineGallowsDoesNotSplit(t *testing.T) {
	// Only the first token of a line can open a record.
	toks := lines(
		mkLine("f1r", "1", "kchol"),
		mkLine("f1r", "2", "daiin", "kchedy", "tol"),
	)
	recs := NewSegmenter(GallowsFour).Segment(toks)
	require.Len(t, recs, 1)
	assert.Len(t, recs[0].Tokens, 4)
}

func TestSegmentConservation(t *testing.T) {
	toks := lines(
		mkLine("f1r", "1", "daiin", "ol", "chedy"),
		mkLine("f1r", "2", "kchol"),
		mkLine("f1r", "3", "fchedy", "dar"),
		mkLine("f1r", "4", "otedy", "qokeedy"),
		mkLine("f1r", "5", "pchol"),
	)
	for _, triggers := range []TriggerSet{GallowsFour, GallowsThree} {
		recs := NewSegmenter(triggers).Segment(toks)
		total := 0
		for _, r := range recs {
			total += len(r.Tokens)
		}
		assert.Equal(t, len(toks), total, "triggers %s", triggers)
	}

	// Order must be preserved across the record boundaries.
	recs := NewSegmenter(GallowsFour).Segment(toks)
	var flat []Token
	for _, r := range recs {
		flat = append(flat, r.Tokens...)
	}
	assert.Equal(t, toks, flat)
}

func TestSegmentEmptyFolio(t *testing.T) {
	assert.Empty(t, NewSegmenter(GallowsFour).Segment(nil))
}

func TestSegmentTriggerSetIsInjectable(t *testing.T) {
	// The f-initial line splits under the four-gallows convention but
	// not under the three-gallows one.
	toks := lines(
		mkLine("f1r", "1", "kchol"),
		mkLine("f1r", "2", "fchedy"),
	)
	assert.Len(t, NewSegmenter(GallowsFour).Segment(toks), 2)
	assert.Len(t, NewSegmenter(GallowsThree).Segment(toks), 1)
}

func TestSegmentCorpus(t *testing.T) {
	c := &Corpus{byFolio: make(map[string][]int)}
	for _, tok := range lines(
		mkLine("f1r", "1", "kchol", "daiin"),
		mkLine("f1v", "1", "tchedy"),
	) {
		if _, seen := c.byFolio[tok.Folio]; !seen {
			c.folios = append(c.folios, tok.Folio)
		}
		c.byFolio[tok.Folio] = append(c.byFolio[tok.Folio], len(c.tokens))
		c.tokens = append(c.tokens, tok)
	}

	recs := NewSegmenter(GallowsFour).SegmentCorpus(c)
	require.Len(t, recs, 2)
	assert.Equal(t, "f1r", recs[0].Folio)
	assert.Equal(t, "f1v", recs[1].Folio)
}

func TestTriggerSetContains(t *testing.T) {
	assert.True(t, GallowsFour.Contains('f'))
	assert.False(t, GallowsThree.Contains('f'))
	assert.True(t, NewTriggerSet("kt").Contains('k'))
	assert.False(t, NewTriggerSet("kt").Contains('d'))
}
