package voynich

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultTranscriber is the designated primary transcription track.
// Only rows from one transcriber are ever materialized; mixing tracks
// double-counts every word that appears in more than one transcription.
const DefaultTranscriber = "H"

// Transcription file header names. Fields are bound by header name at
// load time, never by positional index: the file schema has gained and
// reordered columns across corpus releases.
const (
	colWord        = "word"
	colFolio       = "folio"
	colLine        = "line"
	colPosition    = "position"
	colTrack       = "language"
	colSection     = "section"
	colPlacement   = "placement"
	colTranscriber = "transcriber"
)

// requiredColumns must all be present in the header row.
var requiredColumns = []string{colWord, colFolio, colLine, colTrack, colTranscriber}

// SchemaError reports required columns missing from the header row.
// It is fatal: no rows can be trusted when the schema is wrong.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "transcription header missing required columns: " + strings.Join(e.Missing, ", ")
}

// IsSchemaError reports whether err is (or wraps) a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// columnIndex holds the resolved header-name → field-index binding for
// one file. Optional columns are -1 when absent.
type columnIndex struct {
	word        int
	folio       int
	line        int
	position    int
	track       int
	section     int
	placement   int
	transcriber int
}

// minFields returns the smallest row width that still covers every
// bound column.
func (c columnIndex) minFields() int {
	max := 0
	for _, i := range []int{c.word, c.folio, c.line, c.position, c.track, c.section, c.placement, c.transcriber} {
		if i+1 > max {
			max = i + 1
		}
	}
	return max
}

// resolveColumns binds header names to field indices.
func resolveColumns(header []string) (columnIndex, error) {
	byName := make(map[string]int, len(header))
	for i, h := range header {
		byName[strings.ToLower(strings.TrimSpace(unquote(h)))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := byName[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, errors.WithStack(&SchemaError{Missing: missing})
	}

	get := func(name string) int {
		if i, ok := byName[name]; ok {
			return i
		}
		return -1
	}
	return columnIndex{
		word:        get(colWord),
		folio:       get(colFolio),
		line:        get(colLine),
		position:    get(colPosition),
		track:       get(colTrack),
		section:     get(colSection),
		placement:   get(colPlacement),
		transcriber: get(colTranscriber),
	}, nil
}

// unquote strips the double-quote wrapping convention used for fields
// that contain literal tabs or leading spaces.
func unquote(f string) string {
	if len(f) >= 2 && f[0] == '"' && f[len(f)-1] == '"' {
		return f[1 : len(f)-1]
	}
	return f
}

// LoadOptions controls filtering during a corpus load. The zero value
// selects the defaults.
type LoadOptions struct {
	// Transcriber is the primary transcription track to keep.
	// Empty means DefaultTranscriber.
	Transcriber string
}

func (o LoadOptions) transcriber() string {
	if o.Transcriber == "" {
		return DefaultTranscriber
	}
	return o.Transcriber
}

// TokenScanner streams filtered tokens from a transcription file, in
// file order, one at a time. It follows the bufio.Scanner idiom:
//
//	ts, err := NewTokenScanner(r, LoadOptions{})
//	for ts.Scan() {
//	    tok := ts.Token()
//	    ...
//	}
//	if err := ts.Err(); err != nil { ... }
type TokenScanner struct {
	sc      *bufio.Scanner
	cols    columnIndex
	opts    LoadOptions
	tok     Token
	skipped int
}

// NewTokenScanner reads and validates the header row of r and returns a
// scanner over its data rows. A missing required column is a SchemaError.
func NewTokenScanner(r io.Reader, opts LoadOptions) (*TokenScanner, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, errors.Wrap(err, "read transcription header")
		}
		return nil, errors.WithStack(&SchemaError{Missing: requiredColumns})
	}
	cols, err := resolveColumns(strings.Split(sc.Text(), "\t"))
	if err != nil {
		return nil, err
	}
	return &TokenScanner{sc: sc, cols: cols, opts: opts}, nil
}

// Scan advances to the next token that passes the load filters. It
// returns false at end of input or on a read error.
func (t *TokenScanner) Scan() bool {
	for t.sc.Scan() {
		line := t.sc.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < t.cols.minFields() {
			// Malformed row: counted and skipped, never fatal.
			t.skipped++
			continue
		}

		tok, ok := t.buildToken(fields)
		if !ok {
			continue
		}
		t.tok = tok
		return true
	}
	return false
}

// buildToken materializes a token from a well-formed row, applying the
// global filters: primary transcriber only, non-empty text, no
// illegible markers.
func (t *TokenScanner) buildToken(fields []string) (Token, bool) {
	field := func(i int) string {
		if i < 0 || i >= len(fields) {
			return ""
		}
		return unquote(fields[i])
	}

	if field(t.cols.transcriber) != t.opts.transcriber() {
		return Token{}, false
	}
	text := NormalizeWord(field(t.cols.word))
	if text == "" || ContainsIllegible(text) {
		return Token{}, false
	}

	pos, _ := strconv.Atoi(field(t.cols.position))
	return Token{
		Text:        text,
		Folio:       field(t.cols.folio),
		Line:        field(t.cols.line),
		Position:    pos,
		Track:       ParseTrack(field(t.cols.track)),
		Section:     field(t.cols.section),
		Placement:   field(t.cols.placement),
		Transcriber: field(t.cols.transcriber),
	}, true
}

// Token returns the token produced by the last successful Scan.
func (t *TokenScanner) Token() Token { return t.tok }

// Err returns the first read error encountered, if any.
func (t *TokenScanner) Err() error {
	return errors.Wrap(t.sc.Err(), "read transcription")
}

// Skipped returns the number of malformed rows skipped so far.
func (t *TokenScanner) Skipped() int { return t.skipped }

// LoadCorpus materializes the full filtered token stream of r into an
// immutable Corpus snapshot. Every call returns a fresh value; there is
// no ambient cache.
func LoadCorpus(r io.Reader, opts LoadOptions) (*Corpus, error) {
	ts, err := NewTokenScanner(r, opts)
	if err != nil {
		return nil, err
	}

	c := &Corpus{byFolio: make(map[string][]int)}
	for ts.Scan() {
		tok := ts.Token()
		if _, seen := c.byFolio[tok.Folio]; !seen {
			c.folios = append(c.folios, tok.Folio)
		}
		c.byFolio[tok.Folio] = append(c.byFolio[tok.Folio], len(c.tokens))
		c.tokens = append(c.tokens, tok)
	}
	if err := ts.Err(); err != nil {
		return nil, err
	}
	c.skipped = ts.Skipped()
	return c, nil
}

// LoadCorpusFile opens path and loads it with LoadCorpus.
func LoadCorpusFile(path string, opts LoadOptions) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open transcription %s", path)
	}
	defer f.Close()
	return LoadCorpus(f, opts)
}
