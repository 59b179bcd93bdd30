// Command server exposes the morphology and classification engine as a
// JSON REST API for the analysis notebooks.
//
// Endpoints:
//
//	GET /api/decompose?word=<token>
//	GET /api/classify?middle=<middle>
//	GET /api/classify?word=<token>     (decomposes first)
//	GET /api/segment?folio=<id>[&gallows=ktpf]
//	GET /api/folio?id=<id>
//	GET /api/folios
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"go.uber.org/zap"

	voynich "github.com/epilectrik/voynich-sub019"
)

// ---- JSON response types ------------------------------------------------

type decomposeResponse struct {
	Word       string             `json:"word"`
	Morphology voynich.Morphology `json:"morphology"`
}

type classifyResponse struct {
	Middle string `json:"middle"`
	Class  string `json:"class"`
	TrackA int    `json:"track_a_occurrences"`
	TrackB int    `json:"track_b_occurrences"`
}

type segmentResponse struct {
	Folio   string       `json:"folio"`
	Gallows string       `json:"gallows"`
	Records []recordJSON `json:"records"`
}

type recordJSON struct {
	StartLine string   `json:"start_line"`
	EndLine   string   `json:"end_line"`
	Words     []string `json:"words"`
}

type foliosResponse struct {
	Folios []string `json:"folios"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.S().Errorw("encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func toRecordJSON(recs []voynich.Record) []recordJSON {
	out := make([]recordJSON, 0, len(recs))
	for _, rec := range recs {
		words := make([]string, len(rec.Tokens))
		for i, tok := range rec.Tokens {
			words[i] = tok.Text
		}
		out = append(out, recordJSON{
			StartLine: rec.StartLine,
			EndLine:   rec.EndLine,
			Words:     words,
		})
	}
	return out
}

// ---- handlers -----------------------------------------------------------

func handleDecompose(a *voynich.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}
		writeJSON(w, http.StatusOK, decomposeResponse{
			Word:       word,
			Morphology: a.Decompose(voynich.NormalizeWord(word)),
		})
	}
}

func handleClassify(a *voynich.Analyzer, mc *voynich.MiddleClassifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		middle := r.URL.Query().Get("middle")
		if middle == "" {
			word := r.URL.Query().Get("word")
			if word == "" {
				writeError(w, http.StatusBadRequest, "missing 'middle' or 'word' query parameter")
				return
			}
			middle = a.Middle(voynich.NormalizeWord(word))
			if middle == "" {
				writeError(w, http.StatusUnprocessableEntity,
					fmt.Sprintf("word %q decomposes to an empty middle", word))
				return
			}
		}
		na, nb := mc.Occurrences(middle)
		writeJSON(w, http.StatusOK, classifyResponse{
			Middle: middle,
			Class:  mc.Classify(middle).String(),
			TrackA: na,
			TrackB: nb,
		})
	}
}

func handleSegment(c *voynich.Corpus, defaultTriggers voynich.TriggerSet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		folio := r.URL.Query().Get("folio")
		if folio == "" {
			writeError(w, http.StatusBadRequest, "missing 'folio' query parameter")
			return
		}
		tokens := c.FolioTokens(folio)
		if tokens == nil {
			writeError(w, http.StatusNotFound, fmt.Sprintf("folio %q not found", folio))
			return
		}
		triggers := defaultTriggers
		if g := r.URL.Query().Get("gallows"); g != "" {
			triggers = voynich.NewTriggerSet(g)
		}
		recs := voynich.NewSegmenter(triggers).Segment(tokens)
		writeJSON(w, http.StatusOK, segmentResponse{
			Folio:   folio,
			Gallows: triggers.String(),
			Records: toRecordJSON(recs),
		})
	}
}

func handleFolio(c *voynich.Corpus, ag *voynich.Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		id := r.URL.Query().Get("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing 'id' query parameter")
			return
		}
		tokens := c.FolioTokens(id)
		if tokens == nil {
			writeError(w, http.StatusNotFound, fmt.Sprintf("folio %q not found", id))
			return
		}
		writeJSON(w, http.StatusOK, ag.FolioStats(id, tokens))
	}
}

func handleFolios(c *voynich.Corpus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, foliosResponse{Folios: c.Folios()})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	corpusPath := flag.String("corpus", "transcription.tsv", "path to the transcription TSV")
	transcriber := flag.String("transcriber", voynich.DefaultTranscriber, "primary transcription track")
	threshold := flag.Int("threshold", voynich.DefaultMinOccurrences, "classification occurrence threshold")
	gallows := flag.String("gallows", "", "record trigger letters (required; e.g. ktpf or ktp)")
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	if *gallows == "" {
		log.Fatal("the -gallows flag is required; the historical scripts disagree, pick ktpf or ktp")
	}

	log.Infow("loading corpus", "path", *corpusPath, "transcriber", *transcriber)
	corpus, err := voynich.LoadCorpusFile(*corpusPath, voynich.LoadOptions{Transcriber: *transcriber})
	if err != nil {
		log.Fatalw("load corpus", "error", err)
	}
	if corpus.Skipped() > 0 {
		log.Warnw("malformed rows skipped", "count", corpus.Skipped())
	}

	analyzer := voynich.DefaultAnalyzer()
	classifier := voynich.BuildClassifier(corpus, analyzer, voynich.ClassifierOptions{MinOccurrences: *threshold})
	triggers := voynich.NewTriggerSet(*gallows)
	aggregator := voynich.NewAggregator(analyzer, classifier, voynich.NewSegmenter(triggers))

	log.Infow("corpus ready",
		"tokens", corpus.Len(),
		"folios", len(corpus.Folios()),
		"ri", len(classifier.RI()),
		"pp", len(classifier.PP()),
	)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/decompose", handleDecompose(analyzer))
	mux.HandleFunc("/api/classify", handleClassify(analyzer, classifier))
	mux.HandleFunc("/api/segment", handleSegment(corpus, triggers))
	mux.HandleFunc("/api/folio", handleFolio(corpus, aggregator))
	mux.HandleFunc("/api/folios", handleFolios(corpus))

	handler := cors.Default().Handler(mux)
	log.Infow("listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, handler); err != nil {
		log.Fatalw("server error", "error", err)
	}
}
