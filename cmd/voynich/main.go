// Command voynich is the workbench CLI over the morphology and
// classification engine: decompose words, build and query the
// classification artifact, segment folios into records, and print
// folio summaries.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	voynich "github.com/epilectrik/voynich-sub019"
)

var log *zap.SugaredLogger

func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()
	log = logger.Sugar()

	if err := rootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "voynich",
		Short:         "Token morphology and classification workbench",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, cfgFile)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default ./voynich.yaml)")
	pf.String("corpus", "transcription.tsv", "path to the transcription TSV")
	pf.String("transcriber", voynich.DefaultTranscriber, "primary transcription track")
	pf.Int("threshold", voynich.DefaultMinOccurrences, "classification occurrence threshold")
	pf.String("gallows", "", "record trigger letters (e.g. ktpf or ktp)")

	root.AddCommand(decomposeCmd(), classifyCmd(), segmentCmd(), folioCmd())
	return root
}

// initConfig wires flags and the optional config file through viper.
// Precedence: flag > config file > flag default.
func initConfig(cmd *cobra.Command, cfgFile string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("voynich")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}

func loadCorpus() (*voynich.Corpus, error) {
	path := viper.GetString("corpus")
	c, err := voynich.LoadCorpusFile(path, voynich.LoadOptions{
		Transcriber: viper.GetString("transcriber"),
	})
	if err != nil {
		return nil, err
	}
	if c.Skipped() > 0 {
		log.Warnw("malformed rows skipped", "path", path, "count", c.Skipped())
	}
	return c, nil
}

// triggerSet resolves the configured gallows letters. There is no
// default: the historical scripts disagree on 3 vs 4 letters, so the
// caller must choose.
func triggerSet() (voynich.TriggerSet, error) {
	g := viper.GetString("gallows")
	if g == "" {
		return voynich.TriggerSet{}, errors.New(
			"no gallows trigger set configured; set --gallows to ktpf or ktp")
	}
	return voynich.NewTriggerSet(g), nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ---- decompose ----------------------------------------------------------

func decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose WORD...",
		Short: "Decompose words into articulator/prefix/middle/suffix",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := voynich.DefaultAnalyzer()
			for _, word := range args {
				m := a.Decompose(voynich.NormalizeWord(word))
				fmt.Printf("%s\t%s\n", word, strings.Join(m.Parts(), " + "))
			}
			return nil
		},
	}
}

// ---- classify -----------------------------------------------------------

func classifyCmd() *cobra.Command {
	classify := &cobra.Command{
		Use:   "classify",
		Short: "Build or query the middle classification artifact",
	}
	classify.AddCommand(classifyBuildCmd(), classifyLookupCmd())
	return classify
}

func classifyBuildCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Scan the corpus and write the classification artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			mc := voynich.BuildClassifier(corpus, voynich.DefaultAnalyzer(), voynich.ClassifierOptions{
				MinOccurrences: viper.GetInt("threshold"),
			})
			if err := voynich.WriteArtifactFile(out, mc); err != nil {
				return err
			}
			log.Infow("artifact written",
				"path", out,
				"ri", len(mc.RI()),
				"pp", len(mc.PP()),
				"below_threshold", len(mc.BelowThreshold()),
			)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "classes.json", "artifact output path")
	return cmd
}

func classifyLookupCmd() *cobra.Command {
	var artifact string

	cmd := &cobra.Command{
		Use:   "lookup MIDDLE...",
		Short: "Look up middle classes in a built artifact",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mc, err := voynich.ReadArtifactFile(artifact)
			if err != nil {
				return err
			}
			for _, mid := range args {
				na, nb := mc.Occurrences(mid)
				fmt.Printf("%s\t%s\tA=%d\tB=%d\n", mid, mc.Classify(mid), na, nb)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&artifact, "artifact", "classes.json", "artifact path")
	return cmd
}

// ---- segment ------------------------------------------------------------

func segmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "segment FOLIO",
		Short: "Segment one folio into records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			triggers, err := triggerSet()
			if err != nil {
				return err
			}
			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			tokens := corpus.FolioTokens(args[0])
			if tokens == nil {
				return errors.Newf("folio %q not found", args[0])
			}
			recs := voynich.NewSegmenter(triggers).Segment(tokens)
			for i, rec := range recs {
				words := make([]string, len(rec.Tokens))
				for j, tok := range rec.Tokens {
					words[j] = tok.Text
				}
				fmt.Printf("record %d (lines %s-%s): %s\n",
					i+1, rec.StartLine, rec.EndLine, strings.Join(words, " "))
			}
			return nil
		},
	}
}

// ---- folio --------------------------------------------------------------

func folioCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "folio [FOLIO]",
		Short: "Print per-folio summary statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			triggers, err := triggerSet()
			if err != nil {
				return err
			}
			corpus, err := loadCorpus()
			if err != nil {
				return err
			}
			analyzer := voynich.DefaultAnalyzer()
			classifier := voynich.BuildClassifier(corpus, analyzer, voynich.ClassifierOptions{
				MinOccurrences: viper.GetInt("threshold"),
			})
			ag := voynich.NewAggregator(analyzer, classifier, voynich.NewSegmenter(triggers))

			if len(args) == 1 {
				tokens := corpus.FolioTokens(args[0])
				if tokens == nil {
					return errors.Newf("folio %q not found", args[0])
				}
				return printJSON(ag.FolioStats(args[0], tokens))
			}
			return printJSON(ag.CorpusStats(corpus))
		},
	}
}
