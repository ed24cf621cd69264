package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cognicore/bagh/internal/corpus"
	"github.com/cognicore/bagh/pkg/bagh"
	"github.com/cognicore/bagh/pkg/bagh/config"
	"github.com/cognicore/bagh/pkg/bagh/series"
	"github.com/cognicore/bagh/pkg/bagh/store"
	"github.com/cognicore/bagh/pkg/bagh/store/sqlite"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"

	topicsPath string
	jsonOutput bool
	debug      bool
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bagh",
		Short: "Topic timelines from Persian garden documents",
		Long: `bagh finds year and century mentions in Gregorian, Hijri Shamsi and
Hijri Qamari dates, tags each document with keyword topics and prints a
year-ordered count of topics per year.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&topicsPath, "topics", "", "Topic dictionary YAML (default: built-in)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newTimelineCmd(), newExtractCmd(), newTopicsCmd(), newRunsCmd(), newVersionCmd())
	return rootCmd
}

func newEngine(dbPath string) (*bagh.Engine, error) {
	loader := config.Loader{TopicsPath: topicsPath}
	comp, err := loader.Load()
	if err != nil {
		return nil, err
	}

	var st store.Store
	if dbPath != "" {
		st, err = sqlite.OpenSQLite(context.Background(), dbPath)
		if err != nil {
			return nil, fmt.Errorf("open cache %s: %w", dbPath, err)
		}
	}

	logger := log.Logger.With().Str("component", "engine").Logger()
	engine, err := bagh.New(bagh.Options{
		Extractor:  comp.Extractor,
		Taxonomies: comp.Taxonomies,
		Store:      st,
		Logger:     &logger,
	})
	if err != nil && st != nil {
		st.Close()
	}
	return engine, err
}

func newTimelineCmd() *cobra.Command {
	var input, lang, dbPath string

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Print the per-year topic counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.LoadFromJSONL(input)
			if err != nil {
				return err
			}
			engine, err := newEngine(dbPath)
			if err != nil {
				return err
			}
			defer engine.Close()

			s, err := engine.Timeline(cmd.Context(), docs, lang)
			if err != nil {
				return err
			}
			log.Info().Int("docs", len(docs)).Int("points", s.Len()).Str("lang", lang).Msg("timeline built")

			if jsonOutput {
				return printJSON(s.Rows())
			}
			printTimeline(s)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to JSONL documents (required)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "Output language for topic labels")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite file caching computed timelines")
	cmd.MarkFlagRequired("input")
	return cmd
}

func printTimeline(s series.Series) {
	first, last, ok := s.Span()
	if !ok {
		fmt.Println("No dated, topical documents found.")
		return
	}
	if !s.Plottable() {
		fmt.Println("Not enough data points for a trend.")
	}
	fmt.Printf("Topic mentions %d-%d\n\n", first, last)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "YEAR\t%s\n", strings.Join(s.Labels, "\t"))
	for _, p := range s.Points {
		cells := make([]string, len(s.Labels))
		for i, l := range s.Labels {
			cells[i] = fmt.Sprint(p.Counts[l])
		}
		fmt.Fprintf(w, "%d\t%s\n", p.Year, strings.Join(cells, "\t"))
	}
	w.Flush()
}

func newExtractCmd() *cobra.Command {
	var input, lang string

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Show the date candidates and topics found in each document",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := corpus.LoadFromJSONL(input)
			if err != nil {
				return err
			}
			engine, err := newEngine("")
			if err != nil {
				return err
			}
			defer engine.Close()

			reports, err := engine.Extract(docs, lang)
			if err != nil {
				return err
			}
			if jsonOutput {
				return printJSON(reports)
			}

			for _, r := range reports {
				fmt.Printf("#%d %s\n", r.ID, r.Title)
				fmt.Printf("  topics: %s\n", strings.Join(r.Topics, ", "))
				for _, c := range r.Candidates {
					mark := " "
					if c.Valid {
						mark = "✓"
					}
					fmt.Printf("  %s %-12s %-9s %-14s → %d\n", mark, c.Token, c.System, c.Rule, c.Year)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Path to JSONL documents (required)")
	cmd.Flags().StringVarP(&lang, "lang", "l", "en", "Output language for topic labels")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newTopicsCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "topics",
		Short: "List configured topic labels",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := newEngine("")
			if err != nil {
				return err
			}
			defer engine.Close()

			langs := engine.Languages()
			if lang != "" {
				langs = []string{lang}
			}
			out := make(map[string][]string, len(langs))
			for _, l := range langs {
				labels, err := engine.Labels(l)
				if err != nil {
					return err
				}
				out[l] = labels
			}

			if jsonOutput {
				return printJSON(out)
			}
			for _, l := range langs {
				fmt.Printf("%s: %s\n", l, strings.Join(out[l], ", "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "Only this language")
	return cmd
}

func newRunsCmd() *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List cached timelines",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := sqlite.OpenSQLite(cmd.Context(), dbPath)
			if err != nil {
				return fmt.Errorf("open cache %s: %w", dbPath, err)
			}
			defer st.Close()

			runs, err := st.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return printJSON(runs)
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tLANG\tDOCS\tPOINTS\tCREATED")
			for _, r := range runs {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%s\n", r.ID, r.Language, r.Docs, r.Series.Len(), r.CreatedAt.Format(time.RFC3339))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite cache file (required)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum runs to list")
	cmd.MarkFlagRequired("db")
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jsonOutput {
				return printJSON(map[string]string{
					"version": version,
					"commit":  commit,
					"date":    buildDate,
				})
			}
			fmt.Printf("bagh %s (%s, %s)\n", version, commit, buildDate)
			return nil
		},
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
