package bagh

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/cognicore/bagh/pkg/bagh/ingest"
	"github.com/cognicore/bagh/pkg/bagh/internalerr"
	"github.com/cognicore/bagh/pkg/bagh/series"
	"github.com/cognicore/bagh/pkg/bagh/store"
	"github.com/cognicore/bagh/pkg/bagh/temporal"
)

// Engine builds topic timelines from document collections, one pipeline per
// output language.
type Engine struct {
	pipelines map[string]*ingest.Pipeline
	profiles  map[string]string // language → store.Profile
	languages []string
	store     store.Store
	log       zerolog.Logger
	now       func() time.Time
}

// Options configures an Engine
type Options struct {
	Extractor  *temporal.Extractor          // nil uses temporal defaults
	Taxonomies map[string]*ingest.Taxonomy // language code → topic table
	Store      store.Store                  // optional timeline cache
	Logger     *zerolog.Logger              // nil disables logging
}

// New creates an Engine. At least one taxonomy is required.
func New(opts Options) (*Engine, error) {
	if len(opts.Taxonomies) == 0 {
		return nil, fmt.Errorf("%w: no taxonomies", internalerr.ErrInvalidConfig)
	}

	extractor := opts.Extractor
	if extractor == nil {
		extractor = temporal.NewExtractor()
	}

	e := &Engine{
		pipelines: make(map[string]*ingest.Pipeline, len(opts.Taxonomies)),
		profiles:  make(map[string]string, len(opts.Taxonomies)),
		store:     opts.Store,
		log:       zerolog.Nop(),
		now:       time.Now,
	}
	if opts.Logger != nil {
		e.log = *opts.Logger
	}
	for lang, tax := range opts.Taxonomies {
		if tax == nil {
			return nil, fmt.Errorf("%w: nil taxonomy for %q", internalerr.ErrInvalidConfig, lang)
		}
		e.pipelines[lang] = ingest.NewPipeline(extractor, tax)
		e.profiles[lang] = store.Profile(tax, extractor.Window())
		e.languages = append(e.languages, lang)
	}
	sort.Strings(e.languages)
	return e, nil
}

// Close releases the cache store, if any.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}

// Languages returns the supported language codes, sorted.
func (e *Engine) Languages() []string {
	return append([]string(nil), e.languages...)
}

// Labels returns the topic labels of a language in display order.
func (e *Engine) Labels(language string) ([]string, error) {
	p, err := e.pipeline(language)
	if err != nil {
		return nil, err
	}
	return p.Taxonomy().Labels(), nil
}

func (e *Engine) pipeline(language string) (*ingest.Pipeline, error) {
	p, ok := e.pipelines[language]
	if !ok {
		return nil, fmt.Errorf("%w: %q", internalerr.ErrUnknownLanguage, language)
	}
	return p, nil
}

// Aggregate runs every document through p and folds the results. Document
// order does not affect the outcome.
func Aggregate(p *ingest.Pipeline, docs []ingest.Doc) *series.Counts {
	counts := series.NewCounts(p.Taxonomy().Labels())
	for _, d := range docs {
		processed := p.Process(d)
		if !processed.Contributes() {
			continue
		}
		counts.Add(processed.Years.Sorted(), processed.Topics)
	}
	return counts
}

// Aggregate returns the year → topic counts for docs in the given language.
func (e *Engine) Aggregate(docs []ingest.Doc, language string) (*series.Counts, error) {
	p, err := e.pipeline(language)
	if err != nil {
		return nil, err
	}
	return Aggregate(p, docs), nil
}

// Timeline returns the year-ordered topic series for docs. When a store is
// configured, results are memoized on (collection, language, topic table,
// window); store failures are logged and the series is computed anyway.
func (e *Engine) Timeline(ctx context.Context, docs []ingest.Doc, language string) (series.Series, error) {
	p, err := e.pipeline(language)
	if err != nil {
		return series.Series{}, err
	}

	var key string
	if e.store != nil {
		key = store.Fingerprint(docs, language, e.profiles[language])
		run, ok, err := e.store.GetRun(ctx, key)
		switch {
		case err != nil:
			e.log.Warn().Err(err).Str("lang", language).Msg("timeline cache lookup failed")
		case ok:
			e.log.Debug().Str("run", run.ID).Str("lang", language).Int("points", run.Series.Len()).Msg("timeline cache hit")
			return run.Series, nil
		}
	}

	s := series.Build(Aggregate(p, docs))
	e.log.Debug().Str("lang", language).Int("docs", len(docs)).Int("points", s.Len()).Msg("timeline computed")

	if e.store != nil {
		run := store.Run{
			ID:        store.NewRunID(),
			Key:       key,
			Language:  language,
			Docs:      len(docs),
			Series:    s,
			CreatedAt: e.now(),
		}
		if err := e.store.PutRun(ctx, run); err != nil {
			e.log.Warn().Err(err).Str("run", run.ID).Msg("timeline cache write failed")
		}
	}
	return s, nil
}

// DocReport explains what the pipeline found in one document.
type DocReport struct {
	ID          int64                `json:"id"`
	Title       string               `json:"title"`
	URL         string               `json:"url"`
	Years       []int                `json:"years"`
	Topics      []string             `json:"topics"`
	Candidates  []temporal.Candidate `json:"candidates"`
	Contributes bool                 `json:"contributes"`
}

// Extract returns per-document diagnostics in input order.
func (e *Engine) Extract(docs []ingest.Doc, language string) ([]DocReport, error) {
	p, err := e.pipeline(language)
	if err != nil {
		return nil, err
	}

	reports := make([]DocReport, 0, len(docs))
	for _, d := range docs {
		processed := p.Process(d)
		reports = append(reports, DocReport{
			ID:          d.ID,
			Title:       d.Title,
			URL:         d.URL,
			Years:       processed.Years.Sorted(),
			Topics:      processed.Topics,
			Candidates:  processed.Candidates,
			Contributes: processed.Contributes(),
		})
	}
	return reports, nil
}
