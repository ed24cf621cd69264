package config

import (
	"fmt"
	"strings"

	"github.com/cognicore/bagh/pkg/bagh/ingest"
	"github.com/cognicore/bagh/pkg/bagh/temporal"
)

// Loader loads configuration files and constructs components
type Loader struct {
	TopicsPath string // empty uses the embedded dictionaries
	Window     int    // context runes around year tokens; 0 uses the default
}

// Components holds all loaded configuration components
type Components struct {
	Extractor  *temporal.Extractor
	Taxonomies map[string]*ingest.Taxonomy
	Languages  []string
}

// Load reads the configuration and returns initialized components
func (l *Loader) Load() (*Components, error) {
	topics := DefaultTopics()
	if l.TopicsPath != "" {
		var err error
		topics, err = LoadTopics(l.TopicsPath)
		if err != nil {
			return nil, fmt.Errorf("load topics: %w", err)
		}
	}

	var opts []temporal.Option
	if l.Window > 0 {
		opts = append(opts, temporal.WithWindow(l.Window))
	}

	return &Components{
		Extractor:  temporal.NewExtractor(opts...),
		Taxonomies: topics.Taxonomies(),
		Languages:  topics.LanguageCodes(),
	}, nil
}

// Taxonomies builds one ingest.Taxonomy per language.
func (t *Topics) Taxonomies() map[string]*ingest.Taxonomy {
	out := make(map[string]*ingest.Taxonomy, len(t.Languages))
	for lang, lt := range t.Languages {
		tax := ingest.NewTaxonomy(lang)
		for _, topic := range lt.Topics {
			tax.AddTopic(strings.TrimSpace(topic.Label), topic.Keywords)
		}
		out[lang] = tax
	}
	return out
}
