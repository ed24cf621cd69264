package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/cognicore/bagh/pkg/bagh/internalerr"
)

func TestDefaultTopics(t *testing.T) {
	topics := DefaultTopics()

	if got := topics.LanguageCodes(); !reflect.DeepEqual(got, []string{"en", "fa"}) {
		t.Fatalf("LanguageCodes() = %v, want [en fa]", got)
	}

	en := topics.Languages["en"].Topics
	if len(en) != 4 {
		t.Fatalf("expected 4 English topics, got %d", len(en))
	}
	wantLabels := []string{"Design", "History", "Culture", "Botany"}
	for i, topic := range en {
		if topic.Label != wantLabels[i] {
			t.Errorf("topic %d label = %q, want %q", i, topic.Label, wantLabels[i])
		}
	}

	// aliases share the keyword lists across languages
	fa := topics.Languages["fa"].Topics
	if !reflect.DeepEqual(fa[3].Keywords, en[3].Keywords) {
		t.Error("fa Botany keywords should match en Botany keywords")
	}
	if fa[0].Label != "طراحی" {
		t.Errorf("fa first label = %q", fa[0].Label)
	}
}

func TestParseTopicsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed", "languages: [oops"},
		{"no languages", "languages: {}\n"},
		{"no topics", "languages:\n  en:\n    topics: []\n"},
		{"missing label", "languages:\n  en:\n    topics:\n      - keywords: [a]\n"},
		{"duplicate label", "languages:\n  en:\n    topics:\n      - label: A\n        keywords: [a]\n      - label: A\n        keywords: [b]\n"},
		{"reserved label", "languages:\n  en:\n    topics:\n      - label: year\n        keywords: [a]\n"},
		{"blank keywords", "languages:\n  en:\n    topics:\n      - label: A\n        keywords: ['  ']\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTopics([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadTopicsMissingFile(t *testing.T) {
	if _, err := LoadTopics("/nonexistent/topics.yaml"); err == nil {
		t.Error("Should error on nonexistent topics file")
	}
}

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{}

	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Empty loader should succeed: %v", err)
	}
	if comp.Extractor == nil {
		t.Error("Should have extractor")
	}
	if !reflect.DeepEqual(comp.Languages, []string{"en", "fa"}) {
		t.Errorf("Languages = %v", comp.Languages)
	}
	en := comp.Taxonomies["en"]
	if en == nil {
		t.Fatal("missing en taxonomy")
	}
	if got := en.Classify("an elaborate irrigation qanat"); !reflect.DeepEqual(got, []string{"Botany"}) {
		t.Errorf("Classify = %v, want [Botany]", got)
	}
}

func TestLoaderValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "topics.yaml")
	data := "languages:\n  en:\n    topics:\n      - label: ' Water '\n        keywords: [Qanat, fountain]\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{TopicsPath: path, Window: 10}
	comp, err := loader.Load()
	if err != nil {
		t.Fatalf("Valid file should load: %v", err)
	}

	tax := comp.Taxonomies["en"]
	if got := tax.Labels(); !reflect.DeepEqual(got, []string{"Water"}) {
		t.Errorf("Labels() = %v, want [Water]", got)
	}
	if got := tax.Classify("the QANAT runs dry"); len(got) != 1 {
		t.Errorf("keywords should be matched case-insensitively, got %v", got)
	}
	if _, ok := comp.Taxonomies["fa"]; ok {
		t.Error("file without fa should not produce a fa taxonomy")
	}
}

func TestLoaderInvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "topics.yaml")
	if err := os.WriteFile(path, []byte("languages: {}\n"), 0644); err != nil {
		t.Fatal(err)
	}

	loader := Loader{TopicsPath: path}
	if _, err := loader.Load(); !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
