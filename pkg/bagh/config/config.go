package config

import (
	_ "embed"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/bagh/pkg/bagh/internalerr"
	"github.com/cognicore/bagh/pkg/bagh/series"
)

//go:embed topics.yaml
var defaultTopics []byte

// Topics is the per-language topic dictionary configuration.
type Topics struct {
	Languages map[string]LanguageTopics `yaml:"languages"`
}

// LanguageTopics is the ordered topic table of one language.
type LanguageTopics struct {
	Topics []TopicEntry `yaml:"topics"`
}

// TopicEntry is one topic label with its keyword substrings.
type TopicEntry struct {
	Label    string   `yaml:"label"`
	Keywords []string `yaml:"keywords"`
}

// LoadTopics loads topic dictionaries from a YAML file
func LoadTopics(path string) (*Topics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseTopics(data)
}

// ParseTopics decodes and validates topic dictionaries.
func ParseTopics(data []byte) (*Topics, error) {
	var topics Topics
	if err := yaml.Unmarshal(data, &topics); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := topics.Validate(); err != nil {
		return nil, err
	}
	return &topics, nil
}

// DefaultTopics returns the built-in Persian garden dictionaries (en, fa).
func DefaultTopics() *Topics {
	topics, err := ParseTopics(defaultTopics)
	if err != nil {
		panic(fmt.Sprintf("embedded topics.yaml: %v", err))
	}
	return topics
}

// Validate checks that every language has at least one uniquely labelled
// topic and that every topic has a non-blank keyword.
func (t *Topics) Validate() error {
	if len(t.Languages) == 0 {
		return fmt.Errorf("%w: no languages defined", internalerr.ErrInvalidConfig)
	}
	for lang, lt := range t.Languages {
		if strings.TrimSpace(lang) == "" {
			return fmt.Errorf("%w: empty language code", internalerr.ErrInvalidConfig)
		}
		if len(lt.Topics) == 0 {
			return fmt.Errorf("%w: language %q has no topics", internalerr.ErrInvalidConfig, lang)
		}
		seen := make(map[string]struct{}, len(lt.Topics))
		for i, topic := range lt.Topics {
			label := strings.TrimSpace(topic.Label)
			if label == "" {
				return fmt.Errorf("%w: language %q topic %d has no label", internalerr.ErrInvalidConfig, lang, i)
			}
			if label == series.YearKey {
				return fmt.Errorf("%w: language %q topic label %q is reserved", internalerr.ErrInvalidConfig, lang, label)
			}
			if _, dup := seen[label]; dup {
				return fmt.Errorf("%w: language %q has duplicate topic %q", internalerr.ErrInvalidConfig, lang, label)
			}
			seen[label] = struct{}{}
			if !hasKeyword(topic.Keywords) {
				return fmt.Errorf("%w: topic %q (%s) has no keywords", internalerr.ErrInvalidConfig, label, lang)
			}
		}
	}
	return nil
}

// LanguageCodes returns the configured language codes, sorted.
func (t *Topics) LanguageCodes() []string {
	codes := make([]string, 0, len(t.Languages))
	for code := range t.Languages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

func hasKeyword(keywords []string) bool {
	for _, kw := range keywords {
		if strings.TrimSpace(kw) != "" {
			return true
		}
	}
	return false
}
