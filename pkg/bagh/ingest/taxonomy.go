package ingest

import "strings"

// Topic is a labelled set of lowercase keyword substrings.
type Topic struct {
	Label    string
	Keywords []string
}

// Taxonomy is the ordered topic table for one language.
type Taxonomy struct {
	language string
	topics   []Topic
	index    map[string]int // label → position in topics
}

// NewTaxonomy creates an empty taxonomy for the given language code.
func NewTaxonomy(language string) *Taxonomy {
	return &Taxonomy{
		language: language,
		index:    make(map[string]int),
	}
}

// AddTopic appends a topic, or replaces the keywords of an existing label
// while keeping its position. Blank keywords are dropped since they would
// match every document.
func (t *Taxonomy) AddTopic(label string, keywords []string) {
	normalized := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		normalized = append(normalized, kw)
	}

	if i, ok := t.index[label]; ok {
		t.topics[i].Keywords = normalized
		return
	}
	t.index[label] = len(t.topics)
	t.topics = append(t.topics, Topic{Label: label, Keywords: normalized})
}

// Language returns the language code the labels are written in.
func (t *Taxonomy) Language() string { return t.language }

// Labels returns topic labels in configuration order.
func (t *Taxonomy) Labels() []string {
	labels := make([]string, len(t.topics))
	for i, topic := range t.topics {
		labels[i] = topic.Label
	}
	return labels
}

// Topics returns a copy of the topic table.
func (t *Taxonomy) Topics() []Topic {
	out := make([]Topic, len(t.topics))
	for i, topic := range t.topics {
		out[i] = Topic{Label: topic.Label, Keywords: append([]string(nil), topic.Keywords...)}
	}
	return out
}

// Classify returns, in configuration order, every topic with at least one
// keyword occurring as a substring of the lowercased content.
func (t *Taxonomy) Classify(content string) []string {
	lower := strings.ToLower(content)

	var matched []string
	for _, topic := range t.topics {
		for _, kw := range topic.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, topic.Label)
				break
			}
		}
	}
	return matched
}
