package ingest

import (
	"reflect"
	"testing"
)

func gardenTaxonomy() *Taxonomy {
	tax := NewTaxonomy("en")
	tax.AddTopic("Design", []string{"design", "architecture", "pavilion", "chahar bagh", "courtyard", "palace", "کوشک", "حیاط"})
	tax.AddTopic("History", []string{"history", "safavid", "qajar", "dynasty", "shah", "صفویه", "قاجار"})
	tax.AddTopic("Culture", []string{"poetry", "paradise", "heritage", "unesco", "شعر", "میراث"})
	tax.AddTopic("Botany", []string{"plants", "trees", "qanat", "irrigation", "cypresses", "قنات", "سرو"})
	return tax
}

func TestTaxonomyClassify(t *testing.T) {
	tax := gardenTaxonomy()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"single topic", "an elaborate irrigation qanat", []string{"Botany"}},
		{"many topics in order", "the Safavid courtyard and its cypresses", []string{"Design", "History", "Botany"}},
		{"case insensitive", "UNESCO World HERITAGE", []string{"Culture"}},
		{"substring match", "Shahs and palaces", []string{"Design", "History"}},
		{"persian keywords", "حیاط باغ و درختان سرو در دوره صفویه", []string{"Design", "History", "Botany"}},
		{"no match", "a quiet afternoon", nil},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tax.Classify(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Classify(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}

func TestTaxonomyLabelsKeepOrder(t *testing.T) {
	tax := gardenTaxonomy()
	want := []string{"Design", "History", "Culture", "Botany"}
	if got := tax.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
	if tax.Language() != "en" {
		t.Errorf("Language() = %q, want en", tax.Language())
	}
}

func TestTaxonomyReplaceKeepsPosition(t *testing.T) {
	tax := gardenTaxonomy()
	tax.AddTopic("History", []string{"Timurid"})

	if got := tax.Labels(); got[1] != "History" || len(got) != 4 {
		t.Fatalf("replacing a topic should keep its slot, got %v", got)
	}
	if got := tax.Classify("a safavid pavilion"); !reflect.DeepEqual(got, []string{"Design"}) {
		t.Errorf("old History keywords should be gone, got %v", got)
	}
	if got := tax.Classify("a TIMURID garden"); !reflect.DeepEqual(got, []string{"History"}) {
		t.Errorf("new keywords should be lowercased, got %v", got)
	}
}

func TestTaxonomyDropsBlankKeywords(t *testing.T) {
	tax := NewTaxonomy("en")
	tax.AddTopic("Empty", []string{"", "   "})

	if got := tax.Classify("anything at all"); len(got) != 0 {
		t.Errorf("blank keywords must not match, got %v", got)
	}
}

func TestTaxonomyTopicsIsCopy(t *testing.T) {
	tax := gardenTaxonomy()
	topics := tax.Topics()
	topics[0].Keywords[0] = "mutated"

	if tax.Topics()[0].Keywords[0] != "design" {
		t.Error("Topics() must not expose internal slices")
	}
}
