package ingest

import (
	"reflect"
	"testing"

	"github.com/cognicore/bagh/pkg/bagh/temporal"
)

func TestPipelineProcess(t *testing.T) {
	p := NewPipeline(temporal.NewExtractor(), gardenTaxonomy())

	processed := p.Process(Doc{
		ID:      1,
		Content: "... built in 1350 ه.ش during the Safavid era, with its famous courtyard ...",
	})

	if got := processed.Years.Sorted(); !reflect.DeepEqual(got, []int{1971}) {
		t.Errorf("years = %v, want [1971]", got)
	}
	if want := []string{"Design", "History"}; !reflect.DeepEqual(processed.Topics, want) {
		t.Errorf("topics = %v, want %v", processed.Topics, want)
	}
	if !processed.Contributes() {
		t.Error("document with a year and topics should contribute")
	}
}

func TestPipelineTopicsWithoutYears(t *testing.T) {
	p := NewPipeline(nil, gardenTaxonomy())

	processed := p.Process(Doc{Content: "A Safavid courtyard with cypresses, date unknown."})
	if len(processed.Topics) == 0 {
		t.Fatal("expected topics to be classified")
	}
	if processed.Contributes() {
		t.Error("document without a valid year must not contribute")
	}
}

func TestPipelineYearsWithoutTopics(t *testing.T) {
	p := NewPipeline(nil, gardenTaxonomy())

	processed := p.Process(Doc{Content: "Something happened in 1602."})
	if processed.Years.Len() != 1 {
		t.Fatalf("expected one year, got %v", processed.Years.Sorted())
	}
	if processed.Contributes() {
		t.Error("document without topics must not contribute")
	}
}

func TestPipelineNilTaxonomy(t *testing.T) {
	p := NewPipeline(nil, nil)
	processed := p.Process(Doc{Content: "courtyard 1602"})
	if len(processed.Topics) != 0 {
		t.Errorf("empty taxonomy should classify nothing, got %v", processed.Topics)
	}
	if p.Taxonomy() == nil {
		t.Error("Taxonomy() should never be nil")
	}
}
