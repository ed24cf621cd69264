package ingest

import "github.com/cognicore/bagh/pkg/bagh/temporal"

// Pipeline runs one document through date extraction and topic tagging:
// text → digit normalization → year/century candidates → calendar
// conversion → range filter, and independently text → topics.
type Pipeline struct {
	extractor *temporal.Extractor
	taxonomy  *Taxonomy
}

// NewPipeline creates a pipeline. A nil extractor uses temporal defaults.
func NewPipeline(extractor *temporal.Extractor, taxonomy *Taxonomy) *Pipeline {
	if extractor == nil {
		extractor = temporal.NewExtractor()
	}
	if taxonomy == nil {
		taxonomy = NewTaxonomy("")
	}
	return &Pipeline{
		extractor: extractor,
		taxonomy:  taxonomy,
	}
}

// ProcessedDoc is the per-document outcome of the pipeline.
type ProcessedDoc struct {
	Years      temporal.YearSet
	Topics     []string
	Candidates []temporal.Candidate
}

// Contributes reports whether the document adds anything to an aggregate:
// it needs at least one valid year and at least one topic.
func (p ProcessedDoc) Contributes() bool {
	return p.Years.Len() > 0 && len(p.Topics) > 0
}

// Taxonomy returns the topic table the pipeline classifies with.
func (p *Pipeline) Taxonomy() *Taxonomy { return p.taxonomy }

// Process extracts years and topics from a document.
func (p *Pipeline) Process(d Doc) ProcessedDoc {
	res := p.extractor.Extract(d.Content)
	return ProcessedDoc{
		Years:      res.Years,
		Topics:     p.taxonomy.Classify(d.Content),
		Candidates: res.Candidates,
	}
}
