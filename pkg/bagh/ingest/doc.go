package ingest

// Doc is a source document. Only Content is read by the pipeline; the other
// fields travel with it for callers that need provenance.
type Doc struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
}
