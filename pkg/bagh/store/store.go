package store

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/cognicore/bagh/pkg/bagh/ingest"
	"github.com/cognicore/bagh/pkg/bagh/series"
)

// Store caches computed timelines keyed by document collection and language.
// The computation is pure, so a hit is always safe to serve.
type Store interface {
	Close() error

	GetRun(ctx context.Context, key string) (Run, bool, error)
	PutRun(ctx context.Context, r Run) error
	ListRuns(ctx context.Context, limit int) ([]Run, error)
	DeleteRun(ctx context.Context, key string) error
}

// Run is one cached timeline computation.
type Run struct {
	ID        string
	Key       string
	Language  string
	Docs      int
	Series    series.Series
	CreatedAt time.Time
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewRunID returns a lexically sortable run identifier.
func NewRunID() string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// Fingerprint identifies a document collection processed for a language
// under a given configuration profile (see Profile). Document order does not
// change the key, matching the aggregation itself.
func Fingerprint(docs []ingest.Doc, language, profile string) string {
	sums := make([]string, len(docs))
	for i, d := range docs {
		sum := sha256.Sum256([]byte(d.Content))
		sums[i] = hex.EncodeToString(sum[:])
	}
	sort.Strings(sums)

	h := sha256.New()
	h.Write([]byte(language))
	h.Write([]byte{0})
	h.Write([]byte(profile))
	h.Write([]byte{0})
	for _, s := range sums {
		h.Write([]byte(s))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Profile digests everything besides the documents that shapes a timeline:
// the ordered topic table and the extractor window.
func Profile(tax *ingest.Taxonomy, window int) string {
	h := sha256.New()
	fmt.Fprintf(h, "window=%d\n", window)
	if tax != nil {
		for _, t := range tax.Topics() {
			fmt.Fprintf(h, "%q", t.Label)
			for _, kw := range t.Keywords {
				fmt.Fprintf(h, " %q", kw)
			}
			h.Write([]byte{'\n'})
		}
	}
	return hex.EncodeToString(h.Sum(nil))
}
