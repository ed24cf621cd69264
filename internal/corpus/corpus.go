package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/cognicore/bagh/pkg/bagh/ingest"
	"github.com/cognicore/bagh/pkg/bagh/internalerr"
)

// LoadFromJSONL loads documents from a JSONL file, one {id,title,content,url}
// object per line. Malformed lines are skipped with a warning.
func LoadFromJSONL(path string) ([]ingest.Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file %s: %w", path, err)
	}

	var docs []ingest.Doc
	lines := strings.Split(string(data), "\n")

	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var doc ingest.Doc
		if err := json.Unmarshal([]byte(line), &doc); err != nil {
			log.Warn().Err(err).Str("path", path).Int("line", i+1).Msg("skipping malformed document")
			continue
		}
		doc.Title = Clean(doc.Title)
		doc.Content = Clean(doc.Content)
		docs = append(docs, doc)
	}

	if len(docs) == 0 {
		return nil, fmt.Errorf("%w: no valid documents found in %s", internalerr.ErrInvalidInput, path)
	}

	return docs, nil
}

// Clean strips HTML markup from scraped content and composes the text to NFC
// so that decomposed Persian letters match the keyword dictionaries.
func Clean(s string) string {
	if looksLikeHTML(s) {
		s = stripHTML(s)
	}
	return norm.NFC.String(s)
}

// looksLikeHTML reports whether s contains something shaped like a tag, so
// prose such as "a < b" is left alone.
func looksLikeHTML(s string) bool {
	for i := 0; i < len(s)-1; i++ {
		if s[i] != '<' {
			continue
		}
		c := s[i+1]
		if c == '/' || c == '!' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			return strings.IndexByte(s[i:], '>') > 0
		}
	}
	return false
}

func stripHTML(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		// Fallback to string if parsing fails
		return s
	}

	var buf strings.Builder
	var extractText func(*html.Node)
	extractText = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extractText(c)
		}
	}
	extractText(doc)

	return strings.TrimSpace(buf.String())
}

// Block elements get a separating space so adjacent cells do not fuse into
// one token, e.g. "<td>1350</td><td>ه.ش</td>".
var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "td": true, "th": true,
	"tr": true, "h1": true, "h2": true, "h3": true, "h4": true, "section": true,
}
