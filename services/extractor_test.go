package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Example Article</title></head>
<body>
<article>
<h1>Example Article</h1>
<p>The ingestion service downloads pages like this one and converts them into
audio episodes. This paragraph exists so that the readability parser has a
reasonable amount of body text to work with, because very short pages are
often classified as boilerplate rather than content.</p>
<p>A second paragraph keeps the extraction stable. It describes nothing in
particular, but it is long enough to convince the scoring heuristics that the
article element is the main content of the page and not a navigation block or
a footer full of links.</p>
<p>Finally, a third paragraph rounds out the document so that the extracted
text clearly contains the phrase the tests look for: the quick brown fox
jumps over the lazy dog.</p>
</article>
</body>
</html>`

func TestExtractReadablePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	extractor := NewReadabilityExtractor(5 * time.Second)
	extracted, err := extractor.Extract(context.Background(), srv.URL)
	require.NoError(t, err)

	assert.Contains(t, extracted.Title, "Example Article")
	assert.Contains(t, extracted.Text, "the quick brown fox")
	assert.Equal(t, srv.URL, extracted.URL)
}

func TestExtractEmptyPageFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<html><head><title>Empty</title></head><body></body></html>`))
	}))
	defer srv.Close()

	extractor := NewReadabilityExtractor(5 * time.Second)
	_, err := extractor.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestExtractHTTPErrorFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	extractor := NewReadabilityExtractor(5 * time.Second)
	_, err := extractor.Extract(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestExtractUnreachableHostFails(t *testing.T) {
	extractor := NewReadabilityExtractor(500 * time.Millisecond)
	_, err := extractor.Extract(context.Background(), "http://127.0.0.1:1/nope")
	assert.Error(t, err)
}
