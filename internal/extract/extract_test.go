package extract

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"articlesum/internal/stopwords"
	"articlesum/internal/summarizer"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Solar Power Keeps Growing</title></head>
<body>
<nav><a href="/">Home</a> <a href="/news">News</a></nav>
<article>
<h1>Solar Power Keeps Growing</h1>
<p>Solar power capacity grew faster than any other energy source last year, according to a new industry report.
Analysts expect solar panels to keep getting cheaper as factories around the world continue to scale up production.</p>
<p>Cheaper solar panels also make home batteries more attractive for households that want to store energy for the evening.
Installers say demand for combined solar and battery systems has doubled in many regions over the past two years.</p>
<p>Some critics argue that grid upgrades are lagging behind solar growth, which can leave new projects waiting for connections.
Regulators are now reviewing how to speed up those connections without compromising the stability of the network.</p>
</article>
<footer>Copyright notice</footer>
</body>
</html>`

func TestExtract(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	e := New(Config{Timeout: 5 * time.Second, UserAgent: "articlesum-test"})
	article, err := e.Extract(context.Background(), srv.URL+"/solar")
	require.NoError(t, err)

	assert.Equal(t, "articlesum-test", gotUA)
	assert.Equal(t, srv.URL+"/solar", article.URL)
	assert.Contains(t, article.Title, "Solar Power")
	assert.Contains(t, article.Text, "Solar power capacity grew faster")
	assert.Contains(t, article.Text, "grid upgrades are lagging")
	assert.NotContains(t, article.Text, "Copyright notice")
}

var paragraphs = []string{
	"Community gardens have spread across the city over the last decade and now cover dozens of empty lots.",
	"Volunteers say the gardens give neighbours a reason to meet and share what they grow with each other.",
	"The city council recently approved a small budget to supply water and tools to every registered garden.",
	"Some residents worry that the gardens will be removed once developers decide to build on the land again.",
	"Local schools use the gardens to teach children how vegetables grow and where their food comes from.",
	"Researchers found that neighbourhoods with gardens report lower stress and stronger ties between residents.",
	"Garden organisers are now asking the council for long term leases so the plots cannot be sold off quickly.",
	"Anyone who wants a plot can add their name to the waiting list at the public library or the town hall.",
}

func paragraphPage(sep string) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><title>Community Gardens</title></head><body><article>")
	for _, p := range paragraphs {
		b.WriteString(sep + "<p>" + p + "</p>")
	}
	b.WriteString(sep + "</article></body></html>")
	return b.String()
}

func TestExtractKeepsParagraphBoundaries(t *testing.T) {
	splitter, err := summarizer.NewPunktSplitter()
	require.NoError(t, err)
	sum, err := summarizer.NewFrequencySummarizer(stopwords.English(), summarizer.WithSplitter(splitter))
	require.NoError(t, err)

	tests := []struct {
		name string
		html string
	}{
		{"minified", paragraphPage("")},
		{"pretty printed", paragraphPage("\n  ")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				_, _ = w.Write([]byte(tt.html))
			}))
			defer srv.Close()

			article, err := New(Config{}).Extract(context.Background(), srv.URL)
			require.NoError(t, err)
			for i := 1; i < len(paragraphs); i++ {
				assert.NotContains(t, article.Text, fmt.Sprintf("%s%s", lastWord(paragraphs[i-1]), firstWord(paragraphs[i])))
			}

			sentences := splitter.Split(summarizer.Normalize(article.Text))
			assert.Len(t, sentences, len(paragraphs))

			summary, err := sum.Summarize(article.Text, 2)
			require.NoError(t, err)
			assert.Len(t, splitter.Split(summary), 2)
			assert.Less(t, len(summary), len(summarizer.Normalize(article.Text)))
		})
	}
}

func lastWord(s string) string {
	f := strings.Fields(s)
	return f[len(f)-1]
}

func firstWord(s string) string {
	return strings.Fields(s)[0]
}

func TestExtractHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := New(Config{}).Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrDownload)
}

func TestExtractEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	_, err := New(Config{}).Extract(context.Background(), srv.URL)
	assert.ErrorIs(t, err, ErrDownload)
}

func TestExtractInvalidURL(t *testing.T) {
	for _, u := range []string{"", "not a url", "ftp://example.com/file", "http://"} {
		_, err := New(Config{}).Extract(context.Background(), u)
		assert.ErrorIs(t, err, ErrInvalidURL, u)
	}
}

func TestExtractCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(Config{}).Extract(ctx, srv.URL)
	assert.ErrorIs(t, err, ErrDownload)
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "Hello", pageTitle([]byte("<html><head><title> Hello </title></head></html>")))
	assert.Equal(t, "", pageTitle([]byte("<html><body>No title</body></html>")))
}
