package faqload_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aryamantiwari17/Automatic-Email-Reply-System/pkg/faqload"
)

func TestLoad_File(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "faq.md")
	require.NoError(t, os.WriteFile(path, []byte("Q: How do I rent?\nA: Call us."), 0o644))

	loader := faqload.NewWithConfig(faqload.LoaderConfig{})

	corpus, err := loader.Load(context.Background(), path)

	require.NoError(t, err)
	assert.Equal(t, "Q: How do I rent?\nA: Call us.", corpus)
}

func TestLoad_FileMissing(t *testing.T) {
	loader := faqload.NewWithConfig(faqload.LoaderConfig{})

	_, err := loader.Load(context.Background(), "/nonexistent/faq.md")

	assert.Error(t, err)
}

func TestLoad_HTMLPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><head><style>body{}</style></head><body>
			<script>var x = 1;</script>
			<h1>FAQ for Film Equipment Rentals</h1>
			<p>The ARRI SkyPanel S60-C has a maximum output of 1268 lux.</p>
			<footer>Copyright</footer>
		</body></html>`))
	}))
	defer srv.Close()

	loader := faqload.NewWithConfig(faqload.LoaderConfig{})

	corpus, err := loader.Load(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Contains(t, corpus, "FAQ for Film Equipment Rentals")
	assert.Contains(t, corpus, "1268 lux")
	assert.NotContains(t, corpus, "var x = 1")
	assert.NotContains(t, corpus, "Copyright")
}

func TestLoad_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	loader := faqload.NewWithConfig(faqload.LoaderConfig{})

	_, err := loader.Load(context.Background(), srv.URL)

	assert.Error(t, err)
}
