package pagerank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0644))
}

func TestCrawl(t *testing.T) {
	t.Run("extracts intra-corpus links", func(t *testing.T) {
		dir := t.TempDir()
		writePage(t, dir, "1.html", `<html><a href="2.html">two</a> <a href="https://example.com">out</a></html>`)
		writePage(t, dir, "2.html", `<html><a href="1.html">one</a> <a href="2.html">self</a></html>`)
		writePage(t, dir, "notes.txt", "not a page")

		corpus, err := Crawl(dir)
		require.NoError(t, err)

		require.Equal(t, []string{"1.html", "2.html"}, corpus.Pages())
		require.True(t, corpus["1.html"]["2.html"])
		require.False(t, corpus["1.html"]["https://example.com"],
			"Links outside the corpus should be dropped")
		require.False(t, corpus["2.html"]["2.html"], "Self-links should be dropped")
		require.True(t, corpus["2.html"]["1.html"])
	})

	t.Run("fails on a directory without pages", func(t *testing.T) {
		_, err := Crawl(t.TempDir())

		require.ErrorContains(t, err, "no .html pages")
	})

	t.Run("fails on a missing directory", func(t *testing.T) {
		_, err := Crawl(filepath.Join(t.TempDir(), "nope"))

		require.Error(t, err)
	})
}
