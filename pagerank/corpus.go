package pagerank

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// Corpus maps each page to the set of pages it links to. Only links to other
// pages inside the corpus are kept; self-links are dropped.
type Corpus map[string]map[string]bool

var hrefPattern = regexp.MustCompile(`<a\s+(?:[^>]*?)href="([^"]*)"`)

// Crawl parses a directory of HTML pages and records which corpus pages each
// one links to.
func Crawl(dir string) (Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus directory: %w", err)
	}

	corpus := Corpus{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to read page %s: %w", name, err)
		}

		links := map[string]bool{}
		for _, match := range hrefPattern.FindAllStringSubmatch(string(contents), -1) {
			if link := match[1]; link != name {
				links[link] = true
			}
		}
		corpus[name] = links
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("no .html pages in %s", dir)
	}

	// Keep only links that resolve inside the corpus.
	for _, links := range corpus {
		for link := range links {
			if _, ok := corpus[link]; !ok {
				delete(links, link)
			}
		}
	}
	return corpus, nil
}

// Pages returns the corpus page names in sorted order, so that iteration and
// sampling are deterministic.
func (c Corpus) Pages() []string {
	pages := make([]string, 0, len(c))
	for page := range c {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}
