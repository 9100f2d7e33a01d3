package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/daxida/grac/pkg/config"
)

func TestRunScrapeKeepsPartialOnFetchFailure(t *testing.T) {
	// Every category fetch fails; the run must warn and succeed, not abort.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := runScrape(scrapeConfig{
		OutDir: t.TempDir(),
		Remote: config.ScrapeConfig{
			BaseURL:   srv.URL,
			UserAgent: "synbuild-test",
			Timeout:   5 * time.Second,
		},
	})
	if err != nil {
		t.Fatalf("a failed category fetch must not fail the run: %v", err)
	}
}

func TestReadWordlist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("χιόνια\n\n  ρολόγια  \n"), 0o644); err != nil {
		t.Fatalf("write wordlist: %v", err)
	}

	words, err := readWordlist(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 || words[0] != "χιόνια" || words[1] != "ρολόγια" {
		t.Errorf("words = %v", words)
	}
}
