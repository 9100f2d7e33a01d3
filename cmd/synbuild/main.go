// The command "synbuild" compiles the Modern Greek synizesis exception
// table.
//
// It uses the expand, dicmine, wikiscrape and synizesis packages to:
//   - expand the curated lemma/ending lists into inflected forms,
//   - mine a spellchecker dictionary for neuter plurals with synizesis,
//   - scrape the Greek Wiktionary synizesis categories, and
//   - emit the static lookup table and its plain-text audit registry.
//
// The curated lists are the authoritative core; mined and scraped words are
// extra candidate sources layered on top via --wordlist.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/daxida/grac/pkg/config"
	"github.com/daxida/grac/pkg/dicmine"
	"github.com/daxida/grac/pkg/syllabify"
	"github.com/daxida/grac/pkg/synizesis"
	"github.com/daxida/grac/pkg/wikiscrape"
)

// --- CLI help / usage -------------------------------------------------------

const helpText = `synbuild - Modern Greek synizesis table compiler

Usage:
  synbuild help
      Print this help message.

  synbuild build [flags]
      Compile the synizesis lookup table from the curated word lists and
      write the generated Go source plus the plain-text registry.

  synbuild mine [flags]
      Mine a hunspell-style dictionary (.dic) for neuter plurals that carry
      synizesis (χιόνι/χιόνια pairs) and write them as a word list.

  synbuild scrape [flags]
      Scrape the Greek Wiktionary "synizesis at the ending" categories and
      write one word list per part-of-speech/suffix group.

Flags for "build":
  --table PATH
      Output path of the generated Go lookup table.
      Default: pkg/synizesis/table.go

  --registry PATH
      Output path of the plain-text registry (one lowercase word per line,
      for review diffing only).
      Default: data/registry.txt

  --wordlist PATH
      Additional candidate word list (one word per line), typically the
      output of "synbuild mine" or "synbuild scrape". Can be repeated;
      lists are merged in the order they are given. Words with two accepted
      pronunciations are dropped no matter which list proposed them.

Flags for "mine":
  --dict PATH
      Dictionary file to mine. Accepts ISO-8859-7 or UTF-8.
      Default: data/el_GR.dic

  --out PATH
      Output word list. "-" writes to stdout.
      Default: data/neuters.txt

Flags for "scrape":
  --out-dir PATH
      Directory receiving one wiki_<group>.txt file per category/suffix
      group. Default: data

Configuration:
  Defaults above come from CONFIG_PATH (fallback ./synbuild.yaml) and the
  SCRAPE_*/MINE_*/BUILD_* environment variables; flags win over both.

Examples:
  # Regenerate the committed table from the curated lists alone
  synbuild build

  # Full rebuild with mined and scraped candidates layered in
  synbuild mine --dict data/el_GR.dic --out data/neuters.txt
  synbuild scrape --out-dir data
  synbuild build --wordlist data/neuters.txt --wordlist data/wiki_noun_neut_ια.txt
`

// printUsage writes the CLI help text to the given writer.
func printUsage(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// stringSliceFlag implements flag.Value to allow repeated flags.
type stringSliceFlag []string

func (s *stringSliceFlag) String() string {
	return strings.Join(*s, ",")
}

func (s *stringSliceFlag) Set(value string) error {
	*s = append(*s, value)
	return nil
}

// --- build ------------------------------------------------------------------

// buildConfig holds options for the "build" subcommand.
type buildConfig struct {
	TablePath    string
	RegistryPath string
	Wordlists    []string
}

func runBuild(cfg buildConfig) error {
	src := synizesis.CuratedSources()
	for _, path := range cfg.Wordlists {
		words, err := readWordlist(path)
		if err != nil {
			return fmt.Errorf("wordlist %s: %w", path, err)
		}
		src.Mined = append(src.Mined, words...)
	}

	cands := synizesis.Assemble(src, synizesis.AmbiguousWords())
	entries, err := synizesis.BuildTable(cands, syllabify.Segment, synizesis.MergeOverrides())
	if err != nil {
		return err
	}

	if err := writeFileWith(cfg.TablePath, func(w io.Writer) error {
		return synizesis.WriteTableGo(w, entries)
	}); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	if err := writeFileWith(cfg.RegistryPath, func(w io.Writer) error {
		return synizesis.WriteRegistry(w, entries)
	}); err != nil {
		return fmt.Errorf("write registry: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Wrote %d entries to %s (registry: %s)\n",
		len(entries), cfg.TablePath, cfg.RegistryPath)
	return nil
}

func runBuildFromArgs(args []string, defaults config.BuildConfig) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)

	tablePath := fs.String("table", defaults.TablePath, "output path of the generated Go lookup table")
	registryPath := fs.String("registry", defaults.RegistryPath, "output path of the plain-text registry")

	var wordlists stringSliceFlag
	fs.Var(&wordlists, "wordlist", "additional candidate word list (one word per line). Can be repeated.")

	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return errors.New(`"build" takes no positional arguments`)
	}

	return runBuild(buildConfig{
		TablePath:    *tablePath,
		RegistryPath: *registryPath,
		Wordlists:    wordlists,
	})
}

// --- mine -------------------------------------------------------------------

// mineConfig holds options for the "mine" subcommand.
type mineConfig struct {
	DictPath string
	OutPath  string
}

func runMine(cfg mineConfig) error {
	words, err := dicmine.LoadWords(cfg.DictPath)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Loaded %d dictionary words from %s\n", len(words), cfg.DictPath)

	neuters, err := dicmine.MineNeuters(words, syllabify.Segment)
	if err != nil {
		return err
	}

	if cfg.OutPath == "-" {
		for _, w := range neuters {
			fmt.Println(w)
		}
	} else {
		if err := writeFileWith(cfg.OutPath, func(w io.Writer) error {
			for _, word := range neuters {
				if _, err := fmt.Fprintln(w, word); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return fmt.Errorf("write %s: %w", cfg.OutPath, err)
		}
	}

	fmt.Fprintf(os.Stderr, "Mined %d neuter plurals\n", len(neuters))
	return nil
}

func runMineFromArgs(args []string, defaults config.MineConfig) error {
	fs := flag.NewFlagSet("mine", flag.ContinueOnError)

	dictPath := fs.String("dict", defaults.DictPath, "dictionary file to mine (ISO-8859-7 or UTF-8)")
	outPath := fs.String("out", defaults.OutputPath, `output word list, or "-" for stdout`)

	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return errors.New(`"mine" takes no positional arguments`)
	}

	return runMine(mineConfig{DictPath: *dictPath, OutPath: *outPath})
}

// --- scrape -----------------------------------------------------------------

// scrapeConfig holds options for the "scrape" subcommand.
type scrapeConfig struct {
	OutDir string
	Remote config.ScrapeConfig
}

func runScrape(cfg scrapeConfig) error {
	client := wikiscrape.NewClient(cfg.Remote.BaseURL, cfg.Remote.UserAgent, cfg.Remote.Timeout)
	client.Logf = func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}

	byLabel, scrapeErr := client.ScrapeAll()
	grouped := wikiscrape.Postprocess(byLabel)

	for group, words := range grouped {
		path := filepath.Join(cfg.OutDir, "wiki_"+group+".txt")
		if err := writeFileWith(path, func(w io.Writer) error {
			for _, word := range words {
				if _, err := fmt.Fprintln(w, word); err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %d words to %s\n", len(words), path)
	}

	// A failed fetch only abandons the remaining pages of its category; the
	// partial word lists above are still valid, so warn instead of failing
	// the run.
	if scrapeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v (partial results kept)\n", scrapeErr)
	}
	return nil
}

func runScrapeFromArgs(args []string, defaults config.ScrapeConfig) error {
	fs := flag.NewFlagSet("scrape", flag.ContinueOnError)

	outDir := fs.String("out-dir", defaults.OutputDir, "directory receiving the per-group word lists")

	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(os.Stdout)
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		return errors.New(`"scrape" takes no positional arguments`)
	}

	return runScrape(scrapeConfig{OutDir: *outDir, Remote: defaults})
}

// --- helpers ----------------------------------------------------------------

func readWordlist(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var words []string
	for _, line := range strings.Split(string(raw), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			words = append(words, line)
		}
	}
	return words, nil
}

func writeFileWith(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("synbuild: %v", err)
	}

	switch os.Args[1] {
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	case "build":
		err = runBuildFromArgs(os.Args[2:], cfg.Build)
	case "mine":
		err = runMineFromArgs(os.Args[2:], cfg.Mine)
	case "scrape":
		err = runScrapeFromArgs(os.Args[2:], cfg.Scrape)
	default:
		fmt.Fprintf(os.Stderr, "synbuild: unknown command %q\n\n", os.Args[1])
		printUsage(os.Stderr)
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("synbuild: %v", err)
	}
}
