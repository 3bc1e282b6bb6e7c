//go:build ignore

// buildlexicon converts the VADER lexicon into data/lexicon.txt.
// Run from the project root with the raw VADER file:
//
//	go run scripts/buildlexicon.go -vader path/to/vader_lexicon.txt
//
// Only single words the tokenizer can produce are kept. Negations are
// skipped because the analyzer handles them itself. Mean ratings are scaled
// from [-4, 4] to [-1, 1].
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

const (
	outputPath = "data/lexicon.txt"
	vaderScale = 4.0
)

var wordPattern = regexp.MustCompile(`^[a-z]+('[a-z]+)?$`)

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "nothing": true, "nobody": true,
	"neither": true, "nor": true, "cannot": true,
}

const header = `# General English polarity lexicon. word<TAB>polarity in [-1, 1].
# Generated by scripts/buildlexicon.go from the VADER lexicon
# (C.J. Hutto, MIT license), mean ratings scaled from [-4, 4].
# Do not edit; add overrides to domain_lexicon.txt.
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("[buildlexicon] ")

	vaderPath := flag.String("vader", "", "path to vader_lexicon.txt")
	flag.Parse()
	if *vaderPath == "" {
		log.Fatal("-vader is required")
	}

	entries, err := loadVader(*vaderPath)
	if err != nil {
		log.Fatalf("cannot load lexicon: %v", err)
	}
	log.Printf("kept %d words", len(entries))

	if err := writeLexicon(outputPath, entries); err != nil {
		log.Fatalf("cannot write lexicon: %v", err)
	}
	log.Printf("wrote %s", outputPath)
}

// loadVader reads "token\tmean\tstddev\tratings" lines.
func loadVader(path string) (map[string]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	entries := make(map[string]float64, 8192)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		parts := strings.Split(sc.Text(), "\t")
		if len(parts) < 2 {
			continue
		}
		word := strings.ToLower(parts[0])
		if !wordPattern.MatchString(word) || negations[word] || strings.HasSuffix(word, "n't") {
			continue
		}
		mean, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			continue
		}
		entries[word] = math.Round(mean/vaderScale*1000) / 1000
	}
	return entries, sc.Err()
}

func writeLexicon(path string, entries map[string]float64) error {
	words := make([]string, 0, len(entries))
	for w := range entries {
		words = append(words, w)
	}
	sort.Strings(words)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	fmt.Fprint(w, header)
	for _, word := range words {
		fmt.Fprintf(w, "%s\t%s\n", word, strconv.FormatFloat(entries[word], 'g', -1, 64))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
