/*
Levspell-metrics runs the correction-quality harness against a fixture
of known misspelled/correct word pairs, reporting how often each
edit-distance budget from 1 to 3 resolves a misspelling unambiguously,
resolves it ambiguously, or misses it.

Usage:

	levspell-metrics [flags]

The flags are:

	-f, --fixture FILE
		A JSON file containing an array of {"misspelled","correct"}
		objects. Defaults to "test_data/words.json".

The dictionary file is read from the path named by the
LEV_SPELL_CHECK_DICT_PATH environment variable, defaulting to
/usr/share/dict/words.
*/
package main

import (
	"fmt"
	"os"

	"github.com/projectdiscovery/gologger"
	"github.com/spf13/pflag"

	"github.com/LapingMiklos/lev-automaton/internal/config"
	"github.com/LapingMiklos/lev-automaton/internal/dictionary"
	"github.com/LapingMiklos/lev-automaton/internal/metrics"
	"github.com/LapingMiklos/lev-automaton/trie"
)

var fixturePath *string = pflag.StringP("fixture", "f", "test_data/words.json", "JSON fixture of misspelled/correct word pairs")

func main() {
	pflag.Parse()

	path := config.DictPath()
	words, err := dictionary.Load(path)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}
	t := trie.Build(words)

	file, err := os.Open(*fixturePath)
	if err != nil {
		gologger.Fatal().Msgf("unable to open fixture %q: %v", *fixturePath, err)
	}
	defer file.Close()

	pairs, err := metrics.LoadFixture(file)
	if err != nil {
		gologger.Fatal().Msgf("unable to parse fixture %q: %v", *fixturePath, err)
	}

	for degree := 1; degree <= 3; degree++ {
		report := metrics.Run(t, pairs, degree)
		fmt.Printf("Levenshtein automaton of degree: %d\n", report.Degree)
		fmt.Printf("Word count:               %d\n", report.WordCount)
		fmt.Printf("Unambiguous corrections:  %d (%.2f%%)\n", report.UnambiguousCorrections, report.UnambiguousPct())
		fmt.Printf("Ambiguous corrections:    %d (%.2f%%)\n", report.AmbiguousCorrections, report.AmbiguousPct())
		fmt.Printf("Not corrected:            %d (%.2f%%)\n", report.NotCorrected, report.NotCorrectedPct())
		fmt.Println()
	}
}
