/*
Levspell reads whitespace-separated tokens from standard input and
checks each against a dictionary, printing suggested corrections for
any word it does not recognize.

Usage:

	levspell [flags]

The flags are:

	-d, --distance N
		The maximum edit distance to search for corrections. Defaults to 1.

	-v, --verbose
		Enable verbose diagnostic logging.

The dictionary file is read from the path named by the
LEV_SPELL_CHECK_DICT_PATH environment variable, defaulting to
/usr/share/dict/words.

Misspelled words are printed struck through; a single correction is
printed after an arrow, and multiple candidates are printed as a
brace-delimited set.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	"github.com/spf13/pflag"

	"github.com/LapingMiklos/lev-automaton/internal/config"
	"github.com/LapingMiklos/lev-automaton/internal/dictionary"
	"github.com/LapingMiklos/lev-automaton/spellcheck"
	"github.com/LapingMiklos/lev-automaton/trie"
)

var (
	distance *int  = pflag.IntP("distance", "d", 1, "Maximum edit distance to search for corrections")
	verbose  *bool = pflag.BoolP("verbose", "v", false, "Enable verbose diagnostic logging")
)

const (
	ansiRed           = "\x1b[31m"
	ansiGreen         = "\x1b[32m"
	ansiItalic        = "\x1b[3m"
	ansiStrikethrough = "\x1b[9m"
	ansiReset         = "\x1b[0m"
)

func main() {
	pflag.Parse()
	if *verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	path := config.DictPath()
	words, err := dictionary.Load(path)
	if err != nil {
		gologger.Fatal().Msgf("%v", err)
	}

	t := trie.Build(words)
	checker := spellcheck.New(t, spellcheck.EditDistanceStrategy(*distance))

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Fields(line)
		parts := make([]string, 0, len(tokens))
		for _, word := range tokens {
			parts = append(parts, formatToken(checker, word))
		}
		fmt.Println(strings.Join(parts, " "))
	}
	if err := scanner.Err(); err != nil {
		gologger.Error().Msgf("reading stdin: %v", err)
	}
}

func formatToken(checker *spellcheck.Checker, word string) string {
	ok, candidates := checker.Check(word)
	if ok {
		return word
	}

	misspelled := ansiRed + ansiStrikethrough + word + ansiReset
	switch len(candidates) {
	case 0:
		return misspelled
	case 1:
		return fmt.Sprintf("%s -> %s%s%s%s", misspelled, ansiGreen, ansiItalic, candidates[0], ansiReset)
	default:
		return fmt.Sprintf("%s -> { %s }", misspelled, colorizeJoin(candidates))
	}
}

func colorizeJoin(candidates []string) string {
	colored := make([]string, len(candidates))
	for i, c := range candidates {
		colored[i] = ansiGreen + c + ansiReset
	}
	return strings.Join(colored, ", ")
}
