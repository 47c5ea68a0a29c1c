// Package metrics runs the correction-quality harness: given a fixture
// of known misspelled/correct word pairs, it reports how often each
// edit-distance budget resolves a misspelling unambiguously, resolves
// it ambiguously, or misses it entirely.
package metrics

import (
	"encoding/json"
	"io"

	"github.com/LapingMiklos/lev-automaton/spellcheck"
	"github.com/LapingMiklos/lev-automaton/trie"
)

// Pair is one (misspelled, correct) fixture entry.
type Pair struct {
	Misspelled string `json:"misspelled"`
	Correct    string `json:"correct"`
}

// Report summarizes one edit-distance budget's correction quality over
// a fixture.
type Report struct {
	Degree                 int
	WordCount              int
	UnambiguousCorrections int
	AmbiguousCorrections   int
	NotCorrected           int
}

// UnambiguousPct returns the share of words corrected to exactly one
// matching candidate.
func (r Report) UnambiguousPct() float64 { return pct(r.UnambiguousCorrections, r.WordCount) }

// AmbiguousPct returns the share of words corrected to several
// candidates that include the right one.
func (r Report) AmbiguousPct() float64 { return pct(r.AmbiguousCorrections, r.WordCount) }

// NotCorrectedPct returns the share of words for which no candidate
// within budget matched the correct spelling.
func (r Report) NotCorrectedPct() float64 { return pct(r.NotCorrected, r.WordCount) }

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// LoadFixture decodes a JSON array of {"misspelled", "correct"} pairs.
func LoadFixture(r io.Reader) ([]Pair, error) {
	var pairs []Pair
	if err := json.NewDecoder(r).Decode(&pairs); err != nil {
		return nil, err
	}
	return pairs, nil
}

// Run scores every pair in fixture at the given edit-distance budget
// against t, after discarding any pair whose correct spelling is not
// itself in t (a fixture covering a different dictionary than the one
// loaded).
func Run(t *trie.Trie, fixture []Pair, degree int) Report {
	usable := make([]Pair, 0, len(fixture))
	for _, p := range fixture {
		if t.Contains(p.Correct) {
			usable = append(usable, p)
		}
	}

	checker := spellcheck.New(t, spellcheck.EditDistanceStrategy(degree))
	report := Report{Degree: degree, WordCount: len(usable)}

	for _, p := range usable {
		ok, candidates := checker.Check(p.Misspelled)
		if ok {
			continue
		}
		if !contains(candidates, p.Correct) {
			report.NotCorrected++
			continue
		}
		if len(candidates) == 1 {
			report.UnambiguousCorrections++
		} else {
			report.AmbiguousCorrections++
		}
	}

	return report
}

func contains(xs []string, x string) bool {
	for _, s := range xs {
		if s == x {
			return true
		}
	}
	return false
}
