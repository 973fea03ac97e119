// Package resolver proposes household persons for an ambiguous
// extracted name. It proposes only: binding an extraction to a person
// always takes explicit confirmation, a fuzzy score never merges
// identities on its own.
package resolver

import (
	"sort"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/vault"
	"github.com/rvanwijk/pii-guard/models"
)

const (
	defaultHighThreshold     = 0.9
	defaultPossibleThreshold = 0.85
)

// Resolver grades name similarity against configurable thresholds.
type Resolver struct {
	high     float64
	possible float64
}

func New(cfg config.Resolver) *Resolver {
	high := cfg.HighThreshold
	if high <= 0 {
		high = defaultHighThreshold
	}
	possible := cfg.PossibleThreshold
	if possible <= 0 {
		possible = defaultPossibleThreshold
	}

	return &Resolver{high: high, possible: possible}
}

// FindMatches scores candidate against every person and returns the
// matches at or above the possible threshold, best first. A
// case-insensitive exact match scores 1; everything else scores by
// Jaro-Winkler similarity over the normalized names.
func (r *Resolver) FindMatches(candidate string, persons []models.Person) []models.EntityMatch {
	name := vault.Normalize(candidate)
	if name == "" {
		return nil
	}

	var matches []models.EntityMatch
	for _, person := range persons {
		known := vault.Normalize(person.DisplayName)
		if known == "" {
			continue
		}

		var score float64
		var grade string
		if known == name {
			score, grade = 1, models.MatchExact
		} else {
			score = jaroWinkler(name, known)
			switch {
			case score >= r.high:
				grade = models.MatchHigh
			case score >= r.possible:
				grade = models.MatchPossible
			default:
				continue
			}
		}

		matches = append(matches, models.EntityMatch{Person: person, Score: score, Grade: grade})
	}

	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })

	return matches
}

// jaroWinkler boosts the Jaro score for a shared prefix of up to four
// runes, with the standard 0.1 scaling factor.
func jaroWinkler(a, b string) float64 {
	j := jaro(a, b)

	ra, rb := []rune(a), []rune(b)
	prefix := 0
	for prefix < len(ra) && prefix < len(rb) && prefix < 4 && ra[prefix] == rb[prefix] {
		prefix++
	}

	return j + float64(prefix)*0.1*(1-j)
}

// jaro computes Jaro similarity over runes: characters match within a
// sliding window of half the longer string, transpositions count half.
func jaro(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	la, lb := len(ra), len(rb)
	if la == 0 && lb == 0 {
		return 1
	}
	if la == 0 || lb == 0 {
		return 0
	}

	window := la
	if lb > window {
		window = lb
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	matchedA := make([]bool, la)
	matchedB := make([]bool, lb)
	matches := 0
	for i := 0; i < la; i++ {
		lo := i - window
		if lo < 0 {
			lo = 0
		}
		hi := i + window + 1
		if hi > lb {
			hi = lb
		}
		for j := lo; j < hi; j++ {
			if matchedB[j] || ra[i] != rb[j] {
				continue
			}
			matchedA[i] = true
			matchedB[j] = true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	transpositions := 0
	j := 0
	for i := 0; i < la; i++ {
		if !matchedA[i] {
			continue
		}
		for !matchedB[j] {
			j++
		}
		if ra[i] != rb[j] {
			transpositions++
		}
		j++
	}

	m := float64(matches)
	t := float64(transpositions) / 2

	return (m/float64(la) + m/float64(lb) + (m-t)/m) / 3
}
