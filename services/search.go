package services

import (
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
)

const (
	suggestionLimit         = 3
	suggestionMinSimilarity = 0.5
)

// normalizeInput trims, folds diacritics and lower-cases.
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	return strings.ToLower(unidecode.Unidecode(input))
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := len([]rune(a))
	if l := len([]rune(b)); l > maxLen {
		maxLen = l
	}
	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/float64(maxLen)
}

// Suggest returns up to three candidates that look like what the user meant to type.
// Candidates come back in their original spelling, closest first.
func Suggest(term string, candidates []string) []string {
	term = normalizeInput(term)
	if term == "" || len(candidates) == 0 {
		return nil
	}

	original := make(map[string]string, len(candidates))
	keywords := make([]string, 0, len(candidates))
	for _, c := range candidates {
		n := normalizeInput(c)
		if n == "" {
			continue
		}
		if _, seen := original[n]; seen {
			continue
		}
		original[n] = c
		keywords = append(keywords, n)
	}
	if len(keywords) == 0 {
		return nil
	}

	matcher := closestmatch.New(keywords, []int{2, 3})
	type scored struct {
		keyword string
		score   float64
	}
	var matches []scored
	for _, keyword := range matcher.ClosestN(term, suggestionLimit) {
		if keyword == "" {
			continue
		}
		score := calculateSimilarity(term, keyword)
		if strings.Contains(keyword, term) || score >= suggestionMinSimilarity {
			matches = append(matches, scored{keyword: keyword, score: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, original[m.keyword])
	}
	return suggestions
}
