package match

import "sort"

// minSuggestSimilarity is the lowest Similarity a candidate needs to be offered.
const minSuggestSimilarity = 0.6

// maxSuggestions caps the number of names Suggest returns.
const maxSuggestions = 2

// Suggest returns up to two candidates that look like name, best first.
// Candidates identical to name after normalization are not suggestions and
// are skipped.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name  string
		score float64
	}

	norm := NormalizeIdent(name)

	var ranked []scored

	for _, c := range candidates {
		if NormalizeIdent(c) == norm {
			continue
		}

		if s := Similarity(name, c); s >= minSuggestSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	out := make([]string, 0, maxSuggestions)
	for _, r := range ranked {
		if len(out) == maxSuggestions {
			break
		}

		out = append(out, r.name)
	}

	return out
}
