package sentiment

import (
	"strconv"
	"strings"

	"faredash/data"
)

var (
	defaultPolarity     = mergeWeights(parseWeights(data.PolarityLexicon), parseWeights(data.DomainLexicon))
	defaultIntensifiers = parseWeights(data.Intensifiers)
)

// negations flip and damp the next scored word.
var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nothing": {}, "nobody": {},
	"neither": {}, "nor": {}, "cannot": {},
}

// negationFactor is applied to a word preceded by a negation.
const negationFactor = -0.5

// parseWeights parses tab-separated "word\tweight" lines.
func parseWeights(raw string) map[string]float64 {
	m := make(map[string]float64, strings.Count(raw, "\n"))
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		w, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			continue
		}
		m[strings.ToLower(strings.TrimSpace(parts[0]))] = w
	}
	return m
}

// mergeWeights copies overrides onto base and returns base.
func mergeWeights(base, overrides map[string]float64) map[string]float64 {
	for w, v := range overrides {
		base[w] = v
	}
	return base
}

// isNegation reports whether word negates the following scored word.
func isNegation(word string) bool {
	if _, ok := negations[word]; ok {
		return true
	}
	return strings.HasSuffix(word, "n't")
}
