package analysis

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// MaxConditionMatches максимум результатов сопоставления
const MaxConditionMatches = 5

var fragmentSeparators = regexp.MustCompile(`[.,;]`)

// MatchConditions ранжирует заболевания из таблицы по описанию симптомов.
//
// Фраза совпадает, если фрагмент ввода содержит её или она содержит фрагмент.
// Пустые фрагменты (например, после завершающей запятой) не отбрасываются
// и совпадают с любой фразой.
func MatchConditions(symptomText string) []ConditionMatch {
	fragments := splitFragments(symptomText)

	results := make([]ConditionMatch, 0, len(knowledgeTable))
	for _, cond := range knowledgeTable {
		var matched []string
		for _, symptom := range cond.Symptoms {
			if anyFragmentMatches(fragments, symptom) {
				matched = append(matched, symptom)
			}
		}
		if len(matched) == 0 {
			continue
		}

		probability := cond.Probability(len(matched))
		results = append(results, ConditionMatch{
			Name:            cond.Name,
			Probability:     int(math.Round(probability)),
			Urgency:         cond.Urgency,
			MatchedSymptoms: matched,
			Duration:        cond.Duration,
			Confidence:      confidenceFor(probability),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Probability > results[j].Probability
	})
	if len(results) > MaxConditionMatches {
		results = results[:MaxConditionMatches]
	}
	return results
}

func splitFragments(text string) []string {
	parts := fragmentSeparators.Split(strings.ToLower(text), -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func anyFragmentMatches(fragments []string, symptom string) bool {
	for _, f := range fragments {
		if strings.Contains(f, symptom) || strings.Contains(symptom, f) {
			return true
		}
	}
	return false
}

func confidenceFor(probability float64) Tier {
	switch {
	case probability > 70:
		return TierHigh
	case probability > 40:
		return TierMedium
	default:
		return TierLow
	}
}
