package analysis

import (
	"math"
	"strings"
)

const (
	// MaxSeverityScore верхняя граница оценки, 50 не достигается
	MaxSeverityScore = 49.99

	vitalCriticalAbove = 10
)

type weightedPhrase struct {
	phrase string
	weight int
}

type keywordCategory struct {
	tier    SeverityTier
	phrases []weightedPhrase
}

// порядок категорий и фраз задаёт порядок найденных симптомов
var severityCategories = []keywordCategory{
	{
		tier: SeverityCritical,
		phrases: []weightedPhrase{
			{"chest pain", 25},
			{"difficulty breathing", 25},
			{"severe headache", 20},
			{"loss of consciousness", 25},
			{"seizure", 25},
			{"stroke symptoms", 25},
		},
	},
	{
		tier: SeverityMajor,
		phrases: []weightedPhrase{
			{"high fever", 15},
			{"severe pain", 15},
			{"persistent vomiting", 12},
			{"severe dehydration", 15},
			{"head injury", 15},
		},
	},
	{
		tier: SeverityModerate,
		phrases: []weightedPhrase{
			{"moderate fever", 8},
			{"persistent cough", 6},
			{"dizziness", 7},
			{"mild dehydration", 8},
			{"moderate pain", 8},
		},
	},
	{
		tier: SeverityMinor,
		phrases: []weightedPhrase{
			{"mild fever", 4},
			{"fatigue", 3},
			{"mild pain", 4},
			{"nausea", 4},
			{"mild cough", 3},
		},
	},
}

// vitalRange полуоткрытый: Min <= v < Max
type vitalRange struct {
	Min, Max float64
	Score    int
}

type vitalRule struct {
	label  string
	ranges []vitalRange
}

var (
	temperatureRule = vitalRule{
		label: "Abnormal Temperature",
		ranges: []vitalRange{
			{35, 36.5, 5},
			{37.5, 38.5, 8},
			{38.5, 40, 15},
			{40, 42, 25},
		},
	}
	heartRateRule = vitalRule{
		label: "Abnormal Heart Rate",
		ranges: []vitalRange{
			{40, 60, 5},
			{100, 120, 8},
			{120, 150, 15},
			{150, 200, 25},
		},
	}
	oxygenSaturationRule = vitalRule{
		label: "Abnormal Oxygen Saturation",
		ranges: []vitalRange{
			{90, 95, 8},
			{85, 90, 15},
			{0, 85, 25},
		},
	}
)

// maxPossibleScore сумма весов всех ключевых фраз
var maxPossibleScore = func() int {
	total := 0
	for _, cat := range severityCategories {
		for _, p := range cat.phrases {
			total += p.weight
		}
	}
	return total
}()

// ScoreSeverity оценивает тяжесть по тексту и показателям; vitals может быть nil
func ScoreSeverity(symptomText string, vitals *VitalSigns) SeverityResult {
	text := strings.ToLower(symptomText)

	totalScore := 0
	detected := make([]DetectedSymptom, 0)

	for _, cat := range severityCategories {
		for _, p := range cat.phrases {
			if strings.Contains(text, p.phrase) {
				totalScore += p.weight
				detected = append(detected, DetectedSymptom{
					Name:     p.phrase,
					Severity: cat.tier,
					Weight:   p.weight,
				})
			}
		}
	}

	if vitals != nil {
		for _, check := range []struct {
			reading *float64
			rule    vitalRule
		}{
			{vitals.Temperature, temperatureRule},
			{vitals.HeartRate, heartRateRule},
			{vitals.OxygenSaturation, oxygenSaturationRule},
		} {
			if check.reading == nil {
				continue
			}
			if d, ok := check.rule.evaluate(*check.reading); ok {
				totalScore += d.Weight
				detected = append(detected, d)
			}
		}
	}

	score := compressScore(totalScore)
	return SeverityResult{
		Score:            score,
		DetectedSymptoms: detected,
		RiskLevel:        riskFor(score),
		Confidence:       min(90+2*len(detected), 99),
	}
}

func (r vitalRule) evaluate(value float64) (DetectedSymptom, bool) {
	for _, rg := range r.ranges {
		if value >= rg.Min && value < rg.Max {
			tier := SeverityModerate
			if rg.Score > vitalCriticalAbove {
				tier = SeverityCritical
			}
			v := value
			return DetectedSymptom{
				Name:     r.label,
				Severity: tier,
				Weight:   rg.Score,
				Value:    &v,
			}, true
		}
	}
	return DetectedSymptom{}, false
}

// compressScore делит процент пополам и ограничивает сверху
func compressScore(totalScore int) float64 {
	raw := float64(totalScore) / float64(maxPossibleScore) * 100
	scaled := math.Min(raw/2, MaxSeverityScore)
	return math.Round(scaled*100) / 100
}

func riskFor(score float64) Tier {
	switch {
	case score >= 40:
		return TierModerate
	case score >= 25:
		return TierMild
	default:
		return TierLow
	}
}
