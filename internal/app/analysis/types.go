package analysis

// Tier качественная метка для срочности, уверенности и риска
type Tier string

const (
	TierLow      Tier = "Low"
	TierMild     Tier = "Mild"
	TierMedium   Tier = "Medium"
	TierModerate Tier = "Moderate"
	TierHigh     Tier = "High"
)

// SeverityTier категория, в которой найден симптом
type SeverityTier string

const (
	SeverityCritical SeverityTier = "critical"
	SeverityMajor    SeverityTier = "major"
	SeverityModerate SeverityTier = "moderate"
	SeverityMinor    SeverityTier = "minor"
)

// ConditionEntry строка таблицы заболеваний
type ConditionEntry struct {
	Name     string   `json:"name"`
	Symptoms []string `json:"symptoms"`
	Urgency  Tier     `json:"urgency"`
	Duration string   `json:"duration"`
}

// Probability процент совпавших симптомов
func (c ConditionEntry) Probability(matched int) float64 {
	if len(c.Symptoms) == 0 {
		return 0
	}
	return float64(matched) / float64(len(c.Symptoms)) * 100
}

type ConditionMatch struct {
	Name            string   `json:"name"`
	Probability     int      `json:"probability"`
	Urgency         Tier     `json:"urgency"`
	MatchedSymptoms []string `json:"matched_symptoms"`
	Duration        string   `json:"duration"`
	Confidence      Tier     `json:"confidence"`
}

// VitalSigns необязательные показатели; nil значит не передано
type VitalSigns struct {
	Temperature      *float64 `json:"temperature,omitempty"`
	HeartRate        *float64 `json:"heart_rate,omitempty"`
	OxygenSaturation *float64 `json:"oxygen_saturation,omitempty"`
}

type DetectedSymptom struct {
	Name     string       `json:"name"`
	Severity SeverityTier `json:"severity"`
	Weight   int          `json:"weight"`
	Value    *float64     `json:"value,omitempty"`
}

type SeverityResult struct {
	Score            float64           `json:"score"`
	DetectedSymptoms []DetectedSymptom `json:"detected_symptoms"`
	RiskLevel        Tier              `json:"risk_level"`
	Confidence       int               `json:"confidence"`
}
