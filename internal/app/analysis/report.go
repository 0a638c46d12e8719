package analysis

type MedicationSuggestion struct {
	Name    string   `json:"name"`
	Types   []string `json:"types"`
	Dosage  string   `json:"dosage"`
	Timing  string   `json:"timing,omitempty"`
	Warning string   `json:"warning,omitempty"`
}

type LifestyleSuggestion struct {
	Category        string   `json:"category"`
	Recommendations []string `json:"recommendations"`
}

// Recommendations одинаковы для любого анализа и не зависят от найденных заболеваний
type Recommendations struct {
	Medications []MedicationSuggestion `json:"medications"`
	Lifestyle   []LifestyleSuggestion  `json:"lifestyle"`
}

type Report struct {
	PossibleConditions []ConditionMatch `json:"possible_conditions"`
	Severity           SeverityResult   `json:"severity"`
	Recommendations    Recommendations  `json:"recommendations"`
}

// Analyze независимо запускает сопоставление и оценку тяжести и добавляет рекомендации
func Analyze(symptomText string, vitals *VitalSigns) Report {
	return Report{
		PossibleConditions: MatchConditions(symptomText),
		Severity:           ScoreSeverity(symptomText, vitals),
		Recommendations:    StaticRecommendations(),
	}
}

// StaticRecommendations возвращает новую копию списков
func StaticRecommendations() Recommendations {
	meds := make([]MedicationSuggestion, len(medicationSuggestions))
	for i, m := range medicationSuggestions {
		m.Types = append([]string(nil), m.Types...)
		meds[i] = m
	}
	life := make([]LifestyleSuggestion, len(lifestyleSuggestions))
	for i, l := range lifestyleSuggestions {
		l.Recommendations = append([]string(nil), l.Recommendations...)
		life[i] = l
	}
	return Recommendations{Medications: meds, Lifestyle: life}
}

var medicationSuggestions = []MedicationSuggestion{
	{
		Name:   "Over-the-counter Pain Relievers",
		Types:  []string{"Acetaminophen", "Ibuprofen"},
		Dosage: "As directed on package",
		Timing: "Every 4-6 hours as needed",
	},
	{
		Name:   "Antihistamines",
		Types:  []string{"Loratadine", "Cetirizine"},
		Dosage: "Once daily",
		Timing: "Preferably at night",
	},
	{
		Name:    "Decongestants",
		Types:   []string{"Pseudoephedrine", "Phenylephrine"},
		Dosage:  "Every 4-6 hours",
		Warning: "Not recommended for extended use",
	},
}

var lifestyleSuggestions = []LifestyleSuggestion{
	{
		Category: "Rest & Recovery",
		Recommendations: []string{
			"Get 7-9 hours of sleep per night",
			"Take short breaks during work",
			"Practice meditation for 10-15 minutes daily",
		},
	},
	{
		Category: "Diet & Nutrition",
		Recommendations: []string{
			"Increase vitamin C rich foods",
			"Stay hydrated with 8-10 glasses of water",
			"Consume warm broths and soups",
			"Limit caffeine and alcohol",
		},
	},
	{
		Category: "Physical Activity",
		Recommendations: []string{
			"Light stretching exercises",
			"Short walks in fresh air",
			"Gentle yoga poses",
			"Deep breathing exercises",
		},
	},
	{
		Category: "Environmental",
		Recommendations: []string{
			"Use a humidifier",
			"Keep room temperature moderate",
			"Ensure good ventilation",
			"Regular cleaning to reduce allergens",
		},
	},
}
