package analysis

// knowledgeTable не изменяется после инициализации пакета
var knowledgeTable = []ConditionEntry{
	{
		Name: "Common Cold",
		Symptoms: []string{
			"runny nose", "sore throat", "cough", "congestion",
			"sneezing", "mild fever", "fatigue", "headache",
		},
		Urgency:  TierLow,
		Duration: "7-10 days",
	},
	{
		Name: "Seasonal Allergies",
		Symptoms: []string{
			"sneezing", "itchy eyes", "nasal congestion", "runny nose",
			"watery eyes", "itchy throat", "itchy nose", "postnasal drip",
		},
		Urgency:  TierLow,
		Duration: "Varies with season",
	},
	{
		Name: "Influenza (Flu)",
		Symptoms: []string{
			"high fever", "body aches", "severe fatigue", "dry cough", "headache",
			"chills", "sore throat", "muscle pain", "weakness",
		},
		Urgency:  TierMedium,
		Duration: "7-14 days",
	},
	{
		Name: "Migraine",
		Symptoms: []string{
			"severe headache", "throbbing pain", "nausea", "light sensitivity",
			"sound sensitivity", "visual aura", "dizziness", "vomiting",
		},
		Urgency:  TierMedium,
		Duration: "4-72 hours",
	},
	{
		Name: "Sinusitis",
		Symptoms: []string{
			"facial pressure", "nasal congestion", "thick nasal discharge", "reduced smell",
			"headache", "tooth pain", "ear pressure", "fatigue",
		},
		Urgency:  TierLow,
		Duration: "10-14 days",
	},
	{
		Name: "Gastroenteritis",
		Symptoms: []string{
			"nausea", "vomiting", "diarrhea", "stomach cramps",
			"mild fever", "headache", "loss of appetite", "dehydration",
		},
		Urgency:  TierMedium,
		Duration: "1-3 days",
	},
	{
		Name: "Tension Headache",
		Symptoms: []string{
			"dull headache", "pressure around head", "neck pain", "shoulder pain",
			"stress", "anxiety", "difficulty sleeping", "irritability",
		},
		Urgency:  TierLow,
		Duration: "30 minutes to several hours",
	},
	{
		Name: "Acid Reflux",
		Symptoms: []string{
			"heartburn", "chest pain", "difficulty swallowing", "regurgitation",
			"sour taste", "burning sensation", "throat irritation", "cough",
		},
		Urgency:  TierLow,
		Duration: "Varies with diet and lifestyle",
	},
	{
		Name: "Food Poisoning",
		Symptoms: []string{
			"nausea", "vomiting", "diarrhea", "stomach pain", "fever",
			"weakness", "headache", "dehydration", "loss of appetite",
		},
		Urgency:  TierMedium,
		Duration: "24-48 hours",
	},
	{
		Name: "Bronchitis",
		Symptoms: []string{
			"persistent cough", "chest congestion", "wheezing", "shortness of breath",
			"fatigue", "mild fever", "chest discomfort", "mucus production",
		},
		Urgency:  TierMedium,
		Duration: "10-14 days",
	},
}

// Conditions возвращает копию таблицы заболеваний
func Conditions() []ConditionEntry {
	out := make([]ConditionEntry, len(knowledgeTable))
	for i, c := range knowledgeTable {
		c.Symptoms = append([]string(nil), c.Symptoms...)
		out[i] = c
	}
	return out
}
