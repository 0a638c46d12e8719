package analysis

import (
	"reflect"
	"strings"
	"testing"
)

func ptr(v float64) *float64 { return &v }

func TestMaxPossibleScore(t *testing.T) {
	if maxPossibleScore != 272 {
		t.Errorf("maxPossibleScore = %d, want 272", maxPossibleScore)
	}
}

func TestScoreSeverityCriticalPhrases(t *testing.T) {
	got := ScoreSeverity("I have chest pain and difficulty breathing", nil)

	if len(got.DetectedSymptoms) != 2 {
		t.Fatalf("detected = %+v, want 2 entries", got.DetectedSymptoms)
	}
	for i, name := range []string{"chest pain", "difficulty breathing"} {
		d := got.DetectedSymptoms[i]
		if d.Name != name || d.Severity != SeverityCritical || d.Weight != 25 {
			t.Errorf("detected[%d] = %+v", i, d)
		}
	}
	if got.Score >= 50 {
		t.Errorf("score = %v, must stay below 50", got.Score)
	}
	if got.Score != 9.19 {
		t.Errorf("score = %v, want 9.19", got.Score)
	}
	if got.RiskLevel != TierLow {
		t.Errorf("risk = %s, want Low", got.RiskLevel)
	}
	if got.Confidence != 94 {
		t.Errorf("confidence = %d, want 94", got.Confidence)
	}
}

func TestScoreSeverityMinorOnly(t *testing.T) {
	got := ScoreSeverity("mild fever, fatigue", nil)
	total := 0
	for _, d := range got.DetectedSymptoms {
		total += d.Weight
		if d.Severity != SeverityMinor {
			t.Errorf("%s tier = %s, want minor", d.Name, d.Severity)
		}
	}
	if total > 10 {
		t.Errorf("raw points = %d, want <= 10", total)
	}
	if got.Score != 1.29 {
		t.Errorf("score = %v, want 1.29", got.Score)
	}
	if got.RiskLevel != TierLow {
		t.Errorf("risk = %s, want Low", got.RiskLevel)
	}
}

func TestScoreSeverityCapAndTiers(t *testing.T) {
	var critical, all []string
	for _, cat := range severityCategories {
		for _, p := range cat.phrases {
			all = append(all, p.phrase)
			if cat.tier == SeverityCritical {
				critical = append(critical, p.phrase)
			}
		}
	}

	got := ScoreSeverity(strings.Join(critical, ", "), nil)
	if got.Score != 26.65 || got.RiskLevel != TierMild {
		t.Errorf("all critical: score=%v risk=%s, want 26.65 Mild", got.Score, got.RiskLevel)
	}

	got = ScoreSeverity(strings.Join(all, ", "), &VitalSigns{
		Temperature:      ptr(41),
		HeartRate:        ptr(170),
		OxygenSaturation: ptr(80),
	})
	if got.Score != MaxSeverityScore {
		t.Errorf("everything: score=%v, want %v", got.Score, MaxSeverityScore)
	}
	if got.RiskLevel != TierModerate {
		t.Errorf("everything: risk=%s, want Moderate", got.RiskLevel)
	}
	if got.Confidence != 99 {
		t.Errorf("confidence = %d, want capped 99", got.Confidence)
	}
}

func TestScoreSeverityVitals(t *testing.T) {
	tests := []struct {
		name     string
		vitals   VitalSigns
		wantName string
		wantW    int
		wantTier SeverityTier
	}{
		{"low temperature", VitalSigns{Temperature: ptr(36)}, "Abnormal Temperature", 5, SeverityModerate},
		{"slight fever", VitalSigns{Temperature: ptr(38)}, "Abnormal Temperature", 8, SeverityModerate},
		{"fever lower bound", VitalSigns{Temperature: ptr(38.5)}, "Abnormal Temperature", 15, SeverityCritical},
		{"hyperthermia", VitalSigns{Temperature: ptr(40)}, "Abnormal Temperature", 25, SeverityCritical},
		{"bradycardia", VitalSigns{HeartRate: ptr(50)}, "Abnormal Heart Rate", 5, SeverityModerate},
		{"tachycardia", VitalSigns{HeartRate: ptr(130)}, "Abnormal Heart Rate", 15, SeverityCritical},
		{"low saturation", VitalSigns{OxygenSaturation: ptr(92)}, "Abnormal Oxygen Saturation", 8, SeverityModerate},
		{"hypoxia", VitalSigns{OxygenSaturation: ptr(84)}, "Abnormal Oxygen Saturation", 25, SeverityCritical},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreSeverity("", &tt.vitals)
			if len(got.DetectedSymptoms) != 1 {
				t.Fatalf("detected = %+v, want 1", got.DetectedSymptoms)
			}
			d := got.DetectedSymptoms[0]
			if d.Name != tt.wantName || d.Weight != tt.wantW || d.Severity != tt.wantTier {
				t.Errorf("got %+v", d)
			}
			if d.Value == nil {
				t.Errorf("reading value not recorded")
			}
		})
	}
}

func TestScoreSeverityNormalVitals(t *testing.T) {
	got := ScoreSeverity("feeling fine", &VitalSigns{
		Temperature:      ptr(37),
		HeartRate:        ptr(72),
		OxygenSaturation: ptr(98),
	})
	if len(got.DetectedSymptoms) != 0 || got.Score != 0 {
		t.Errorf("normal readings scored: %+v", got)
	}
	if got.Confidence != 90 {
		t.Errorf("confidence = %d, want 90", got.Confidence)
	}
}

func TestScoreSeverityProperties(t *testing.T) {
	inputs := []string{
		"",
		"CHEST PAIN",
		"seizure, stroke symptoms, loss of consciousness, head injury",
		"moderate fever and dizziness with a persistent cough",
		"nausea",
	}
	for _, in := range inputs {
		for _, v := range []*VitalSigns{nil, {Temperature: ptr(39)}, {OxygenSaturation: ptr(10), HeartRate: ptr(199)}} {
			got := ScoreSeverity(in, v)
			if got.Score < 0 || got.Score > MaxSeverityScore {
				t.Errorf("%q: score %v out of range", in, got.Score)
			}
			want := TierLow
			if got.Score >= 40 {
				want = TierModerate
			} else if got.Score >= 25 {
				want = TierMild
			}
			if got.RiskLevel != want {
				t.Errorf("%q: risk %s, want %s for score %v", in, got.RiskLevel, want, got.Score)
			}
			if again := ScoreSeverity(in, v); !reflect.DeepEqual(got, again) {
				t.Errorf("%q: not idempotent", in)
			}
		}
	}
}

func TestAnalyzeCombinesIndependentResults(t *testing.T) {
	text := "severe headache, nausea, light sensitivity"
	r := Analyze(text, nil)
	if !reflect.DeepEqual(r.PossibleConditions, MatchConditions(text)) {
		t.Errorf("conditions differ from MatchConditions")
	}
	if !reflect.DeepEqual(r.Severity, ScoreSeverity(text, nil)) {
		t.Errorf("severity differs from ScoreSeverity")
	}
	if len(r.Recommendations.Medications) != 3 || len(r.Recommendations.Lifestyle) != 4 {
		t.Errorf("unexpected static recommendations: %+v", r.Recommendations)
	}
}
