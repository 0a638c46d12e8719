package coach

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
)

const maxInsights = 3

// Generator реализуется GeminiClient
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Metrics показатели самочувствия; проценты от 0 до 100
type Metrics struct {
	Mood           int `json:"mood"`
	WaterIntake    int `json:"water_intake"`
	Exercise       int `json:"exercise"`
	MentalWellness int `json:"mental_wellness"`
	Nutrition      int `json:"nutrition"`
}

type Recommendation struct {
	Category       string    `json:"category"`
	Tip            string    `json:"tip"`
	Priority       string    `json:"priority"`
	Timestamp      time.Time `json:"timestamp"`
	Query          string    `json:"query,omitempty"`
	IsPersonalized bool      `json:"is_personalized,omitempty"`
	IsBase         bool      `json:"is_base,omitempty"`
}

type Coach struct {
	gen Generator
	now func() time.Time
}

func New(gen Generator) *Coach {
	return &Coach{gen: gen, now: time.Now}
}

// Advice отвечает на вопрос пользователя с учётом показателей
func (c *Coach) Advice(ctx context.Context, query string, m Metrics) (Recommendation, error) {
	prompt := fmt.Sprintf(`Provide a single, direct response to this health query: "%s"

      Current metrics:
      - Mood: %d/10
      - Exercise: %d%%
      - Mental wellness: %d%%
      - Nutrition: %d%%

      Important:
      - Provide direct, actionable advice
      - Do not use any prefixes or headers
      - Write as a clear, single paragraph
      - Focus on the specific question asked`, query, m.Mood, m.Exercise, m.MentalWellness, m.Nutrition)

	reply, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return Recommendation{}, err
	}

	return Recommendation{
		Category:       "Personalized Advice",
		Tip:            strings.TrimSpace(boldHeader.ReplaceAllString(reply, "")),
		Priority:       "High",
		Timestamp:      c.now().UTC(),
		Query:          query,
		IsPersonalized: true,
	}, nil
}

func (c *Coach) Insights(ctx context.Context, m Metrics) ([]Recommendation, error) {
	prompt := fmt.Sprintf(`Based on these health metrics, provide exactly 3 unique health recommendations:

      Current Status:
      - Mood: %d/10
      - Water intake: %d/2000ml
      - Exercise: %d%%
      - Mental Wellness: %d%%
      - Nutrition: %d%%

      Provide 3 unique recommendations focusing on:
      1. The metric needing most improvement
      2. Maintaining current strengths
      3. Overall health balance

      Important:
      - Write each recommendation as a direct statement
      - Do not include any prefixes, numbers, or labels
      - Do not use "Recommendation:" or similar headers
      - Each piece of advice must be completely different
      - Focus on practical, actionable advice`, m.Mood, m.WaterIntake, m.Exercise, m.MentalWellness, m.Nutrition)

	reply, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	ts := c.now().UTC()
	tips := CleanRecommendations(reply)
	out := make([]Recommendation, 0, len(tips))
	for _, tip := range tips {
		out = append(out, Recommendation{
			Category:  "Health Insight",
			Tip:       tip,
			Priority:  "Medium",
			Timestamp: ts,
			IsBase:    true,
		})
	}
	return out, nil
}

var (
	boldHeader     = regexp.MustCompile(`^\*\*.*?\*\*`)
	numberedHeader = regexp.MustCompile(`(?i)^Recommendation \d+.*?:`)
	parenLabel     = regexp.MustCompile(`^\(.*?\):`)
	targetArea     = regexp.MustCompile(`(?i)^Target area:.*?\n`)
)

// CleanRecommendations делит ответ по пустым строкам, убирает заголовки
// и почти одинаковые советы, оставляет не больше трёх.
func CleanRecommendations(reply string) []string {
	var cleaned []string
	for _, block := range strings.Split(reply, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		rec := boldHeader.ReplaceAllString(block, "")
		rec = numberedHeader.ReplaceAllString(rec, "")
		rec = parenLabel.ReplaceAllString(rec, "")
		rec = targetArea.ReplaceAllString(rec, "")
		cleaned = append(cleaned, strings.TrimSpace(rec))
	}

	// дубликат: первые 50 символов уже встречались в предыдущем совете
	out := make([]string, 0, maxInsights)
	for i, rec := range cleaned {
		prefix := strings.ToLower(firstRunes(rec, 50))
		first := -1
		for j, other := range cleaned {
			if strings.Contains(strings.ToLower(other), prefix) {
				first = j
				break
			}
		}
		if first == i {
			out = append(out, rec)
		}
		if len(out) == maxInsights {
			break
		}
	}
	return out
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}
