package coach

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
	"time"
)

type stubGenerator struct {
	reply  string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(_ context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.reply, s.err
}

func TestCleanRecommendations(t *testing.T) {
	reply := "**Hydrate:** Drink a glass of water every two hours.\n\n" +
		"Recommendation 2 (strengths): Keep your evening walks going.\n\n" +
		"   \n\n" +
		"(Balance): Go to bed at the same time every night.\n\n" +
		"Target area: sleep\nGet morning sunlight for ten minutes.\n\n" +
		"Never shown because three entries are kept."

	got := CleanRecommendations(reply)
	want := []string{
		"Drink a glass of water every two hours.",
		"Keep your evening walks going.",
		"Go to bed at the same time every night.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestCleanRecommendationsDropsDuplicates(t *testing.T) {
	reply := "Eat more vegetables with every meal.\n\n" +
		"EAT MORE VEGETABLES WITH EVERY MEAL.\n\n" +
		"Take a short walk after lunch."
	got := CleanRecommendations(reply)
	want := []string{"Eat more vegetables with every meal.", "Take a short walk after lunch."}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAdviceStripsHeader(t *testing.T) {
	gen := &stubGenerator{reply: "**Answer** Try box breathing for five minutes.  "}
	c := New(gen)
	c.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }

	rec, err := c.Advice(context.Background(), "How do I relax?", Metrics{Mood: 6, Exercise: 40})
	if err != nil {
		t.Fatalf("Advice: %v", err)
	}
	if rec.Tip != "Try box breathing for five minutes." {
		t.Errorf("tip = %q", rec.Tip)
	}
	if rec.Category != "Personalized Advice" || rec.Priority != "High" || !rec.IsPersonalized || rec.Query != "How do I relax?" {
		t.Errorf("rec = %+v", rec)
	}
	if !strings.Contains(gen.prompt, `"How do I relax?"`) || !strings.Contains(gen.prompt, "Mood: 6/10") {
		t.Errorf("prompt missing context: %s", gen.prompt)
	}
}

func TestInsightsPropagatesError(t *testing.T) {
	c := New(&stubGenerator{err: ErrNotConfigured})
	if _, err := c.Insights(context.Background(), Metrics{}); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}
}

func TestInsightsTagsEntries(t *testing.T) {
	c := New(&stubGenerator{reply: "Sleep eight hours.\n\nDrink water."})
	recs, err := c.Insights(context.Background(), Metrics{WaterIntake: 750})
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("len = %d, want 2", len(recs))
	}
	for _, r := range recs {
		if r.Category != "Health Insight" || r.Priority != "Medium" || !r.IsBase {
			t.Errorf("rec = %+v", r)
		}
	}
}

func TestGeminiClientGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody geminiRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Stay "},{"text":"active."}]}}]}`))
	}))
	defer srv.Close()

	c := NewGeminiClient(srv.URL+"/", "gemini-pro", "k123", GenerationConfig{Temperature: 0.7, TopK: 40, TopP: 0.95, MaxOutputTokens: 1024}, time.Second)
	got, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got != "Stay active." {
		t.Errorf("reply = %q", got)
	}
	if gotPath != "/models/gemini-pro:generateContent" || gotKey != "k123" {
		t.Errorf("path=%q key=%q", gotPath, gotKey)
	}
	if len(gotBody.Contents) != 1 || gotBody.Contents[0].Parts[0].Text != "hello" || gotBody.GenerationConfig.TopK != 40 {
		t.Errorf("body = %+v", gotBody)
	}
}

func TestGeminiClientErrors(t *testing.T) {
	c := NewGeminiClient("http://unused", "m", "", GenerationConfig{}, time.Second)
	if _, err := c.Generate(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("err = %v, want ErrNotConfigured", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":400,"message":"API key not valid"}}`))
	}))
	defer srv.Close()

	c = NewGeminiClient(srv.URL, "m", "bad", GenerationConfig{}, time.Second)
	_, err := c.Generate(context.Background(), "x")
	if err == nil || !strings.Contains(err.Error(), "invalid API key") {
		t.Errorf("err = %v, want invalid API key", err)
	}
}

func TestGeminiClientTransportErrorHidesKey(t *testing.T) {
	c := NewGeminiClient("http://127.0.0.1:1/v1beta", "gemini-pro", "SECRET-KEY-123", GenerationConfig{}, time.Second)
	_, err := c.Generate(context.Background(), "x")
	if err == nil {
		t.Fatal("expected connection error")
	}
	if strings.Contains(err.Error(), "SECRET-KEY-123") {
		t.Errorf("api key present in error: %v", err)
	}
	if !strings.Contains(err.Error(), "AI service error") {
		t.Errorf("err = %v, want AI service error", err)
	}
}
