package fitness

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	DataTypeSteps     = "com.google.step_count.delta"
	DataTypeHeartRate = "com.google.heart_rate.bpm"
	DataTypeSleep     = "com.google.sleep.segment"

	SourceGoogleFit = "google_fit"
	SourceMock      = "mock"

	DefaultDays = 7
	MaxDays     = 30

	dateLayout = "2006-01-02"
)

// ErrUnavailable источник данных не настроен
var ErrUnavailable = errors.New("fitness source unavailable")

type Bucket struct {
	Date  string
	Value int64
}

// Source отдаёт дневные агрегаты одного типа данных
type Source interface {
	Aggregate(ctx context.Context, dataType string, start, end time.Time) ([]Bucket, error)
}

// Cache реализуется cache.RedisCache
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) error
	SetJSON(ctx context.Context, key string, value any) error
}

type DailyMetric struct {
	Date       string  `json:"date"`
	Steps      int64   `json:"steps"`
	HeartRate  int64   `json:"heart_rate"`
	SleepHours float64 `json:"sleep_hours"`
}

type Series struct {
	Source  string        `json:"source"`
	Warning string        `json:"warning,omitempty"`
	Days    []DailyMetric `json:"days"`
}

type Service struct {
	source  Source
	cache   Cache
	timeout time.Duration
	now     func() time.Time
}

// NewService source и cache могут быть nil
func NewService(source Source, cache Cache, timeout time.Duration) *Service {
	return &Service{
		source:  source,
		cache:   cache,
		timeout: timeout,
		now:     time.Now,
	}
}

// Daily возвращает шаги, пульс и сон по дням, от старых к новым.
// При любой ошибке источника отдаются сгенерированные данные с предупреждением.
func (s *Service) Daily(ctx context.Context, days int) Series {
	if days <= 0 {
		days = DefaultDays
	}
	if days > MaxDays {
		days = MaxDays
	}

	end := s.now()
	key := fmt.Sprintf("metrics:%d:%s", days, end.Format(dateLayout))

	if s.cache != nil {
		var cached Series
		if err := s.cache.GetJSON(ctx, key, &cached); err == nil {
			return cached
		}
	}

	series, err := s.fetch(ctx, end.AddDate(0, 0, -days), end)
	if err != nil {
		log.WithError(err).Warn("fitness data unavailable, using mock data")
		return Series{
			Source:  SourceMock,
			Warning: "Failed to load fitness data. Using mock data instead.",
			Days:    MockDays(end, days),
		}
	}

	if s.cache != nil {
		if err := s.cache.SetJSON(ctx, key, series); err != nil {
			log.WithError(err).Warn("failed to cache fitness data")
		}
	}
	return series
}

func (s *Service) fetch(ctx context.Context, start, end time.Time) (Series, error) {
	if s.source == nil {
		return Series{}, ErrUnavailable
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	var steps, heart, sleep []Bucket
	g, gctx := errgroup.WithContext(ctx)
	for _, job := range []struct {
		dataType string
		dst      *[]Bucket
	}{
		{DataTypeSteps, &steps},
		{DataTypeHeartRate, &heart},
		{DataTypeSleep, &sleep},
	} {
		job := job
		g.Go(func() error {
			buckets, err := s.source.Aggregate(gctx, job.dataType, start, end)
			if err != nil {
				return fmt.Errorf("aggregate %s: %w", job.dataType, err)
			}
			*job.dst = buckets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Series{}, err
	}

	return Series{Source: SourceGoogleFit, Days: Combine(steps, heart, sleep)}, nil
}

// Combine объединяет ряды по датам шагов; сон переводится из миллисекунд в часы
func Combine(steps, heart, sleep []Bucket) []DailyMetric {
	heartByDate := indexByDate(heart)
	sleepByDate := indexByDate(sleep)

	out := make([]DailyMetric, 0, len(steps))
	for _, st := range steps {
		out = append(out, DailyMetric{
			Date:       st.Date,
			Steps:      st.Value,
			HeartRate:  heartByDate[st.Date],
			SleepHours: float64(sleepByDate[st.Date]) / float64(time.Hour/time.Millisecond),
		})
	}
	return out
}

func indexByDate(buckets []Bucket) map[string]int64 {
	m := make(map[string]int64, len(buckets))
	for _, b := range buckets {
		if _, seen := m[b.Date]; !seen {
			m[b.Date] = b.Value
		}
	}
	return m
}

// MockDays генерирует заглушку, заканчивающуюся датой end
func MockDays(end time.Time, days int) []DailyMetric {
	out := make([]DailyMetric, days)
	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -(days - 1 - i))
		out[i] = DailyMetric{
			Date:       date.Format(dateLayout),
			Steps:      int64(rand.IntN(10000)),
			HeartRate:  int64(rand.IntN(40) + 60),
			SleepHours: float64(rand.IntN(4) + 4),
		}
	}
	return out
}
