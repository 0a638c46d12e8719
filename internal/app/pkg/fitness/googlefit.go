package fitness

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"google.golang.org/api/fitness/v1"
	"google.golang.org/api/option"
)

const dayMillis = int64(24 * time.Hour / time.Millisecond)

// GoogleFit читает агрегированные данные авторизованного пользователя
type GoogleFit struct {
	svc *fitness.Service
}

func NewGoogleFit(ctx context.Context, opts ...option.ClientOption) (*GoogleFit, error) {
	opts = append([]option.ClientOption{
		option.WithScopes(
			fitness.FitnessActivityReadScope,
			fitness.FitnessHeartRateReadScope,
			fitness.FitnessSleepReadScope,
		),
	}, opts...)

	svc, err := fitness.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("google fit client: %w", err)
	}
	return &GoogleFit{svc: svc}, nil
}

// ClientOptionsFromEnv берёт ключ из GOOGLE_APPLICATION_CREDENTIALS(_JSON); nil если не задан
func ClientOptionsFromEnv() []option.ClientOption {
	creds := strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS_JSON"))
	if creds == "" {
		creds = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}
	if creds == "" {
		return nil
	}
	if strings.HasPrefix(creds, "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(creds))}
	}
	return []option.ClientOption{option.WithCredentialsFile(creds)}
}

func (g *GoogleFit) Aggregate(ctx context.Context, dataType string, start, end time.Time) ([]Bucket, error) {
	req := &fitness.AggregateRequest{
		AggregateBy:     []*fitness.AggregateBy{{DataTypeName: dataType}},
		StartTimeMillis: start.UnixMilli(),
		EndTimeMillis:   end.UnixMilli(),
		BucketByTime:    &fitness.BucketByTime{DurationMillis: dayMillis},
	}
	resp, err := g.svc.Users.Dataset.Aggregate("me", req).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	out := make([]Bucket, 0, len(resp.Bucket))
	for _, b := range resp.Bucket {
		out = append(out, Bucket{
			Date:  time.UnixMilli(b.StartTimeMillis).UTC().Format(dateLayout),
			Value: firstValue(b),
		})
	}
	return out, nil
}

// firstValue первая точка первого набора, 0 если данных нет
func firstValue(b *fitness.AggregateBucket) int64 {
	if len(b.Dataset) == 0 || len(b.Dataset[0].Point) == 0 || len(b.Dataset[0].Point[0].Value) == 0 {
		return 0
	}
	v := b.Dataset[0].Point[0].Value[0]
	if v.IntVal != 0 {
		return v.IntVal
	}
	return int64(math.Round(v.FpVal))
}
