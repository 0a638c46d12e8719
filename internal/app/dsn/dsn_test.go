package dsn

import (
	"strings"
	"testing"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME"} {
		t.Setenv(k, "")
	}
	got := FromEnv()
	want := "host=localhost port=5432 user=postgres password=postgres dbname=medicine_tracker sslmode=disable"
	if got != want {
		t.Errorf("FromEnv() = %q, want %q", got, want)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_NAME", "tracker")
	got := FromEnv()
	if !strings.Contains(got, "host=db.internal") || !strings.Contains(got, "dbname=tracker") {
		t.Errorf("FromEnv() = %q, overrides not applied", got)
	}
}

func TestDialectorSelectsDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", ":memory:")
	if name := Dialector().Name(); name != "sqlite" {
		t.Errorf("Dialector().Name() = %q, want sqlite", name)
	}

	t.Setenv("DB_DRIVER", "")
	if name := Dialector().Name(); name != "postgres" {
		t.Errorf("Dialector().Name() = %q, want postgres", name)
	}
}
