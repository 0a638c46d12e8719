package storage

import (
	"regexp"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Vitamin D3", "vitamin-d3"},
		{"  Ибупрофен 400 ", "400"},
		{"___", "file"},
		{"Cold & Flu (Night)", "cold---flu--night"},
	}
	for _, tt := range tests {
		if got := sanitizeFileName(tt.in); got != tt.want {
			t.Errorf("sanitizeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestObjectKey(t *testing.T) {
	re := regexp.MustCompile(`^aspirin-[0-9a-f]{8}\.png$`)
	if key := objectKey("Aspirin", "Label.PNG"); !re.MatchString(key) {
		t.Errorf("objectKey = %q", key)
	}
	if key := objectKey("Aspirin", "label"); !regexp.MustCompile(`\.bin$`).MatchString(key) {
		t.Errorf("objectKey without ext = %q", key)
	}
}

func TestPublicURL(t *testing.T) {
	m := &MinIO{bucket: "medications", publicBase: "http://127.0.0.1:9000"}
	if got := m.PublicURL("a.png"); got != "http://127.0.0.1:9000/medications/a.png" {
		t.Errorf("PublicURL = %q", got)
	}
	if got := m.PublicURL(""); got != "" {
		t.Errorf("PublicURL(\"\") = %q, want empty", got)
	}
}
