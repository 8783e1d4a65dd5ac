//go:build !integration && !e2e

package ui

import (
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"signal9.de/certext/internal/domain"
	"signal9.de/certext/internal/testutil"
)

func TestFormatDurationParts(t *testing.T) {
	p := message.NewPrinter(language.BritishEnglish)

	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero", 0, "0 hours"},
		{"negative", -30 * time.Minute, "< 0 hours"},
		{"one hour", time.Hour, "1 hour"},
		{"several hours", 5 * time.Hour, "5 hours"},
		{"one day", 25 * time.Hour, "1 day (25 hours)"},
		{"two days", 48 * time.Hour, "2 days (48 hours)"},
		{"plain days", 90 * 24 * time.Hour, "90 days"},
		{"a year boundary", 365 * 24 * time.Hour, "365 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatDurationParts(tt.duration, p); got != tt.want {
				t.Errorf("formatDurationParts() = %q, want %q", got, tt.want)
			}
		})
	}

	t.Run("multiple years include year count", func(t *testing.T) {
		got := formatDurationParts(800*24*time.Hour, p)
		if !strings.Contains(got, "800 days") || !strings.Contains(got, "years)") {
			t.Errorf("formatDurationParts() = %q, want day and year counts", got)
		}
	})
}

func TestFormatCertExpiry(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		expiry time.Time
		want   string
	}{
		{"expired", now.Add(-48 * time.Hour), "✗"},
		{"expiring soon", now.Add(10 * 24 * time.Hour), "!"},
		{"healthy", now.Add(200 * 24 * time.Hour), "✓"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatCertExpiry(tt.expiry, now)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FormatCertExpiry() = %q, want symbol %q", got, tt.want)
			}
		})
	}
}

func TestJoinNonEmpty(t *testing.T) {
	got := joinNonEmpty([]string{"Example Corp"}, nil, []string{""}, []string{"DE"})
	if got != "Example Corp, DE" {
		t.Errorf("joinNonEmpty() = %q, want %q", got, "Example Corp, DE")
	}
	if joinNonEmpty(nil, nil) != "" {
		t.Error("joinNonEmpty() of empty lists should be empty")
	}
}

func TestIndentText(t *testing.T) {
	got := indentText("a\nb", "  ")
	if got != "  a\n  b" {
		t.Errorf("indentText() = %q", got)
	}
}

func TestPrintExtensions(t *testing.T) {
	exts := []domain.ExtensionDisplay{
		{Name: "basicConstraints", OID: "2.5.29.19", Critical: true, Value: "CA:TRUE"},
		{Name: "2.5.29.99", OID: "2.5.29.99", Critical: false, Value: "DE:AD"},
	}

	// Just exercise the render path; output formatting is not asserted.
	testutil.WithSilentOutput(t, func() {
		PrintExtensions(exts)
	})
}
