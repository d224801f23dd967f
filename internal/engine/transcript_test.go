package engine

import (
	"strings"
	"testing"
	"time"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "[00:00]"},
		{7 * time.Second, "[00:07]"},
		{65 * time.Second, "[01:05]"},
		{10*time.Minute + 30*time.Second, "[10:30]"},
		{75*time.Minute + 3*time.Second, "[75:03]"}, // minutes not wrapped at the hour
		{-time.Second, "[00:00]"},
	}
	for _, tt := range tests {
		if got := FormatTimestamp(tt.d); got != tt.want {
			t.Errorf("FormatTimestamp(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatTranscript(t *testing.T) {
	segs := []Segment{
		{Start: 0, Text: "hello"},
		{Start: 62 * time.Second, Text: "world"},
		{Start: 90 * time.Second, Text: ""},
	}
	got := FormatTranscript("dQw4w9WgXcQ", "Some Title", "Some Channel", segs)

	wantHeader := "Title: Some Title\nChannel: Some Channel\nVideo ID: dQw4w9WgXcQ\n\nTRANSCRIPT:\n"
	if !strings.HasPrefix(got, wantHeader) {
		t.Errorf("header mismatch:\n%q", got)
	}
	if !strings.Contains(got, "[00:00] hello\n") {
		t.Errorf("missing first line:\n%q", got)
	}
	if !strings.Contains(got, "[01:02] world\n") {
		t.Errorf("missing second line:\n%q", got)
	}
	if strings.Contains(got, "[01:30]") {
		t.Error("empty segment should be dropped")
	}
}
