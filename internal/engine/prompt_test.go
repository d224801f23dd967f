package engine

import (
	"strings"
	"testing"
)

const sampleTranscript = "Title: T\nChannel: C\nVideo ID: dQw4w9WgXcQ\n\nTRANSCRIPT:\n[00:00] hello there\n[00:05] general kenobi\n"

func TestSummarizePromptInterpolation(t *testing.T) {
	got := SummarizePrompt(sampleTranscript)

	if !strings.Contains(got, sampleTranscript) {
		t.Error("transcript must appear verbatim in the summarize prompt")
	}
	if !strings.Contains(got, "concise summary") {
		t.Error("summarize instruction missing")
	}
}

func TestHighlightPromptInterpolation(t *testing.T) {
	got := HighlightPrompt("quantum computing", sampleTranscript)

	if !strings.Contains(got, sampleTranscript) {
		t.Error("transcript must appear verbatim in the highlight prompt")
	}
	if !strings.Contains(got, `"quantum computing"`) {
		t.Error("topic must be quoted into the highlight prompt")
	}
	if !strings.Contains(got, "contradicts conventional wisdom") {
		t.Error("highlight instruction missing")
	}
}
