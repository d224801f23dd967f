package tubeserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

func seedTranscript(videoID, title, channel, body string, fetchedAt time.Time) engine.TranscriptInfo {
	info := engine.TranscriptInfo{
		VideoID:   videoID,
		Title:     title,
		Channel:   channel,
		Text:      "Title: " + title + "\nChannel: " + channel + "\nVideo ID: " + videoID + "\n\nTRANSCRIPT:\n" + body,
		FetchedAt: fetchedAt,
	}
	engine.StorePut(info)
	return info
}

func TestFormatListingEmpty(t *testing.T) {
	got := formatListing(nil)
	if got != "No transcripts have been downloaded yet." {
		t.Errorf("empty listing = %q", got)
	}
}

func TestFormatListing(t *testing.T) {
	infos := []engine.TranscriptInfo{
		{VideoID: "dQw4w9WgXcQ", Title: "First Video", Channel: "Chan A"},
		{VideoID: "jNQXAC9IVRw", Title: "Second Video", Channel: "Chan B"},
	}
	got := formatListing(infos)

	for _, want := range []string{
		"Available Transcripts:",
		"1. First Video",
		"   Channel: Chan A",
		"   ID: dQw4w9WgXcQ",
		"2. Second Video",
		"   ID: jNQXAC9IVRw",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("listing missing %q:\n%s", want, got)
		}
	}
}

func TestListOutput(t *testing.T) {
	now := time.Now().UTC()
	seedTranscript("listAAAAAA1", "List Video", "List Channel", "[00:00] some caption text\n", now)

	out := listOutput(0)
	if out.Total < 1 {
		t.Fatalf("total = %d, want >= 1", out.Total)
	}

	var found *engine.TranscriptListItem
	for i := range out.Transcripts {
		if out.Transcripts[i].VideoID == "listAAAAAA1" {
			found = &out.Transcripts[i]
			break
		}
	}
	if found == nil {
		t.Fatal("seeded transcript missing from list output")
	}
	if found.Title != "List Video" || found.Channel != "List Channel" {
		t.Errorf("item = %+v", found)
	}
	if strings.Contains(found.Preview, "Title:") {
		t.Errorf("preview should not include the header, got %q", found.Preview)
	}
	if !strings.Contains(found.Preview, "some caption text") {
		t.Errorf("preview = %q, want caption text", found.Preview)
	}
}

func TestListOutputLimit(t *testing.T) {
	now := time.Now().UTC()
	seedTranscript("limAAAAAAA1", "A", "C", "[00:00] a\n", now)
	seedTranscript("limAAAAAAA2", "B", "C", "[00:00] b\n", now)

	out := listOutput(1)
	if len(out.Transcripts) != 1 {
		t.Errorf("len = %d, want 1", len(out.Transcripts))
	}
	if out.Total < 2 {
		t.Errorf("total = %d, want >= 2 (limit must not hide the count)", out.Total)
	}
}

func TestTranscriptBody(t *testing.T) {
	text := "Title: X\nChannel: Y\nVideo ID: Z\n\nTRANSCRIPT:\n[00:00] body line\n"
	if got := transcriptBody(text); got != "[00:00] body line\n" {
		t.Errorf("transcriptBody = %q", got)
	}
	if got := transcriptBody("no header"); got != "no header" {
		t.Errorf("transcriptBody without marker = %q", got)
	}
}

func TestFetchOrStoredUsesStore(t *testing.T) {
	info := seedTranscript("dQw4w9WgXcQ", "Stored Video", "Stored Channel", "[00:00] stored\n", time.Now().UTC())

	got, stored, err := fetchOrStored(context.Background(), "dQw4w9WgXcQ", "")
	if err != nil {
		t.Fatalf("fetchOrStored error: %v", err)
	}
	if !stored {
		t.Error("expected stored copy to be served")
	}
	if got.Text != info.Text {
		t.Errorf("text = %q, want stored text", got.Text)
	}
}
