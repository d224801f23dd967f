package tubeserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestReadTranscriptResource(t *testing.T) {
	info := seedTranscript("resAAAAAAA1", "Resource Video", "Resource Channel", "[00:00] resource caption\n", time.Now().UTC())

	res, err := readTranscript(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "transcript://resAAAAAAA1"},
	})
	if err != nil {
		t.Fatalf("readTranscript error: %v", err)
	}

	if len(res.Contents) != 1 {
		t.Fatalf("expected 1 content, got %d", len(res.Contents))
	}
	c := res.Contents[0]
	if c.URI != "transcript://resAAAAAAA1" {
		t.Errorf("uri = %q", c.URI)
	}
	if c.MIMEType != "text/plain" {
		t.Errorf("mime = %q", c.MIMEType)
	}
	if c.Text != info.Text {
		t.Errorf("text = %q, want stored transcript", c.Text)
	}
}

func TestReadTranscriptResourceBadURI(t *testing.T) {
	for _, uri := range []string{"transcript://", "bogus://resAAAAAAA1", "transcript://not-an-id!"} {
		if _, err := readTranscript(context.Background(), &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: uri},
		}); err == nil {
			t.Errorf("expected error for URI %q", uri)
		}
	}
}

func TestReadTranscriptListResource(t *testing.T) {
	seedTranscript("resBBBBBBB1", "Listed Video", "Listed Channel", "[00:00] x\n", time.Now().UTC())

	res, err := readTranscriptList(context.Background(), &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "transcripts://list"},
	})
	if err != nil {
		t.Fatalf("readTranscriptList error: %v", err)
	}

	text := res.Contents[0].Text
	if !strings.Contains(text, "Listed Video") || !strings.Contains(text, "resBBBBBBB1") {
		t.Errorf("listing missing seeded entry:\n%s", text)
	}
}
