package tubeserver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestGetSummarizePrompt(t *testing.T) {
	info := seedTranscript("promptAAAA1", "Prompt Video", "Prompt Channel", "[00:00] prompt caption\n", time.Now().UTC())

	res, err := getSummarizePrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "summarize_transcript",
			Arguments: map[string]string{"video_id": "promptAAAA1"},
		},
	})
	if err != nil {
		t.Fatalf("getSummarizePrompt error: %v", err)
	}

	if len(res.Messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(res.Messages))
	}
	tc, ok := res.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T, want *mcp.TextContent", res.Messages[0].Content)
	}
	if !strings.Contains(tc.Text, info.Text) {
		t.Error("stored transcript must appear verbatim in the prompt")
	}
	if !strings.Contains(res.Description, "Prompt Video") {
		t.Errorf("description = %q", res.Description)
	}
}

func TestGetSummarizePromptMissingArg(t *testing.T) {
	_, err := getSummarizePrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{Name: "summarize_transcript", Arguments: map[string]string{}},
	})
	if err == nil {
		t.Error("expected error when video_id is absent")
	}
}

func TestGetHighlightPrompt(t *testing.T) {
	info := seedTranscript("promptBBBB1", "Highlight Video", "Chan", "[00:00] highlight caption\n", time.Now().UTC())

	res, err := getHighlightPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name: "highlight_new_information",
			Arguments: map[string]string{
				"video_id": "https://youtu.be/promptBBBB1",
				"topic":    "distributed systems",
			},
		},
	})
	if err != nil {
		t.Fatalf("getHighlightPrompt error: %v", err)
	}

	tc, ok := res.Messages[0].Content.(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type %T", res.Messages[0].Content)
	}
	if !strings.Contains(tc.Text, info.Text) {
		t.Error("stored transcript must appear verbatim in the prompt")
	}
	if !strings.Contains(tc.Text, `"distributed systems"`) {
		t.Error("topic missing from prompt")
	}
}

func TestGetHighlightPromptMissingTopic(t *testing.T) {
	seedTranscript("promptCCCC1", "T", "C", "[00:00] x\n", time.Now().UTC())

	_, err := getHighlightPrompt(context.Background(), &mcp.GetPromptRequest{
		Params: &mcp.GetPromptParams{
			Name:      "highlight_new_information",
			Arguments: map[string]string{"video_id": "promptCCCC1"},
		},
	})
	if err == nil {
		t.Error("expected error when topic is absent")
	}
}
