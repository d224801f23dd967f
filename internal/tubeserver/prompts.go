package tubeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "summarize_transcript",
		Description: "Build a prompt asking the model to summarize a video's transcript.",
		Arguments: []*mcp.PromptArgument{
			{Name: "video_id", Description: "YouTube video ID or URL", Required: true},
		},
	}, getSummarizePrompt)

	server.AddPrompt(&mcp.Prompt{
		Name:        "highlight_new_information",
		Description: "Build a prompt asking the model to surface novel, unusual, or particularly insightful information about a topic from a video's transcript.",
		Arguments: []*mcp.PromptArgument{
			{Name: "video_id", Description: "YouTube video ID or URL", Required: true},
			{Name: "topic", Description: "Topic to analyze the transcript for", Required: true},
		},
	}, getHighlightPrompt)
}

// promptVideoID resolves the video_id prompt argument, accepting full URLs.
func promptVideoID(args map[string]string) (string, error) {
	raw := args["video_id"]
	if raw == "" {
		return "", errors.New("video_id argument is required")
	}
	return sources.ExtractVideoID(raw)
}

func getSummarizePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	engine.IncrPromptRequest()

	videoID, err := promptVideoID(req.Params.Arguments)
	if err != nil {
		return nil, err
	}
	info, _, err := fetchOrStored(ctx, videoID, "")
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: "Summarize the transcript of " + info.Title,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: engine.SummarizePrompt(info.Text)},
		}},
	}, nil
}

func getHighlightPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	engine.IncrPromptRequest()

	videoID, err := promptVideoID(req.Params.Arguments)
	if err != nil {
		return nil, err
	}
	topic := req.Params.Arguments["topic"]
	if topic == "" {
		return nil, errors.New("topic argument is required")
	}
	info, _, err := fetchOrStored(ctx, videoID, "")
	if err != nil {
		return nil, err
	}

	return &mcp.GetPromptResult{
		Description: "Highlight new information about " + topic + " in " + info.Title,
		Messages: []*mcp.PromptMessage{{
			Role:    "user",
			Content: &mcp.TextContent{Text: engine.HighlightPrompt(topic, info.Text)},
		}},
	}, nil
}
