package tubeserver

import (
	"context"
	"errors"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func registerTranscriptDownload(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transcript_download",
		Description: "Download the caption transcript of a YouTube video by URL or 11-char video ID. Returns the transcript as [MM:SS]-timestamped lines under a title/channel header. Transcripts stay in memory for this session; repeat calls return the stored copy.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input engine.TranscriptDownloadInput) (*mcp.CallToolResult, engine.TranscriptDownloadOutput, error) {
		if input.YouTubeURL == "" {
			return nil, engine.TranscriptDownloadOutput{}, errors.New("youtube_url is required")
		}

		videoID, err := sources.ExtractVideoID(input.YouTubeURL)
		if err != nil {
			return nil, engine.TranscriptDownloadOutput{}, err
		}

		info, stored, err := fetchOrStored(ctx, videoID, input.Language)
		if err != nil {
			return nil, engine.TranscriptDownloadOutput{}, err
		}

		return nil, engine.TranscriptDownloadOutput{
			VideoID:    info.VideoID,
			Title:      info.Title,
			Channel:    info.Channel,
			Transcript: info.Text,
			Stored:     stored,
		}, nil
	})
}

func registerTranscriptList(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transcript_list",
		Description: "List transcripts downloaded in this session, most recent first. Returns video IDs, titles, channels, and a short preview of each transcript.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(_ context.Context, _ *mcp.CallToolRequest, input engine.TranscriptListInput) (*mcp.CallToolResult, engine.TranscriptListOutput, error) {
		return nil, listOutput(input.Limit), nil
	})
}
