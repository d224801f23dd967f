package tubeserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	transcriptURIPrefix = "transcript://"
	transcriptListURI   = "transcripts://list"
)

func registerResources(server *mcp.Server) {
	server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: "transcript://{videoId}",
		Name:        "transcript",
		Description: "Caption transcript of a single YouTube video, fetched on first read and then served from memory.",
		MIMEType:    "text/plain",
	}, readTranscript)

	server.AddResource(&mcp.Resource{
		URI:         transcriptListURI,
		Name:        "transcript-list",
		Description: "All transcripts downloaded in this session.",
		MIMEType:    "text/plain",
	}, readTranscriptList)
}

func readTranscript(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	engine.IncrResourceRead()

	raw := strings.TrimPrefix(req.Params.URI, transcriptURIPrefix)
	if raw == "" || raw == req.Params.URI {
		return nil, fmt.Errorf("unsupported resource URI %q", req.Params.URI)
	}
	videoID, err := sources.ExtractVideoID(raw)
	if err != nil {
		return nil, err
	}

	info, _, err := fetchOrStored(ctx, videoID, "")
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     info.Text,
		}},
	}, nil
}

func readTranscriptList(_ context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	engine.IncrResourceRead()

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     formatListing(engine.StoreList()),
		}},
	}, nil
}
