package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_tube/internal/engine"
)

// ytOEmbedBase is a var so tests can point it at a local server.
var ytOEmbedBase = "https://www.youtube.com/oembed"

// VideoInfo is basic video metadata from YouTube's oEmbed endpoint.
type VideoInfo struct {
	Title   string
	Channel string
}

type oEmbedResp struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// FetchVideoInfo looks up title and channel for a video. Callers treat
// failure as non-fatal and fall back to "Unknown" placeholders.
func FetchVideoInfo(ctx context.Context, videoID string) (VideoInfo, error) {
	engine.IncrOEmbedRequest()

	params := url.Values{}
	params.Set("url", "https://www.youtube.com/watch?v="+videoID)
	params.Set("format", "json")

	resp, err := engine.RetryHTTP(ctx, engine.DefaultRetryConfig, func() (*http.Response, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ytOEmbedBase+"?"+params.Encode(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", engine.UserAgentBot)
		return engine.Cfg.HTTPClient.Do(req)
	})
	if err != nil {
		return VideoInfo{}, fmt.Errorf("oembed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return VideoInfo{}, fmt.Errorf("oembed: HTTP %d", resp.StatusCode)
	}

	var out oEmbedResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return VideoInfo{}, fmt.Errorf("oembed: decode: %w", err)
	}
	if out.Title == "" {
		out.Title = "Unknown"
	}
	if out.AuthorName == "" {
		out.AuthorName = "Unknown"
	}
	return VideoInfo{Title: out.Title, Channel: out.AuthorName}, nil
}
