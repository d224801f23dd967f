package tubeserver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/anatolykoptev/go_tube/internal/engine"
	"github.com/anatolykoptev/go_tube/internal/engine/sources"
)

// fetchOrStored returns the stored transcript for videoID, fetching and
// storing it on first request. stored reports whether the in-memory copy was
// served. lang, when non-empty, is prepended to the configured language
// preferences for this fetch only.
func fetchOrStored(ctx context.Context, videoID, lang string) (engine.TranscriptInfo, bool, error) {
	if info, ok := engine.StoreGet(videoID); ok {
		slog.Info("transcript: returning stored copy", slog.String("id", videoID))
		return info, true, nil
	}

	slog.Info("transcript: downloading", slog.String("id", videoID))

	langs := engine.Cfg.Languages
	if lang != "" {
		langs = append([]string{lang}, langs...)
	}

	fetchCtx := ctx
	if engine.Cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, engine.Cfg.FetchTimeout)
		defer cancel()
	}

	segs, err := sources.FetchTranscript(fetchCtx, videoID, langs)
	if err != nil {
		return engine.TranscriptInfo{}, false, fmt.Errorf("transcript unavailable for %s: %w", videoID, err)
	}

	title, channel := "Unknown", "Unknown"
	if vi, err := sources.FetchVideoInfo(fetchCtx, videoID); err == nil {
		title, channel = vi.Title, vi.Channel
	} else {
		slog.Debug("transcript: oembed lookup failed", slog.String("id", videoID), slog.Any("err", err))
	}

	info := engine.TranscriptInfo{
		VideoID:   videoID,
		Title:     title,
		Channel:   channel,
		Text:      engine.FormatTranscript(videoID, title, channel, segs),
		FetchedAt: time.Now().UTC(),
	}
	engine.StorePut(info)
	return info, false, nil
}

// formatListing renders the stored transcripts as a human-readable list for
// the transcripts://list resource.
func formatListing(infos []engine.TranscriptInfo) string {
	if len(infos) == 0 {
		return "No transcripts have been downloaded yet."
	}
	var sb strings.Builder
	sb.WriteString("Available Transcripts:\n\n")
	for i, info := range infos {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, info.Title)
		fmt.Fprintf(&sb, "   Channel: %s\n", info.Channel)
		fmt.Fprintf(&sb, "   ID: %s\n", info.VideoID)
	}
	return sb.String()
}

// listOutput builds the structured transcript_list result.
func listOutput(limit int) engine.TranscriptListOutput {
	infos := engine.StoreList()
	total := len(infos)
	if limit > 0 && len(infos) > limit {
		infos = infos[:limit]
	}

	items := make([]engine.TranscriptListItem, 0, len(infos))
	for _, info := range infos {
		items = append(items, engine.TranscriptListItem{
			VideoID:   info.VideoID,
			Title:     info.Title,
			Channel:   info.Channel,
			Preview:   engine.Preview(transcriptBody(info.Text), 160),
			FetchedAt: info.FetchedAt.Format(time.RFC3339),
		})
	}
	return engine.TranscriptListOutput{Transcripts: items, Total: total}
}

// transcriptBody strips the title/channel/ID header so previews show caption
// text rather than metadata.
func transcriptBody(text string) string {
	const marker = "TRANSCRIPT:\n"
	if idx := strings.Index(text, marker); idx >= 0 {
		return text[idx+len(marker):]
	}
	return text
}
