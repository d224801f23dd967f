package engine

import "time"

// TranscriptInfo is a fetched transcript held in the store.
type TranscriptInfo struct {
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Channel   string    `json:"channel"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}

// TranscriptDownloadInput is the input for transcript_download.
type TranscriptDownloadInput struct {
	YouTubeURL string `json:"youtube_url"`
	Language   string `json:"language,omitempty"`
}

// TranscriptDownloadOutput is the output for transcript_download.
type TranscriptDownloadOutput struct {
	VideoID    string `json:"video_id"`
	Title      string `json:"title"`
	Channel    string `json:"channel"`
	Transcript string `json:"transcript"`
	Stored     bool   `json:"stored"` // true when served from the in-memory store
}

// TranscriptListInput is the input for transcript_list.
type TranscriptListInput struct {
	Limit int `json:"limit,omitempty"`
}

// TranscriptListItem is one entry in the transcript_list output.
type TranscriptListItem struct {
	VideoID   string `json:"video_id"`
	Title     string `json:"title"`
	Channel   string `json:"channel"`
	Preview   string `json:"preview,omitempty"`
	FetchedAt string `json:"fetched_at"`
}

// TranscriptListOutput is the output for transcript_list.
type TranscriptListOutput struct {
	Transcripts []TranscriptListItem `json:"transcripts"`
	Total       int                  `json:"total"`
}
