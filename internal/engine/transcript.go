package engine

import (
	"fmt"
	"strings"
	"time"
)

// Segment is one caption line with its start offset into the video.
type Segment struct {
	Start time.Duration
	Text  string
}

// FormatTimestamp renders an offset as [MM:SS]. Minutes are not wrapped at
// the hour, so a segment at 1h15m3s renders as [75:03].
func FormatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("[%02d:%02d]", total/60, total%60)
}

// FormatTranscript renders the stored transcript text: a title/channel/ID
// header followed by one timestamped line per segment.
func FormatTranscript(videoID, title, channel string, segs []Segment) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title: %s\n", title)
	fmt.Fprintf(&sb, "Channel: %s\n", channel)
	fmt.Fprintf(&sb, "Video ID: %s\n\n", videoID)
	sb.WriteString("TRANSCRIPT:\n")
	for _, s := range segs {
		if s.Text == "" {
			continue
		}
		sb.WriteString(FormatTimestamp(s.Start))
		sb.WriteByte(' ')
		sb.WriteString(s.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}
