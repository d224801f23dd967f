package sources

import (
	"fmt"
	"regexp"
	"strings"
)

// Accepted URL shapes: watch?v=, youtu.be/, shorts/, embed/, live/ on any
// youtube host variant, plus a bare 11-char video ID.
var (
	videoIDRE = regexp.MustCompile(`(?:youtube\.com/(?:watch\?(?:.*&)?v=|shorts/|embed/|live/)|youtu\.be/)([a-zA-Z0-9_-]{11})`)
	bareIDRE  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
)

// ExtractVideoID pulls the 11-char video ID from a YouTube URL, or accepts
// the ID itself.
func ExtractVideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if m := videoIDRE.FindStringSubmatch(raw); len(m) >= 2 {
		return m[1], nil
	}
	if bareIDRE.MatchString(raw) {
		return raw, nil
	}
	return "", fmt.Errorf("could not extract a YouTube video ID from %q", raw)
}
