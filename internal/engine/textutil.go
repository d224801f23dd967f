package engine

import (
	"strings"

	"github.com/anatolykoptev/go-kit/strutil"
	"golang.org/x/net/html"
)

// User-Agent strings used across HTTP clients.
const (
	UserAgentBot    = "GoTube/1.0"
	UserAgentChrome = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// CleanCaption strips markup from a caption line and decodes HTML entities.
// YouTube timedtext can carry <font>/<b> tags and double-escaped entities.
func CleanCaption(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.TrimSpace(s)
	}
	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(z.Text())
		}
	}
	out := sb.String()
	// A second pass catches &amp;#39; style double escaping.
	if strings.Contains(out, "&") {
		out = html.UnescapeString(out)
	}
	return strings.TrimSpace(out)
}

// Truncate returns the first n bytes of s.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

// Preview caps s at limit runes on a word boundary for list output.
func Preview(s string, limit int) string {
	return strutil.TruncateAtWord(strings.TrimSpace(s), limit)
}
