package sources

// YouTube implementation is split across four files by responsibility:
//   videoid.go            — video ID extraction from URLs and bare IDs
//   youtube_innertube.go  — Innertube API types, constants, and low-level HTTP primitives
//   youtube_transcript.go — transcript fetching (watch page scrape, engagement
//                           panel, ANDROID player fallback)
//   youtube_oembed.go     — video title/channel metadata via the oEmbed endpoint
