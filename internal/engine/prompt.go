package engine

import "fmt"

// Prompt templates — data only, no logic.

// summarizePrompt asks for a structured summary of one transcript.
// Args: transcript text.
const summarizePrompt = `Please provide a concise summary of this YouTube video transcript.
Focus on the main topics, key points, and conclusions.
Structure your summary with an introduction, main points, and conclusion.

Please use the following transcript as your source:

%s`

// highlightPrompt asks for novel or unusual information about a topic.
// Args: topic, transcript text.
const highlightPrompt = `Please analyze this YouTube video transcript and highlight any new,
unusual, or particularly insightful information about %q.

Focus on:
1. Information that contradicts conventional wisdom
2. Novel approaches or perspectives
3. Surprising facts or statistics
4. Cutting-edge research or developments
5. Unique insights from the speaker's experience

For each point, explain why it's significant or how it differs from common knowledge.

Please use the following transcript as your source:

%s`

// SummarizePrompt builds the summarize_transcript prompt. The transcript is
// interpolated verbatim, never truncated.
func SummarizePrompt(transcript string) string {
	return fmt.Sprintf(summarizePrompt, transcript)
}

// HighlightPrompt builds the highlight_new_information prompt for topic.
func HighlightPrompt(topic, transcript string) string {
	return fmt.Sprintf(highlightPrompt, topic, transcript)
}
