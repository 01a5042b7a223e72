package quizgen

import "strings"

// cleanJSONResponse strips reasoning blocks and Markdown fences from a model
// answer and narrows it to the outermost JSON object. When no object is
// found the cleaned text is returned as is and will fail to parse.
func cleanJSONResponse(raw string) string {
	s := stripThinkBlocks(raw)
	s = stripCodeFences(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

// stripThinkBlocks removes every <think>...</think> block. An unterminated
// block swallows the rest of the text.
func stripThinkBlocks(s string) string {
	for {
		start := strings.Index(s, "<think>")
		if start == -1 {
			return strings.TrimSpace(s)
		}
		end := strings.Index(s[start:], "</think>")
		if end == -1 {
			return strings.TrimSpace(s[:start])
		}
		s = s[:start] + s[start+end+len("</think>"):]
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
