package render

import "strings"

// Chunk splits text into display chunks of at most limit bytes. Splits
// prefer the last line boundary inside the window and fall back to a hard
// cut when a single line exceeds the limit. Concatenating the chunks
// yields text unchanged.
func Chunk(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultChunkLimit
	}
	if text == "" {
		return nil
	}
	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndexByte(text[:limit], '\n')
		if cut < 0 {
			cut = limit - 1
		}
		chunks = append(chunks, text[:cut+1])
		text = text[cut+1:]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
