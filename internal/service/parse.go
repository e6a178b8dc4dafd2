package service

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/digipark/captionforge/internal/presets"
)

// codeFenceRe strips a markdown code fence some models wrap around JSON
// replies even when asked not to.
var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// captionReply is the JSON contract every platform prompt asks for. Tags is
// raw because TikTok replies carry an object and the other platforms an
// array.
type captionReply struct {
	Caption string          `json:"caption"`
	Tags    json.RawMessage `json:"tags"`
}

// stripCodeFence unwraps the first fenced block if the reply is wrapped in
// one, otherwise returns the reply unchanged.
func stripCodeFence(content string) string {
	if m := codeFenceRe.FindStringSubmatch(content); m != nil {
		return m[1]
	}
	return content
}

// extractJSONObject returns the first balanced top-level JSON object in the
// content. Models that ignore the no-markdown instruction tend to surround
// the object with prose, so a plain Unmarshal of the whole reply is not
// reliable.
func extractJSONObject(content string) (string, error) {
	start := strings.Index(content, "{")
	if start == -1 {
		return "", fmt.Errorf("no JSON found in response")
	}

	braceCount := 0
	end := -1
findJSON:
	for i := start; i < len(content); i++ {
		switch content[i] {
		case '{':
			braceCount++
		case '}':
			braceCount--
			if braceCount == 0 {
				end = i + 1
				break findJSON
			}
		}
	}

	if end == -1 {
		return "", fmt.Errorf("incomplete JSON in response")
	}
	return content[start:end], nil
}

// parseCaptionReply extracts caption text and tags from a raw model reply.
// TikTok's 5-key tag object is flattened in the fixed slot order; flat
// arrays pass through. Missing tags yield an empty slice, not an error.
func parseCaptionReply(raw string) (string, []string, error) {
	jsonStr, err := extractJSONObject(stripCodeFence(raw))
	if err != nil {
		return "", nil, err
	}

	var reply captionReply
	if err := json.Unmarshal([]byte(jsonStr), &reply); err != nil {
		return "", nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	if strings.TrimSpace(reply.Caption) == "" {
		return "", nil, fmt.Errorf("empty caption in response")
	}

	tags, err := normalizeTags(reply.Tags)
	if err != nil {
		return "", nil, err
	}
	return reply.Caption, tags, nil
}

// normalizeTags accepts either tag shape and returns a flat list.
func normalizeTags(raw json.RawMessage) ([]string, error) {
	if len(raw) == 0 {
		return []string{}, nil
	}

	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil {
		return arr, nil
	}

	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("unrecognized tags shape: %s", string(raw))
	}

	tags := make([]string, 0, len(presets.TikTokTagOrder))
	for _, slot := range presets.TikTokTagOrder {
		if tag, ok := obj[slot]; ok && tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags, nil
}
