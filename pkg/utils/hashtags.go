package utils

import "strings"

// ParseHashtags splits a comma separated hashtag string, trimming
// whitespace and dropping empty entries. Order is preserved.
func ParseHashtags(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := strings.TrimSpace(part)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
