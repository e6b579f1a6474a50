package core

import (
	"regexp"
	"strings"
)

// ImageHost serves Drive files as directly viewable images.
const ImageHost = "https://lh3.googleusercontent.com/d/"

// Recognized shapes of a Drive reference, tried in order.
var imageIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`/d/([^/]+)`),
	regexp.MustCompile(`id=([^&]+)`),
	regexp.MustCompile(`lh3\.googleusercontent\.com/d/([^/?]+)`),
}

// ResolveImageURL rewrites a sharing link (or the first of a comma-separated
// list of links) into a direct image URL. It returns "" when no file
// identifier can be extracted.
func ResolveImageURL(raw string) string {
	if raw == "" {
		return ""
	}
	if first, _, found := strings.Cut(raw, ","); found {
		raw = strings.TrimSpace(first)
	}

	for _, re := range imageIDPatterns {
		if m := re.FindStringSubmatch(raw); m != nil {
			return ImageHost + m[1]
		}
	}
	return ""
}
