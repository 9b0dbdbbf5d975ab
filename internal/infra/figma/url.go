package figma

import (
	"net/url"
	"strings"

	"figroad/internal/domain"
)

// ExtractFileKey pulls the file key out of a Figma URL. Both the old
// `/file/<key>/...` and the new `/design/<key>/...` forms are accepted.
// A bare key (no slashes, no scheme) passes through unchanged.
func ExtractFileKey(raw string) (string, error) {
	if raw != "" && !strings.ContainsAny(raw, "/?") {
		return raw, nil
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", domain.ErrInvalidFigmaURL
	}

	parts := strings.Split(parsed.Path, "/")
	for i, part := range parts {
		if (part == "file" || part == "design") && i+1 < len(parts) && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", domain.ErrInvalidFigmaURL
}
