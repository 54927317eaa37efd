package tmdb

import "strings"

// ImageSize selects a rendition width on the image CDN.
type ImageSize string

// Image renditions used by the client.
const (
	SizePoster   ImageSize = "/w500"
	SizeBackdrop ImageSize = "/w780"
	SizeProfile  ImageSize = "/w185"
	SizeOriginal ImageSize = "/original"
)

const defaultImageBaseURL = "https://image.tmdb.org/t/p"

// ImageURL builds a full CDN URL for an image path returned by the catalog.
// Returns "" when path is empty so callers can skip missing artwork.
func ImageURL(baseURL, path string, size ImageSize) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	base := strings.TrimSuffix(strings.TrimSpace(baseURL), "/")
	if base == "" {
		base = defaultImageBaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + string(size) + path
}
