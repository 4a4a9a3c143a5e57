package domain

import "strings"

const (
	// DefaultMaxImageSize is the hard cap on a single download (50MB).
	DefaultMaxImageSize = 50 * 1024 * 1024

	// DefaultExtension is used when neither the URL nor the Content-Type
	// yields a usable image extension.
	DefaultExtension = ".jpg"
)

// AllowedMIMETypes are the image content types the fetcher accepts.
var AllowedMIMETypes = map[string]bool{
	"image/jpeg":    true,
	"image/jpg":     true,
	"image/png":     true,
	"image/gif":     true,
	"image/bmp":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

// AllowedExtensions are the file extensions the fetcher will write.
var AllowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".svg":  true,
}

// AllowedContentType reports whether a Content-Type header value matches the
// image allowlist. Matching is case-insensitive and ignores parameters such
// as charset.
func AllowedContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	return AllowedMIMETypes[ct]
}
