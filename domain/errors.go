package domain

import "errors"

var (
	// ErrInvalidURL means the URL could not be parsed or has no host.
	ErrInvalidURL = errors.New("invalid URL format")

	// ErrUnsupportedScheme means the URL is not http or https.
	ErrUnsupportedScheme = errors.New("only HTTP and HTTPS URLs are allowed")

	// ErrUnsupportedContentType means the response is not an allowed image type.
	ErrUnsupportedContentType = errors.New("unsupported content type")

	// ErrImageTooLarge means the response exceeded the size cap.
	ErrImageTooLarge = errors.New("image exceeds maximum allowed size")

	// ErrBadStatus means the server answered with a non-2xx status code.
	ErrBadStatus = errors.New("unexpected HTTP status")
)
