package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"image-fetcher/domain"
)

type HTTPImageRepository struct {
	client    *http.Client
	userAgent string
	maxSize   int64
}

func NewHTTPImageRepository(timeout time.Duration, userAgent string, maxSize int64) *HTTPImageRepository {
	return &HTTPImageRepository{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
		maxSize:   maxSize,
	}
}

// DownloadImage fetches an image URL and returns its bytes and Content-Type.
// The response is rejected before the body is read when the status is not
// 2xx, the Content-Type is not an allowed image type, or the declared
// Content-Length exceeds the size cap. Bodies without a declared length are
// still capped while streaming.
func (r *HTTPImageRepository) DownloadImage(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "image/*")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("%w: %d for %s", domain.ErrBadStatus, resp.StatusCode, url)
	}

	contentType := resp.Header.Get("Content-Type")
	if !domain.AllowedContentType(contentType) {
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedContentType, contentType)
	}

	if resp.ContentLength > r.maxSize {
		return nil, "", fmt.Errorf("%w: %d bytes (max %d)", domain.ErrImageTooLarge, resp.ContentLength, r.maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, r.maxSize+1))
	if err != nil {
		return nil, "", err
	}
	if int64(len(data)) > r.maxSize {
		return nil, "", fmt.Errorf("%w: download passed %d bytes", domain.ErrImageTooLarge, r.maxSize)
	}

	return data, contentType, nil
}
