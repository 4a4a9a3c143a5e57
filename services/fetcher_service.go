package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"mime"
	"net/url"
	"path"
	"strings"

	"github.com/google/uuid"

	"image-fetcher/domain"
)

// Consumer-side interfaces
type ImageDownloader interface {
	DownloadImage(ctx context.Context, url string) ([]byte, string, error)
}

type ImageStore interface {
	SaveImage(filename string, data []byte) (string, error)
}

type FetcherService struct {
	downloader ImageDownloader
	store      ImageStore
	seenHashes map[string]struct{}
}

// Functional Options Pattern
type FetcherOption func(*FetcherService)

func WithDownloader(d ImageDownloader) FetcherOption {
	return func(s *FetcherService) { s.downloader = d }
}

func WithStore(st ImageStore) FetcherOption {
	return func(s *FetcherService) { s.store = st }
}

func NewFetcherService(opts ...FetcherOption) *FetcherService {
	s := &FetcherService{
		seenHashes: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ValidateURL rejects anything that is not an absolute http(s) URL with a
// host. Rejected URLs never reach the network.
func (s *FetcherService) ValidateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w, got %q", domain.ErrUnsupportedScheme, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%w: missing host in %q", domain.ErrInvalidURL, rawURL)
	}
	return nil
}

// FetchImage runs the full pipeline for one URL: validate, download, check
// for duplicates, derive a filename, and store. Duplicate images are counted
// as successes but not written again.
func (s *FetcherService) FetchImage(ctx context.Context, rawURL string) (domain.FetchResult, error) {
	result := domain.FetchResult{URL: rawURL}

	if err := s.ValidateURL(rawURL); err != nil {
		return result, err
	}

	data, contentType, err := s.downloader.DownloadImage(ctx, rawURL)
	if err != nil {
		return result, err
	}
	result.ContentType = contentType
	result.Size = int64(len(data))

	digest := sha256.Sum256(data)
	hash := hex.EncodeToString(digest[:])
	if _, seen := s.seenHashes[hash]; seen {
		result.Duplicate = true
		return result, nil
	}
	s.seenHashes[hash] = struct{}{}

	filename := s.buildFilename(rawURL, contentType)
	savedPath, err := s.store.SaveImage(filename, data)
	if err != nil {
		return result, fmt.Errorf("failed to save image: %w", err)
	}
	result.Filename = path.Base(savedPath)
	result.Path = savedPath

	return result, nil
}

// UniqueCount returns how many distinct images have been seen this run.
func (s *FetcherService) UniqueCount() int {
	return len(s.seenHashes)
}

// buildFilename derives a filename from the URL path, falling back to a
// uuid-based name with an extension guessed from the Content-Type.
func (s *FetcherService) buildFilename(rawURL, contentType string) string {
	parsed, err := url.Parse(rawURL)
	name := ""
	if err == nil {
		name = path.Base(parsed.Path)
	}

	if name == "" || name == "." || name == "/" || !strings.Contains(name, ".") {
		return "fetched_image_" + uuid.New().String() + s.extensionForType(contentType)
	}

	ext := strings.ToLower(path.Ext(name))
	if !domain.AllowedExtensions[ext] {
		name = strings.TrimSuffix(name, path.Ext(name)) + s.extensionForType(contentType)
	}
	return name
}

func (s *FetcherService) extensionForType(contentType string) string {
	mediaType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	exts, err := mime.ExtensionsByType(mediaType)
	if err != nil || len(exts) == 0 {
		return domain.DefaultExtension
	}
	// mime can report extensions we would refuse to write (.jfif, .jpe);
	// prefer one from the allowlist.
	for _, ext := range exts {
		if domain.AllowedExtensions[ext] {
			return ext
		}
	}
	return domain.DefaultExtension
}
