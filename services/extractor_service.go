package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/html"

	"image-fetcher/domain"
)

type PageFetcher interface {
	Fetch(ctx context.Context, url string) (*http.Response, error)
}

// ExtractorService pulls image URLs out of an HTML page so they can be fed
// through the regular fetch pipeline.
type ExtractorService struct {
	pageFetcher PageFetcher
}

func NewExtractorService(pageFetcher PageFetcher) *ExtractorService {
	return &ExtractorService{pageFetcher: pageFetcher}
}

// ExtractImageURLs fetches pageURL and returns the src of every <img> tag,
// resolved against the page URL. Duplicates and non-http(s) references
// (data: URIs, fragments) are dropped; document order is kept.
func (s *ExtractorService) ExtractImageURLs(ctx context.Context, pageURL string) ([]string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}

	resp, err := s.pageFetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %d for %s", domain.ErrBadStatus, resp.StatusCode, pageURL)
	}

	tokenizer := html.NewTokenizer(resp.Body)
	seen := make(map[string]struct{})
	var images []string

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		token := tokenizer.Token()
		if token.Data != "img" {
			continue
		}
		for _, attr := range token.Attr {
			if attr.Key != "src" {
				continue
			}
			ref, err := url.Parse(attr.Val)
			if err != nil {
				continue
			}
			resolved := base.ResolveReference(ref)
			if resolved.Scheme != "http" && resolved.Scheme != "https" {
				continue
			}
			abs := resolved.String()
			if _, ok := seen[abs]; ok {
				continue
			}
			seen[abs] = struct{}{}
			images = append(images, abs)
		}
	}

	return images, nil
}
