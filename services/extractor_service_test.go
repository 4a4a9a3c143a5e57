package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"image-fetcher/domain"
)

type MockPageFetcher struct {
	mock.Mock
}

func (m *MockPageFetcher) Fetch(ctx context.Context, url string) (*http.Response, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func htmlResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestExtractImageURLs(t *testing.T) {
	page := `<html><body>
		<img src="https://cdn.test.com/abs.png">
		<img src="pics/rel.jpg" alt="relative"/>
		<img src="/root.gif">
		<img src="https://cdn.test.com/abs.png">
		<img src="data:image/png;base64,AAAA">
		<img alt="no src">
	</body></html>`

	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", mock.Anything, "http://example.com/gallery/index.html").
		Return(htmlResponse(http.StatusOK, page), nil)

	srv := NewExtractorService(fetcher)
	urls, err := srv.ExtractImageURLs(context.Background(), "http://example.com/gallery/index.html")

	assert.NoError(t, err)
	assert.Equal(t, []string{
		"https://cdn.test.com/abs.png",
		"http://example.com/gallery/pics/rel.jpg",
		"http://example.com/root.gif",
	}, urls)
	fetcher.AssertExpectations(t)
}

func TestExtractImageURLs_NoImages(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", mock.Anything, "http://example.com/").
		Return(htmlResponse(http.StatusOK, "<html><body><p>text only</p></body></html>"), nil)

	srv := NewExtractorService(fetcher)
	urls, err := srv.ExtractImageURLs(context.Background(), "http://example.com/")

	assert.NoError(t, err)
	assert.Empty(t, urls)
}

func TestExtractImageURLs_BadStatus(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", mock.Anything, "http://example.com/missing").
		Return(htmlResponse(http.StatusNotFound, ""), nil)

	srv := NewExtractorService(fetcher)
	_, err := srv.ExtractImageURLs(context.Background(), "http://example.com/missing")

	assert.ErrorIs(t, err, domain.ErrBadStatus)
}

func TestExtractImageURLs_FetchError(t *testing.T) {
	fetcher := new(MockPageFetcher)
	fetcher.On("Fetch", mock.Anything, "http://example.com/down").
		Return(nil, assert.AnError)

	srv := NewExtractorService(fetcher)
	_, err := srv.ExtractImageURLs(context.Background(), "http://example.com/down")

	assert.Error(t, err)
}
