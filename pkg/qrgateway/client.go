// Package qrgateway wraps the external QR-code image service. The service is
// a black box: given payload data it returns a rendered image. A mock gateway
// is provided for environments without outbound network access.
package qrgateway

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Gateway produces QR image URLs for arbitrary payload data
type Gateway interface {
	// ImageURL returns a URL serving a QR image encoding data
	ImageURL(data string) (string, error)
	// Fetch retrieves the rendered image bytes
	Fetch(data string) ([]byte, error)
}

// HTTPGateway renders QR codes through a remote image service
type HTTPGateway struct {
	BaseURL string
	Size    int
	client  *http.Client
}

// MockGateway returns deterministic URLs without any network calls
type MockGateway struct{}

// NewHTTPGateway creates a gateway against the configured image service
func NewHTTPGateway(baseURL string, size int) *HTTPGateway {
	return &HTTPGateway{
		BaseURL: baseURL,
		Size:    size,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// NewMockGateway creates a mock gateway for testing
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// ImageURL returns the remote URL serving a QR image for data
func (g *HTTPGateway) ImageURL(data string) (string, error) {
	if g.BaseURL == "" {
		return "", errors.New("qr gateway base URL is not configured")
	}
	params := url.Values{}
	params.Set("size", fmt.Sprintf("%dx%d", g.Size, g.Size))
	params.Set("data", data)
	return g.BaseURL + "?" + params.Encode(), nil
}

// Fetch downloads the rendered QR image
func (g *HTTPGateway) Fetch(data string) ([]byte, error) {
	imageURL, err := g.ImageURL(data)
	if err != nil {
		return nil, err
	}

	resp, err := g.client.Get(imageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("qr gateway returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// ImageURL returns a deterministic mock URL
func (g *MockGateway) ImageURL(data string) (string, error) {
	return "mock://qr?data=" + url.QueryEscape(data), nil
}

// Fetch returns a placeholder payload
func (g *MockGateway) Fetch(data string) ([]byte, error) {
	return []byte("MOCK-QR:" + data), nil
}
