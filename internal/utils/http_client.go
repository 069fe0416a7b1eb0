package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client rooted at baseURL. A scheme-less address
// such as "localhost:8080" is treated as plain HTTP. A non-positive timeout
// leaves resty's default (no timeout) in place.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 5*time.Second)
//	resp, err := client.R().Get("/api/methods")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// NormalizeBaseURL prefixes addr with "http://" unless it already carries a
// scheme, and strips trailing slashes.
func NormalizeBaseURL(addr string) string {
	addr = strings.TrimRight(addr, "/")
	if addr == "" {
		return ""
	}
	if strings.HasPrefix(addr, "http://") || strings.HasPrefix(addr, "https://") {
		return addr
	}

	return "http://" + addr
}
