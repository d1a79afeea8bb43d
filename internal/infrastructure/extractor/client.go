// Package extractor calls the third-party no-watermark extraction service
// and fetches the media files it resolves.
package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/langliu/budgie/internal/pkg/config"
	"github.com/langliu/budgie/pkg/constants"
)

// Some file hosts reject requests without a browser user agent.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// VideoInfo is the extraction service's description of a resolved link.
type VideoInfo struct {
	Desc     string `json:"desc"`
	PlayAddr string `json:"playAddr"`
	Cover    string `json:"cover"`
	Music    string `json:"music"`
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
}

func NewClient(cfg config.ExtractorConfig) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		endpoint:   cfg.Endpoint,
		token:      cfg.Token,
	}
}

// Resolve posts the share link and auth token as a form and decodes the
// JSON envelope. Success requires both a 2xx status and the service's own
// success code in the body.
func (c *Client) Resolve(ctx context.Context, link string) (*VideoInfo, error) {
	form := url.Values{}
	form.Set("link", link)
	form.Set("token", c.token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Code string    `json:"code"`
		Data VideoInfo `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode extractor response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || payload.Code != constants.ExtractorSuccessCode {
		return nil, fmt.Errorf("extractor returned status %d code %q", resp.StatusCode, payload.Code)
	}

	return &payload.Data, nil
}

// Download fetches the resolved media bytes and reports the declared
// content type, which may be empty.
func (c *Client) Download(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	return body, resp.Header.Get("Content-Type"), nil
}
