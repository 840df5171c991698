package printing

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultAssetTimeout = 10 * time.Second
	maxAssetSize        = 5 << 20 // 5 MiB
)

// AssetInliner fetches remote assets and converts them to data URLs so
// the rendered HTML is self-contained and needs no network access from
// the browser.
type AssetInliner struct {
	client *http.Client
}

// NewAssetInliner creates an asset inliner with a default HTTP client
func NewAssetInliner() *AssetInliner {
	return &AssetInliner{
		client: &http.Client{Timeout: defaultAssetTimeout},
	}
}

// NewAssetInlinerWithClient creates an asset inliner using the given client
func NewAssetInlinerWithClient(client *http.Client) *AssetInliner {
	if client == nil {
		return NewAssetInliner()
	}
	return &AssetInliner{client: client}
}

// InlineImage fetches an image URL and returns it as a base64 data URL.
// URLs that are already data URLs are passed through unchanged. An empty
// URL returns an empty string without error.
func (a *AssetInliner) InlineImage(ctx context.Context, url string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", nil
	}
	if strings.HasPrefix(url, "data:") {
		return url, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", NewRenderError(ErrCodeAssetFetchFailed, "invalid asset URL: "+url, err)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return "", NewRenderError(ErrCodeAssetFetchFailed, "failed to fetch asset: "+url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", NewRenderError(ErrCodeAssetFetchFailed,
			fmt.Sprintf("asset request returned status %d: %s", resp.StatusCode, url), nil)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetSize+1))
	if err != nil {
		return "", NewRenderError(ErrCodeAssetFetchFailed, "failed to read asset body: "+url, err)
	}
	if len(data) > maxAssetSize {
		return "", NewRenderError(ErrCodeAssetFetchFailed, "asset exceeds maximum size: "+url, nil)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	if idx := strings.Index(contentType, ";"); idx != -1 {
		contentType = strings.TrimSpace(contentType[:idx])
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
