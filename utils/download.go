package utils

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// IsURL reports whether src points to a remote http(s) resource.
func IsURL(src string) bool {
	return strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://")
}

// DownloadImage retrieves the remote image and returns its content.
func DownloadImage(url string) (io.Reader, error) {
	client := &http.Client{Timeout: 30 * time.Second}

	res, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("unable to download image file from URI: %s: %w", url, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unable to download image file from URI: %s, status %v", url, res.Status)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response body: %w", err)
	}
	return bytes.NewReader(data), nil
}
