package bungie

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Client defines the interface for fetching manifest metadata, definition
// tables and auxiliary JSON documents.
type Client interface {
	// GetManifest fetches the manifest metadata document (version token plus
	// per-table, per-language component paths).
	GetManifest(ctx context.Context) (*Manifest, error)
	// Get fetches a JSON document and decodes it into v. The path may be
	// relative to the configured base URL (manifest component paths are
	// published relative) or an absolute URL (auxiliary files).
	Get(ctx context.Context, path string, v any) error
}

// Manifest is the metadata document returned by the manifest endpoint.
// Only the fields the sync protocol needs are decoded.
type Manifest struct {
	// Version is the opaque version token; it changes whenever any table changes.
	Version string `json:"version"`
	// JSONWorldComponentContentPaths maps language -> table name -> relative path.
	JSONWorldComponentContentPaths map[string]map[string]string `json:"jsonWorldComponentContentPaths"`
}

// TablePath returns the relative download path for one definition table in
// the given language. A missing language or table is a hard error: the sync
// cannot proceed without the path.
func (m *Manifest) TablePath(language, table string) (string, error) {
	paths, ok := m.JSONWorldComponentContentPaths[language]
	if !ok {
		return "", fmt.Errorf("manifest has no component paths for language %q", language)
	}
	path, ok := paths[table]
	if !ok || path == "" {
		return "", fmt.Errorf("manifest has no path for table %q (language %q)", table, language)
	}
	return path, nil
}

// platformResponse is the envelope the Bungie.net Platform API wraps every
// response in. ErrorCode 1 means success.
type platformResponse struct {
	Response    json.RawMessage `json:"Response"`
	ErrorCode   int             `json:"ErrorCode"`
	ErrorStatus string          `json:"ErrorStatus"`
	Message     string          `json:"Message"`
}

const manifestPath = "/Platform/Destiny2/Manifest/"

type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an HTTP client for Bungie.net based on the configuration.
func NewClient(cfg Config) Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 60
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	// Definition tables are tens of megabytes; keep the overall timeout off
	// the response body and bound connection setup and first byte instead.
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &httpClient{
		cfg:  cfg,
		http: &http.Client{Transport: transport},
	}
}

func (c *httpClient) GetManifest(ctx context.Context) (*Manifest, error) {
	body, err := c.fetch(ctx, manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest metadata: %w", err)
	}
	defer body.Close()

	var envelope platformResponse
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("failed to decode manifest metadata: %w", err)
	}
	if envelope.ErrorCode != 1 {
		return nil, fmt.Errorf("manifest endpoint returned %s (%d): %s",
			envelope.ErrorStatus, envelope.ErrorCode, envelope.Message)
	}

	var manifest Manifest
	if err := json.Unmarshal(envelope.Response, &manifest); err != nil {
		return nil, fmt.Errorf("failed to decode manifest metadata: %w", err)
	}
	if manifest.Version == "" {
		return nil, fmt.Errorf("manifest metadata is missing a version token")
	}
	if len(manifest.JSONWorldComponentContentPaths) == 0 {
		return nil, fmt.Errorf("manifest metadata is missing component content paths")
	}
	return &manifest, nil
}

func (c *httpClient) Get(ctx context.Context, path string, v any) error {
	body, err := c.fetch(ctx, path)
	if err != nil {
		return err
	}
	defer body.Close()

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// fetch issues a GET for a relative path (against the base URL) or an
// absolute URL. The API key is only attached to base-URL requests; auxiliary
// files live on other hosts and must not receive it.
func (c *httpClient) fetch(ctx context.Context, path string) (io.ReadCloser, error) {
	url := path
	relative := !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://")
	if relative {
		url = strings.TrimSuffix(c.cfg.BaseURL, "/") + path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", path, err)
	}
	if relative && c.cfg.APIKey != "" {
		req.Header.Set("X-API-Key", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request for %s failed: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("request for %s returned status %d", path, resp.StatusCode)
	}
	return resp.Body, nil
}
