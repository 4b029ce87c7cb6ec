package bungie

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		Language:       "en",
		TimeoutSeconds: 5,
	})
}

func manifestBody(version string) string {
	return fmt.Sprintf(`{
		"Response": {
			"version": %q,
			"jsonWorldComponentContentPaths": {
				"en": {"DestinyInventoryItemDefinition": "/common/json/items.json"}
			}
		},
		"ErrorCode": 1,
		"ErrorStatus": "Success",
		"Message": "Ok"
	}`, version)
}

func TestGetManifest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, manifestPath, r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		fmt.Fprint(w, manifestBody("v123"))
	}))
	defer server.Close()

	manifest, err := newTestClient(server.URL).GetManifest(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "v123", manifest.Version)

	path, err := manifest.TablePath("en", "DestinyInventoryItemDefinition")
	require.NoError(t, err)
	assert.Equal(t, "/common/json/items.json", path)
}

func TestGetManifestEnvelopeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": null, "ErrorCode": 5, "ErrorStatus": "SystemDisabled", "Message": "down"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetManifest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SystemDisabled")
}

func TestGetManifestMissingVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": {"jsonWorldComponentContentPaths": {"en": {}}}, "ErrorCode": 1}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetManifest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "version token")
}

func TestGetManifestMissingPaths(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Response": {"version": "v1"}, "ErrorCode": 1}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetManifest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "component content paths")
}

func TestGetManifestHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetManifest(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestGetRelativePathCarriesAPIKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/common/json/items.json", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-API-Key"))
		fmt.Fprint(w, `{"100": "ok"}`)
	}))
	defer server.Close()

	var out map[string]string
	err := newTestClient(server.URL).Get(context.Background(), "/common/json/items.json", &out)
	require.NoError(t, err)
	assert.Equal(t, "ok", out["100"])
}

func TestGetAbsoluteURLOmitsAPIKey(t *testing.T) {
	other := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("X-API-Key"))
		fmt.Fprint(w, `[1, 2]`)
	}))
	defer other.Close()

	// Base URL points elsewhere; the absolute URL must win.
	var out []int
	err := newTestClient("https://unused.example.test").Get(context.Background(), other.URL+"/file.json", &out)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, out)
}

func TestTablePathMissingLanguageOrTable(t *testing.T) {
	manifest := &Manifest{
		Version: "v1",
		JSONWorldComponentContentPaths: map[string]map[string]string{
			"en": {"DestinyInventoryItemDefinition": "/items.json"},
		},
	}

	_, err := manifest.TablePath("fr", "DestinyInventoryItemDefinition")
	assert.Error(t, err)

	_, err = manifest.TablePath("en", "DestinyPlugSetDefinition")
	assert.Error(t, err)
}

func TestIsValidLanguage(t *testing.T) {
	assert.True(t, Config{Language: "en"}.IsValidLanguage())
	assert.True(t, Config{Language: "ja"}.IsValidLanguage())
	assert.False(t, Config{Language: "tlh"}.IsValidLanguage())
}
