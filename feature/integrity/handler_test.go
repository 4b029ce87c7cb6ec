package integrity

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"armory/core/storage/mocks"
	"armory/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *mocks.Client) {
	t.Helper()
	db := setupDB(t)
	client := new(mocks.Client)

	app := fiber.New()
	NewHandler(NewService(client, "armory-test", db, zap.NewNop())).RegisterRoutes(app)
	return app, client
}

func TestHandleRecordsCheck(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/records", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report checks.RecordReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "ok", report.Status)
}

func TestHandleStorageCheck(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "armory-test").Return(true, nil)
	client.On("GetObject", mock.Anything, "armory-test", mock.Anything, mock.Anything).
		Return(nil, errors.New("object not found"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report checks.StorageReport
	require.NoError(t, json.Unmarshal(body, &report))
	assert.Equal(t, "ok", report.Status)
	assert.False(t, report.AuxCachePresent)
}

func TestHandleStorageCheckFailure(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "armory-test").Return(false, errors.New("storage down"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/storage", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}

func TestHandleIntegrityCheckCombinesReports(t *testing.T) {
	app, client := setupTestApp(t)
	client.On("BucketExists", mock.Anything, "armory-test").Return(false, errors.New("storage down"))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var report map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &report))

	// A failing sub-check degrades its own section, never the endpoint.
	assert.Contains(t, report, "records")
	assert.Contains(t, report, "storage")
	assert.Contains(t, string(report["storage"]), "storage down")
}
