package weapons

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	bungiemocks "armory/core/bungie/mocks"
	"armory/core/database"
	storagemocks "armory/core/storage/mocks"
	"armory/feature/weapons/auxdata"
	"armory/feature/weapons/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*fiber.App, *Repository) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	client := new(bungiemocks.Client)
	store := new(storagemocks.Client)
	aux := auxdata.NewLoader(client, store, "armory-test", "https://aux.example.test", zap.NewNop())
	svc := NewService(repo, client, aux, nil, "armory-test", "en", zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)
	return app, repo
}

func seedWeapon(t *testing.T, repo *Repository, hash uint32, name string) {
	t.Helper()
	record := models.WeaponRecord{
		Hash:       hash,
		Attributes: models.WeaponAttributes{Hash: hash, Name: name, Slot: "Kinetic"},
	}
	err := repo.ReplaceAll(context.Background(), "v1",
		[]models.WeaponRecord{record},
		[]models.ConciseWeaponRecord{models.Concise(&record)})
	require.NoError(t, err)
}

func TestHandleGetWeapon(t *testing.T) {
	app, repo := newTestApp(t)
	seedWeapon(t, repo, 100, "Midnight Coup")

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/100", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var record models.WeaponRecord
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, "Midnight Coup", record.Attributes.Name)
}

func TestHandleGetWeaponMalformedHash(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/not-a-hash", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	// Out of uint32 range is malformed too, not a miss.
	resp, err = app.Test(httptest.NewRequest("GET", "/weapons/4294967296", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestHandleGetWeaponNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/12345", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleGetConcise(t *testing.T) {
	app, repo := newTestApp(t)
	seedWeapon(t, repo, 100, "Midnight Coup")

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/100/concise", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var record models.ConciseWeaponRecord
	require.NoError(t, json.Unmarshal(body, &record))
	assert.Equal(t, "Midnight Coup", record.Name)
	assert.Equal(t, "Kinetic", record.Slot)
}

func TestHandleList(t *testing.T) {
	app, repo := newTestApp(t)
	seedWeapon(t, repo, 100, "Midnight Coup")

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var records []models.ConciseWeaponRecord
	require.NoError(t, json.Unmarshal(body, &records))
	require.Len(t, records, 1)
	assert.Equal(t, "Midnight Coup", records[0].Name)
}

func TestHandleStatus(t *testing.T) {
	app, repo := newTestApp(t)
	seedWeapon(t, repo, 100, "Midnight Coup")

	resp, err := app.Test(httptest.NewRequest("GET", "/weapons/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var status Status
	require.NoError(t, json.Unmarshal(body, &status))
	assert.Equal(t, "v1", status.Version)
	assert.EqualValues(t, 1, status.WeaponCount)
}

func TestHandleSyncFailureReturnsBadGateway(t *testing.T) {
	// The mock client has no manifest expectation staged, so the sync fails
	// upstream and the previously persisted state must remain readable.
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	client := new(bungiemocks.Client)
	client.On("GetManifest", mock.Anything).Return(nil, assert.AnError)
	store := new(storagemocks.Client)
	aux := auxdata.NewLoader(client, store, "armory-test", "https://aux.example.test", zap.NewNop())
	svc := NewService(repo, client, aux, nil, "armory-test", "en", zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("POST", "/weapons/sync", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleClearAuxCache(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())

	client := new(bungiemocks.Client)
	store := new(storagemocks.Client)
	store.On("RemoveObject", mock.Anything, "armory-test", auxdata.CacheObjectName, mock.Anything).
		Return(nil).Once()
	aux := auxdata.NewLoader(client, store, "armory-test", "https://aux.example.test", zap.NewNop())
	svc := NewService(repo, client, aux, nil, "armory-test", "en", zap.NewNop())

	app := fiber.New()
	NewHandler(svc).RegisterRoutes(app)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/weapons/cache/auxiliary", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	store.AssertExpectations(t)
}
