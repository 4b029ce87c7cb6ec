package weapons

import (
	"armory/core/bungie"
	"armory/core/storage"
	"armory/feature/weapons/auxdata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the weapons feature.
func NewFeature(client bungie.Client, store storage.Client, bucket, auxBaseURL, language string, logger *zap.Logger, db *gorm.DB) *Feature {
	repo := NewRepository(db)
	aux := auxdata.NewLoader(client, store, bucket, auxBaseURL, logger)
	svc := NewService(repo, client, aux, store, bucket, language, logger)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "weapons"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load migrates the record tables and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}
