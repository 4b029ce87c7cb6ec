package integrity

import (
	"context"

	"armory/core/storage"
	"armory/feature/integrity/checks"
	"armory/feature/weapons"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client storage.Client
	bucket string
	db     *gorm.DB
	repo   *weapons.Repository
	logger *zap.Logger
}

// NewService creates a new integrity service.
func NewService(client storage.Client, bucket string, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		db:     db,
		repo:   weapons.NewRepository(db),
		logger: logger,
	}
}

// CheckRecords verifies the persisted record store.
func (s *Service) CheckRecords(ctx context.Context) (*checks.RecordReport, error) {
	return checks.CheckRecords(ctx, s.db)
}

// CheckStorage verifies the object-store namespaces against the persisted
// version token.
func (s *Service) CheckStorage(ctx context.Context) (*checks.StorageReport, error) {
	version, err := s.repo.Version(ctx)
	if err != nil {
		return nil, err
	}
	return checks.CheckStorage(ctx, s.client, s.bucket, version)
}
