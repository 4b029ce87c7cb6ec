package weapons

import (
	"context"
	"fmt"

	"armory/core/bungie"
	"armory/core/storage"
	"armory/feature/weapons/auxdata"
	"armory/feature/weapons/builder"
	"armory/feature/weapons/manifest"
	"armory/feature/weapons/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// SyncResult reports the outcome of one sync cycle.
type SyncResult struct {
	// Version is the manifest version token the persisted records belong to.
	Version string `json:"version"`
	// WeaponCount is the number of persisted full records.
	WeaponCount int `json:"weapon_count"`
	// Cached is true when the stored token matched and nothing was fetched.
	Cached bool `json:"cached"`
}

// Status reports the persisted catalog state without touching the network.
type Status struct {
	Version     string `json:"version"`
	WeaponCount int64  `json:"weapon_count"`
}

// Service drives the sync protocol and serves the persisted record sets.
type Service struct {
	repo     *Repository
	client   bungie.Client
	aux      *auxdata.Loader
	store    storage.Client
	bucket   string
	language string
	logger   *zap.Logger

	// sync is single-writer: concurrent callers join the in-flight cycle
	// instead of racing on the persisted token.
	sf singleflight.Group
}

// NewService creates the weapons service.
func NewService(repo *Repository, client bungie.Client, aux *auxdata.Loader, store storage.Client, bucket, language string, logger *zap.Logger) *Service {
	return &Service{
		repo:     repo,
		client:   client,
		aux:      aux,
		store:    store,
		bucket:   bucket,
		language: language,
		logger:   logger,
	}
}

// CheckAndSync fetches the manifest metadata and re-transforms the catalog
// only when the version token changed. A failed sync leaves the previously
// persisted token and records fully intact.
func (s *Service) CheckAndSync(ctx context.Context) (*SyncResult, error) {
	v, err, _ := s.sf.Do("sync", func() (any, error) {
		return s.sync(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*SyncResult), nil
}

// ForceRefresh clears the stored version token and runs a sync, guaranteeing
// a full re-download regardless of the fetched token.
func (s *Service) ForceRefresh(ctx context.Context) (*SyncResult, error) {
	if err := s.repo.ClearVersion(ctx); err != nil {
		return nil, err
	}
	return s.CheckAndSync(ctx)
}

// ClearAuxCache removes the cached auxiliary blob. The auxiliary namespace
// invalidates independently from the manifest records.
func (s *Service) ClearAuxCache(ctx context.Context) error {
	return s.aux.Invalidate(ctx)
}

// GetStatus returns the persisted version token and record count.
func (s *Service) GetStatus(ctx context.Context) (*Status, error) {
	version, err := s.repo.Version(ctx)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.CountWeapons(ctx)
	if err != nil {
		return nil, err
	}
	return &Status{Version: version, WeaponCount: count}, nil
}

// GetWeapon returns one persisted full record, nil when absent.
func (s *Service) GetWeapon(ctx context.Context, hash uint32) (*models.WeaponRecord, error) {
	return s.repo.Weapon(ctx, hash)
}

// GetConciseWeapon returns one persisted concise record, nil when absent.
func (s *Service) GetConciseWeapon(ctx context.Context, hash uint32) (*models.ConciseWeaponRecord, error) {
	return s.repo.ConciseWeapon(ctx, hash)
}

// ListWeapons returns every persisted concise record.
func (s *Service) ListWeapons(ctx context.Context) ([]models.ConciseWeaponRecord, error) {
	return s.repo.ListConcise(ctx)
}

func (s *Service) sync(ctx context.Context) (*SyncResult, error) {
	meta, err := s.client.GetManifest(ctx)
	if err != nil {
		return nil, err
	}

	stored, err := s.repo.Version(ctx)
	if err != nil {
		return nil, err
	}
	if stored == meta.Version {
		count, err := s.repo.CountWeapons(ctx)
		if err != nil {
			return nil, err
		}
		s.logger.Info("Manifest unchanged, serving cached records",
			zap.String("version", stored), zap.Int64("weapons", count))
		return &SyncResult{Version: stored, WeaponCount: int(count), Cached: true}, nil
	}

	s.logger.Info("Manifest version changed, running full sync",
		zap.String("stored", stored), zap.String("fetched", meta.Version))

	// Definition tables and auxiliary files download in parallel; both must
	// be joined before the transformation starts. Only the tables can fail
	// the sync, auxiliary data degrades internally.
	var tables *manifest.Tables
	var aux *auxdata.Data
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var fetchErr error
		tables, fetchErr = manifest.Fetch(gctx, s.client, meta, s.language)
		return fetchErr
	})
	g.Go(func() error {
		aux = s.aux.Load(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("manifest download failed: %w", err)
	}

	if s.store != nil {
		if err := manifest.Archive(ctx, s.store, s.bucket, meta.Version, tables); err != nil {
			s.logger.Warn("Snapshot archive failed", zap.Error(err))
		}
	}

	full, concise := builder.New(tables, aux, s.logger).Build()

	if err := s.repo.ReplaceAll(ctx, meta.Version, full, concise); err != nil {
		return nil, err
	}

	s.logger.Info("Sync complete",
		zap.String("version", meta.Version), zap.Int("weapons", len(full)))
	return &SyncResult{Version: meta.Version, WeaponCount: len(full)}, nil
}
