package weapons

import (
	"context"
	"errors"
	"fmt"

	"armory/feature/weapons/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MetaKeyVersion is the metadata key the manifest version token is stored under.
const MetaKeyVersion = "manifest_version"

// Repository is the single writer of the persisted weapon collections and the
// version token. Readers only ever see a fully swapped record set: the swap
// and the token update commit in one transaction.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over the given database.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the backing tables.
func (r *Repository) Migrate() error {
	return r.db.AutoMigrate(
		&models.WeaponRow{},
		&models.ConciseWeaponRow{},
		&models.MetadataRow{},
	)
}

// Version returns the persisted manifest version token, empty when none has
// been recorded yet.
func (r *Repository) Version(ctx context.Context) (string, error) {
	var row models.MetadataRow
	err := r.db.WithContext(ctx).First(&row, "meta_key = ?", MetaKeyVersion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read version token: %w", err)
	}
	return row.Value, nil
}

// ClearVersion removes the persisted version token, forcing the next sync to
// re-download regardless of the fetched token.
func (r *Repository) ClearVersion(ctx context.Context) error {
	err := r.db.WithContext(ctx).Delete(&models.MetadataRow{}, "meta_key = ?", MetaKeyVersion).Error
	if err != nil {
		return fmt.Errorf("failed to clear version token: %w", err)
	}
	return nil
}

// CountWeapons returns the number of persisted full records.
func (r *Repository) CountWeapons(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.WeaponRow{}).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count weapon records: %w", err)
	}
	return count, nil
}

// ReplaceAll swaps in a freshly built record set and the version token that
// produced it, atomically. On any failure the transaction rolls back and the
// previous set stays fully intact.
func (r *Repository) ReplaceAll(ctx context.Context, version string, full []models.WeaponRecord, concise []models.ConciseWeaponRecord) error {
	// Serialize outside the transaction; a marshal failure must not leave a
	// half-open transaction behind.
	weaponRows := make([]models.WeaponRow, 0, len(full))
	for i := range full {
		row, err := models.NewWeaponRow(&full[i])
		if err != nil {
			return fmt.Errorf("failed to serialize weapon %d: %w", full[i].Hash, err)
		}
		weaponRows = append(weaponRows, row)
	}
	conciseRows := make([]models.ConciseWeaponRow, 0, len(concise))
	for _, record := range concise {
		row, err := models.NewConciseWeaponRow(record)
		if err != nil {
			return fmt.Errorf("failed to serialize concise record %d: %w", record.Hash, err)
		}
		conciseRows = append(conciseRows, row)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.WeaponRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.ConciseWeaponRow{}).Error; err != nil {
			return err
		}
		if len(weaponRows) > 0 {
			if err := tx.CreateInBatches(weaponRows, 500).Error; err != nil {
				return err
			}
		}
		if len(conciseRows) > 0 {
			if err := tx.CreateInBatches(conciseRows, 500).Error; err != nil {
				return err
			}
		}
		return tx.Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&models.MetadataRow{Key: MetaKeyVersion, Value: version}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to persist record set: %w", err)
	}
	return nil
}

// Weapon returns one full record by hash, nil when absent.
func (r *Repository) Weapon(ctx context.Context, hash uint32) (*models.WeaponRecord, error) {
	var row models.WeaponRow
	err := r.db.WithContext(ctx).First(&row, "hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read weapon %d: %w", hash, err)
	}
	return row.Record()
}

// ConciseWeapon returns one concise record by hash, nil when absent.
func (r *Repository) ConciseWeapon(ctx context.Context, hash uint32) (*models.ConciseWeaponRecord, error) {
	var row models.ConciseWeaponRow
	err := r.db.WithContext(ctx).First(&row, "hash = ?", hash).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read concise record %d: %w", hash, err)
	}
	record, err := row.Record()
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// ListConcise returns every persisted concise record. No ordering is
// guaranteed; display consumers sort on their own.
func (r *Repository) ListConcise(ctx context.Context) ([]models.ConciseWeaponRecord, error) {
	var rows []models.ConciseWeaponRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list concise records: %w", err)
	}
	records := make([]models.ConciseWeaponRecord, 0, len(rows))
	for _, row := range rows {
		record, err := row.Record()
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}
