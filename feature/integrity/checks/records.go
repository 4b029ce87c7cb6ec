package checks

import (
	"context"
	"errors"
	"fmt"

	"armory/feature/weapons"
	"armory/feature/weapons/models"

	"gorm.io/gorm"
)

// RecordReport strictly types the result of a record-store check.
type RecordReport struct {
	Status        string   `json:"status"` // "ok", "error"
	WeaponCount   int64    `json:"weapon_count"`
	ConciseCount  int64    `json:"concise_count"`
	CountsMatch   bool     `json:"counts_match"`
	TokenPresent  bool     `json:"token_present"`
	SampleDecodes bool     `json:"sample_decodes"`
	MissingTables []string `json:"missing_tables"`
	Errors        []string `json:"errors"`
}

// CheckRecords verifies the persisted record store: all three tables exist,
// the full and concise sets agree in size, a version token accompanies any
// records, and a sampled payload still deserializes.
func CheckRecords(ctx context.Context, db *gorm.DB) (*RecordReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &RecordReport{
		Status:        "ok",
		SampleDecodes: true,
		MissingTables: []string{},
		Errors:        []string{},
	}

	migrator := db.WithContext(ctx).Migrator()
	for _, model := range []interface {
		TableName() string
	}{
		models.WeaponRow{},
		models.ConciseWeaponRow{},
		models.MetadataRow{},
	} {
		if !migrator.HasTable(model) {
			report.MissingTables = append(report.MissingTables, model.TableName())
		}
	}
	if len(report.MissingTables) > 0 {
		report.Status = "error"
		return report, nil
	}

	if err := db.WithContext(ctx).Model(&models.WeaponRow{}).Count(&report.WeaponCount).Error; err != nil {
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("failed to count weapon records: %v", err))
		return report, nil
	}
	if err := db.WithContext(ctx).Model(&models.ConciseWeaponRow{}).Count(&report.ConciseCount).Error; err != nil {
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("failed to count concise records: %v", err))
		return report, nil
	}
	report.CountsMatch = report.WeaponCount == report.ConciseCount
	if !report.CountsMatch {
		report.Status = "error"
		report.Errors = append(report.Errors,
			fmt.Sprintf("record sets diverge: %d full vs %d concise", report.WeaponCount, report.ConciseCount))
	}

	var token models.MetadataRow
	err := db.WithContext(ctx).First(&token, "meta_key = ?", weapons.MetaKeyVersion).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		report.TokenPresent = false
	case err != nil:
		report.Status = "error"
		report.Errors = append(report.Errors, fmt.Sprintf("failed to read version token: %v", err))
		return report, nil
	default:
		report.TokenPresent = token.Value != ""
	}

	// Records without a token (or the reverse) means a swap that never
	// happened through the repository.
	if report.WeaponCount > 0 && !report.TokenPresent {
		report.Status = "error"
		report.Errors = append(report.Errors, "records present but no version token")
	}

	if report.WeaponCount > 0 {
		var sample models.WeaponRow
		if err := db.WithContext(ctx).First(&sample).Error; err != nil {
			report.Status = "error"
			report.Errors = append(report.Errors, fmt.Sprintf("failed to sample a record: %v", err))
			return report, nil
		}
		if _, err := sample.Record(); err != nil {
			report.Status = "error"
			report.SampleDecodes = false
			report.Errors = append(report.Errors, fmt.Sprintf("sampled payload does not decode: %v", err))
		}
	}

	return report, nil
}
