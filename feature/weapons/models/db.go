package models

import (
	"encoding/json"
	"time"
)

// WeaponRow persists one full weapon record as a serialized payload keyed by
// the weapon hash. Rows are replaced wholesale on every successful sync.
type WeaponRow struct {
	Hash      uint32    `gorm:"column:hash;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;index"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for weapon rows.
func (WeaponRow) TableName() string {
	return "weapon_records"
}

// NewWeaponRow serializes a full record into its row form.
func NewWeaponRow(record *WeaponRecord) (WeaponRow, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return WeaponRow{}, err
	}
	return WeaponRow{
		Hash:    record.Hash,
		Name:    record.Attributes.Name,
		Payload: payload,
	}, nil
}

// Record deserializes the row payload back into a full record.
func (r WeaponRow) Record() (*WeaponRecord, error) {
	var record WeaponRecord
	if err := json.Unmarshal(r.Payload, &record); err != nil {
		return nil, err
	}
	return &record, nil
}

// ConciseWeaponRow persists one concise weapon record keyed by the weapon hash.
type ConciseWeaponRow struct {
	Hash      uint32    `gorm:"column:hash;primaryKey;autoIncrement:false"`
	Name      string    `gorm:"column:name;index"`
	Payload   []byte    `gorm:"column:payload"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for concise rows.
func (ConciseWeaponRow) TableName() string {
	return "weapon_records_concise"
}

// NewConciseWeaponRow serializes a concise record into its row form.
func NewConciseWeaponRow(record ConciseWeaponRecord) (ConciseWeaponRow, error) {
	payload, err := json.Marshal(record)
	if err != nil {
		return ConciseWeaponRow{}, err
	}
	return ConciseWeaponRow{
		Hash:    record.Hash,
		Name:    record.Name,
		Payload: payload,
	}, nil
}

// Record deserializes the row payload back into a concise record.
func (r ConciseWeaponRow) Record() (ConciseWeaponRecord, error) {
	var record ConciseWeaponRecord
	err := json.Unmarshal(r.Payload, &record)
	return record, err
}

// MetadataRow is a small key/value record; the manifest version token lives
// here under a fixed key.
type MetadataRow struct {
	Key       string    `gorm:"column:meta_key;primaryKey"`
	Value     string    `gorm:"column:meta_value"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name for metadata rows.
func (MetadataRow) TableName() string {
	return "catalog_metadata"
}
