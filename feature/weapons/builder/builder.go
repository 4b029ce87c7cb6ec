package builder

import (
	"fmt"

	"armory/feature/weapons/attributes"
	"armory/feature/weapons/auxdata"
	"armory/feature/weapons/hashes"
	"armory/feature/weapons/manifest"
	"armory/feature/weapons/models"
	"armory/feature/weapons/sockets"

	"go.uber.org/zap"
)

// Builder assembles the full and concise record sets for every qualifying
// item of one table snapshot.
type Builder struct {
	tables   *manifest.Tables
	resolver *sockets.Resolver
	deriver  *attributes.Deriver
	logger   *zap.Logger
}

// New creates a builder over one snapshot and auxiliary data set.
func New(tables *manifest.Tables, aux *auxdata.Data, logger *zap.Logger) *Builder {
	return &Builder{
		tables:   tables,
		resolver: sockets.NewResolver(tables),
		deriver:  attributes.NewDeriver(aux, tables.Collectibles),
		logger:   logger,
	}
}

// Build produces the full and concise record sets. A single malformed item
// never aborts the batch: its failure is logged and the item is omitted.
// Output order is not guaranteed.
func (b *Builder) Build() ([]models.WeaponRecord, []models.ConciseWeaponRecord) {
	var full []models.WeaponRecord
	var concise []models.ConciseWeaponRecord

	for _, item := range b.tables.Items {
		if !Qualifies(item) {
			continue
		}
		record, err := b.buildOne(item)
		if err != nil {
			b.logger.Warn("Skipping weapon, resolution failed",
				zap.Uint32("hash", item.Hash),
				zap.String("name", item.Name()),
				zap.Error(err))
			continue
		}
		full = append(full, *record)
		concise = append(concise, models.Concise(record))
	}
	return full, concise
}

// Qualifies applies the candidate filter before any resolution work: the item
// must carry the weapon category and not the dummy category, sit in one of
// the three weapon-slot buckets, have a display name and not be redacted.
// Failing the filter is expected, not an error.
func Qualifies(item *models.ItemDefinition) bool {
	if item == nil || item.Redacted || item.Name() == "" {
		return false
	}
	if !item.HasCategory(hashes.ItemCategoryWeapon) || item.HasCategory(hashes.ItemCategoryDummies) {
		return false
	}
	_, ok := hashes.SlotNames[item.BucketHash()]
	return ok
}

// buildOne assembles one record. A panic out of the socket graph (malformed
// category indexes in redacted or cross-version data) is converted into the
// per-item error so the batch continues.
func (b *Builder) buildOne(item *models.ItemDefinition) (record *models.WeaponRecord, err error) {
	defer func() {
		if r := recover(); r != nil {
			record = nil
			err = fmt.Errorf("resolution panicked: %v", r)
		}
	}()

	record = &models.WeaponRecord{
		Hash:        item.Hash,
		Attributes:  b.attributes(item),
		Frame:       b.resolver.Frame(item),
		Intrinsics:  b.resolver.Intrinsics(item),
		PerkColumns: b.resolver.PerkColumns(item),
	}
	return record, nil
}

func (b *Builder) attributes(item *models.ItemDefinition) models.WeaponAttributes {
	attrs := models.WeaponAttributes{
		Hash:                item.Hash,
		Name:                item.Name(),
		Description:         item.DisplayProperties.Description,
		FlavorText:          item.FlavorText,
		Icon:                item.DisplayProperties.Icon,
		Watermark:           b.deriver.Watermark(item),
		Screenshot:          item.Screenshot,
		ItemTypeDisplayName: item.ItemTypeDisplayName,
		Slot:                hashes.SlotNames[item.BucketHash()],
		BucketHash:          item.BucketHash(),
		AmmoType:            item.AmmoType(),
		Season:              b.deriver.Season(item),
		Event:               b.deriver.Event(item),
		Craftable:           b.deriver.Craftable(item.Hash),
		Adept:               item.IsAdept,
		Holofoil:            item.IsHolofoil,
		Featured:            item.IsFeaturedItem,
	}
	if item.Inventory != nil {
		attrs.TierTypeName = item.Inventory.TierTypeName
	}
	if source, ok := b.deriver.Source(item.Hash); ok {
		attrs.SourceHash = source
	}
	if damage := b.tables.DamageTypes[item.DefaultDamageTypeHash]; damage != nil {
		attrs.DamageType = &models.DamageTypeInfo{
			Hash: damage.Hash,
			Name: damage.DisplayProperties.Name,
			Icon: damage.DisplayProperties.Icon,
		}
	}
	return attrs
}
