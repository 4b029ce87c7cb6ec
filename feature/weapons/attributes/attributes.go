package attributes

import (
	"armory/feature/weapons/auxdata"
	"armory/feature/weapons/models"
)

// Deriver resolves the attributes that are not stored on the item itself:
// season, event, source and craftability. The collectible reverse index is
// built once per snapshot, not per item.
type Deriver struct {
	aux          *auxdata.Data
	sourceByItem map[uint32]uint32
}

// NewDeriver builds a deriver over the auxiliary lookups and the collectible
// table of one snapshot.
func NewDeriver(aux *auxdata.Data, collectibles map[uint32]*models.CollectibleDefinition) *Deriver {
	sourceByItem := make(map[uint32]uint32, len(collectibles))
	for _, collectible := range collectibles {
		if collectible == nil || collectible.ItemHash == 0 || collectible.SourceHash == 0 {
			continue
		}
		sourceByItem[collectible.ItemHash] = collectible.SourceHash
	}
	return &Deriver{aux: aux, sourceByItem: sourceByItem}
}

// Watermark selects the item's watermark path: the primary watermark,
// falling back to the shelved one. Empty means no watermark.
func (d *Deriver) Watermark(item *models.ItemDefinition) string {
	if item.IconWatermark != "" {
		return item.IconWatermark
	}
	return item.IconWatermarkShelved
}

// Source returns the source hash of the collectible referencing this item.
func (d *Deriver) Source(itemHash uint32) (uint32, bool) {
	source, ok := d.sourceByItem[itemHash]
	return source, ok
}

// Craftable reports membership in the craftable-item set.
func (d *Deriver) Craftable(itemHash uint32) bool {
	return d.aux.Craftable[itemHash]
}

// lookup is one step of a fallback chain; ok=false falls through to the next.
type lookup func() (int, bool)

// Season resolves the item's season. The priority order is the contract:
// watermark, then source hash, then item hash; no hit resolves to nil.
func (d *Deriver) Season(item *models.ItemDefinition) *int {
	watermark := d.Watermark(item)
	return first([]lookup{
		func() (int, bool) { return mapHit(d.aux.WatermarkToSeason, watermark) },
		func() (int, bool) {
			source, ok := d.Source(item.Hash)
			if !ok {
				return 0, false
			}
			v, ok := d.aux.SourceToSeason[source]
			return v, ok
		},
		func() (int, bool) { v, ok := d.aux.ItemToSeason[item.Hash]; return v, ok },
	})
}

// Event resolves the item's event with the same layered policy as Season,
// minus the source step (no source→event lookup exists).
func (d *Deriver) Event(item *models.ItemDefinition) *int {
	watermark := d.Watermark(item)
	return first([]lookup{
		func() (int, bool) { return mapHit(d.aux.WatermarkToEvent, watermark) },
		func() (int, bool) { v, ok := d.aux.ItemToEvent[item.Hash]; return v, ok },
	})
}

// first tries each lookup in priority order and returns the first hit.
func first(lookups []lookup) *int {
	for _, l := range lookups {
		if v, ok := l(); ok {
			return &v
		}
	}
	return nil
}

// mapHit guards against an empty key matching a degenerate map entry.
func mapHit(m map[string]int, key string) (int, bool) {
	if key == "" {
		return 0, false
	}
	v, ok := m[key]
	return v, ok
}
