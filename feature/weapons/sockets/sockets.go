package sockets

import (
	"strings"

	"armory/feature/weapons/hashes"
	"armory/feature/weapons/manifest"
	"armory/feature/weapons/models"
)

// Resolver resolves the socket graph of one item against a table snapshot:
// the intrinsic frame, the origin traits, and the ordered perk columns.
type Resolver struct {
	tables *manifest.Tables
}

// NewResolver creates a resolver over one immutable table snapshot.
func NewResolver(tables *manifest.Tables) *Resolver {
	return &Resolver{tables: tables}
}

// Frame resolves the weapon's intrinsic frame plug: the fixed plug of the
// first socket in the intrinsic-traits category. Every absent step yields
// "no frame", never an error.
func (r *Resolver) Frame(item *models.ItemDefinition) *models.PlugDisplay {
	indexes := socketIndexes(item, hashes.SocketCategoryIntrinsicTraits)
	if len(indexes) == 0 {
		return nil
	}
	entry := socketAt(item, indexes[0])
	if entry == nil || entry.SingleInitialItemHash == 0 {
		return nil
	}
	plug := r.tables.Items[entry.SingleInitialItemHash]
	if plug == nil || plug.Name() == "" {
		return nil
	}
	display := displayOf(plug)
	return &display
}

// Intrinsics resolves the weapon's origin traits: every socket in the
// weapon-perks category whose fixed plug carries the origin-trait category.
func (r *Resolver) Intrinsics(item *models.ItemDefinition) []models.PlugDisplay {
	var intrinsics []models.PlugDisplay
	for _, index := range socketIndexes(item, hashes.SocketCategoryWeaponPerks) {
		entry := socketAt(item, index)
		if entry == nil {
			continue
		}
		plug := r.tables.Items[entry.SingleInitialItemHash]
		if plug == nil || plug.Name() == "" || !plug.HasCategory(hashes.ItemCategoryOriginTraits) {
			continue
		}
		intrinsics = append(intrinsics, displayOf(plug))
	}
	return intrinsics
}

// PerkColumns resolves the perk columns in socket order within the
// weapon-perks category. Tracker sockets and origin-trait sockets contribute
// no column, and a column with zero surviving perks is omitted entirely.
func (r *Resolver) PerkColumns(item *models.ItemDefinition) [][]models.Perk {
	var columns [][]models.Perk
	for _, index := range socketIndexes(item, hashes.SocketCategoryWeaponPerks) {
		entry := socketAt(item, index)
		if entry == nil {
			continue
		}
		if r.isTracker(entry.SocketTypeHash) || r.isOriginSocket(entry) {
			continue
		}
		column := r.column(entry)
		if len(column) > 0 {
			columns = append(columns, column)
		}
	}
	return columns
}

// column builds one perk column from a socket entry, preferring the
// randomized pool over the reusable pool over the socket's own plug list over
// the single fixed plug.
func (r *Resolver) column(entry *models.SocketEntry) []models.Perk {
	curated := make(map[uint32]struct{}, len(entry.ReusablePlugItems))
	for _, reusable := range entry.ReusablePlugItems {
		curated[reusable.PlugItemHash] = struct{}{}
	}

	if set := r.tables.PlugSets[entry.PlugSetHash()]; set != nil {
		return r.poolColumn(entry, set, curated)
	}

	var column []models.Perk
	seen := make(map[uint32]struct{})

	if len(entry.ReusablePlugItems) > 0 {
		// No pool: the socket's own list is the column; the single fixed plug
		// marks the curated member.
		for _, reusable := range entry.ReusablePlugItems {
			plug := r.tables.Items[reusable.PlugItemHash]
			if !displayable(plug) || collapsed(seen, reusable.PlugItemHash) {
				continue
			}
			column = append(column, models.Perk{
				PlugDisplay: displayOf(plug),
				Curated:     reusable.PlugItemHash == entry.SingleInitialItemHash,
			})
		}
		return column
	}

	if entry.SingleInitialItemHash != 0 {
		plug := r.tables.Items[entry.SingleInitialItemHash]
		if displayable(plug) {
			column = append(column, models.Perk{
				PlugDisplay:      displayOf(plug),
				Curated:          true,
				CuratedExclusive: true,
			})
		}
	}
	return column
}

// poolColumn builds a column from a shared plug pool. Pool order is
// preserved; curated perks missing from the pool are appended after, flagged
// curated-exclusive.
func (r *Resolver) poolColumn(entry *models.SocketEntry, set *models.PlugSetDefinition, curated map[uint32]struct{}) []models.Perk {
	var column []models.Perk
	seen := make(map[uint32]struct{})

	poolMembers := make(map[uint32]struct{}, len(set.ReusablePlugItems))
	for _, candidate := range set.ReusablePlugItems {
		poolMembers[candidate.PlugItemHash] = struct{}{}
	}

	for _, candidate := range set.ReusablePlugItems {
		plug := r.tables.Items[candidate.PlugItemHash]
		if !displayable(plug) || collapsed(seen, candidate.PlugItemHash) {
			continue
		}
		_, isCurated := curated[candidate.PlugItemHash]
		column = append(column, models.Perk{
			PlugDisplay: displayOf(plug),
			Curated:     isCurated,
			Deprecated:  !candidate.CurrentlyCanRoll,
		})
	}

	// Curated-exclusive perks: in the socket's curated list but not in the
	// pool, appended in curated-list order.
	for _, reusable := range entry.ReusablePlugItems {
		if _, inPool := poolMembers[reusable.PlugItemHash]; inPool {
			continue
		}
		plug := r.tables.Items[reusable.PlugItemHash]
		if !displayable(plug) || collapsed(seen, reusable.PlugItemHash) {
			continue
		}
		column = append(column, models.Perk{
			PlugDisplay:      displayOf(plug),
			Curated:          true,
			CuratedExclusive: true,
		})
	}
	return column
}

// isTracker reports whether the socket type accepts kill-tracker plugs.
func (r *Resolver) isTracker(socketTypeHash uint32) bool {
	socketType := r.tables.SocketTypes[socketTypeHash]
	if socketType == nil {
		return false
	}
	for _, entry := range socketType.PlugWhitelist {
		if strings.HasSuffix(entry.CategoryIdentifier, hashes.TrackerPlugCategorySuffix) {
			return true
		}
	}
	return false
}

// isOriginSocket reports whether the socket's fixed plug is an origin trait;
// those sockets surface as intrinsics, not perk columns.
func (r *Resolver) isOriginSocket(entry *models.SocketEntry) bool {
	plug := r.tables.Items[entry.SingleInitialItemHash]
	return plug != nil && plug.HasCategory(hashes.ItemCategoryOriginTraits)
}

// displayable reports whether a plug may appear in a perk column: it must
// exist, have a display name, not belong to a placeholder plug category, and
// not be an enhanced-tier duplicate of a base perk.
func displayable(plug *models.ItemDefinition) bool {
	if plug == nil || plug.Name() == "" {
		return false
	}
	if _, empty := hashes.EmptyPlugHashes[plug.Hash]; empty {
		return false
	}
	for _, category := range plug.ItemCategoryHashes {
		if _, empty := hashes.EmptyPlugCategories[category]; empty {
			return false
		}
	}
	if plug.TierType() == hashes.EnhancedPerkTierType {
		return false
	}
	return true
}

// collapsed records hash in seen and reports whether it was already present.
// Duplicate plugs within one column collapse to their first occurrence.
func collapsed(seen map[uint32]struct{}, hash uint32) bool {
	if _, dup := seen[hash]; dup {
		return true
	}
	seen[hash] = struct{}{}
	return false
}

// socketIndexes returns the socket-entry indexes of the given category, in
// category order.
func socketIndexes(item *models.ItemDefinition, categoryHash uint32) []int {
	if item.Sockets == nil {
		return nil
	}
	for _, category := range item.Sockets.SocketCategories {
		if category.SocketCategoryHash == categoryHash {
			return category.SocketIndexes
		}
	}
	return nil
}

// socketAt returns the socket entry at index, or nil when the index is out of
// range (malformed category references occur in redacted data).
func socketAt(item *models.ItemDefinition, index int) *models.SocketEntry {
	if item.Sockets == nil || index < 0 || index >= len(item.Sockets.SocketEntries) {
		return nil
	}
	return &item.Sockets.SocketEntries[index]
}

func displayOf(plug *models.ItemDefinition) models.PlugDisplay {
	return models.PlugDisplay{
		Hash:        plug.Hash,
		Name:        plug.Name(),
		Description: plug.DisplayProperties.Description,
		Icon:        plug.DisplayProperties.Icon,
		ItemType:    plug.ItemTypeDisplayName,
	}
}
