package hashes

// Weapon slot buckets (DestinyInventoryBucketDefinition). Only items in one
// of these three buckets qualify as catalog weapons.
const (
	BucketKineticWeapons uint32 = 1498876634
	BucketEnergyWeapons  uint32 = 2465295065
	BucketPowerWeapons   uint32 = 953998645
)

// SlotNames maps the weapon buckets to their display slot names.
var SlotNames = map[uint32]string{
	BucketKineticWeapons: "Kinetic",
	BucketEnergyWeapons:  "Energy",
	BucketPowerWeapons:   "Power",
}

// Socket category roles (DestinySocketCategoryDefinition).
const (
	// SocketCategoryIntrinsicTraits holds the weapon's frame socket.
	SocketCategoryIntrinsicTraits uint32 = 3956125808
	// SocketCategoryWeaponPerks holds the perk columns and origin traits.
	SocketCategoryWeaponPerks uint32 = 4241085061
)

// Item category markers (DestinyItemCategoryDefinition).
const (
	// ItemCategoryWeapon is the generic weapon marker.
	ItemCategoryWeapon uint32 = 1
	// ItemCategoryDummies tags placeholder items that must never surface.
	ItemCategoryDummies uint32 = 3109687656
	// ItemCategoryOriginTraits tags origin-trait plugs.
	ItemCategoryOriginTraits uint32 = 164955586
)

// TierType enum values carried in the item inventory block.
const (
	TierTypeUnknown  = 0
	TierTypeCurrency = 1
	TierTypeBasic    = 2
	TierTypeCommon   = 3
	TierTypeRare     = 4
	TierTypeSuperior = 5
	TierTypeExotic   = 6
)

// EnhancedPerkTierType marks enhanced trait variants. Base weapon traits ship
// as TierTypeBasic and their enhanced duplicates as TierTypeCommon; the base
// column deliberately hides the enhanced copies. This is an observed property
// of the current manifest, not a documented contract.
const EnhancedPerkTierType = TierTypeCommon

// TrackerPlugCategorySuffix identifies kill-tracker sockets through the
// socket type's plug whitelist (e.g. "v400.plugs.weapons.masterworks.trackers").
// Tracker sockets never contribute a perk column.
const TrackerPlugCategorySuffix = "masterworks.trackers"

// EmptyPlugCategories tags whole plug categories as placeholders; a plug in
// any of these categories is excluded from every perk column.
var EmptyPlugCategories = map[uint32]struct{}{
	ItemCategoryDummies: {},
}

// EmptyPlugHashes are well-known individual placeholder plugs that occupy
// otherwise-empty sockets.
var EmptyPlugHashes = map[uint32]struct{}{
	2323986101: {}, // Empty Mod Socket
	4248210736: {}, // Default Shader
	2931483505: {}, // Default Ornament
}
