package models

// DisplayProperties is the common display block shared by definitions.
type DisplayProperties struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	HasIcon     bool   `json:"hasIcon"`
}

// ItemDefinition is one entry of the inventory item table: a weapon, a plug
// candidate, or anything else the game models as an item. Only the fields the
// pipeline reads are decoded.
type ItemDefinition struct {
	Hash                 uint32            `json:"hash"`
	DisplayProperties    DisplayProperties `json:"displayProperties"`
	FlavorText           string            `json:"flavorText"`
	Screenshot           string            `json:"screenshot"`
	ItemTypeDisplayName  string            `json:"itemTypeDisplayName"`
	IconWatermark        string            `json:"iconWatermark"`
	IconWatermarkShelved string            `json:"iconWatermarkShelved"`

	ItemCategoryHashes    []uint32 `json:"itemCategoryHashes"`
	CollectibleHash       uint32   `json:"collectibleHash"`
	DefaultDamageTypeHash uint32   `json:"defaultDamageTypeHash"`

	Inventory      *InventoryBlock `json:"inventory"`
	EquippingBlock *EquippingBlock `json:"equippingBlock"`
	Plug           *PlugBlock      `json:"plug"`
	Sockets        *SocketBlock    `json:"sockets"`

	IsAdept        bool `json:"isAdept"`
	IsHolofoil     bool `json:"isHolofoil"`
	IsFeaturedItem bool `json:"isFeaturedItem"`
	Redacted       bool `json:"redacted"`
}

// Name returns the display name, empty for redacted or nameless items.
func (i *ItemDefinition) Name() string {
	return i.DisplayProperties.Name
}

// HasCategory reports whether the item's category-hash set contains hash.
func (i *ItemDefinition) HasCategory(hash uint32) bool {
	for _, h := range i.ItemCategoryHashes {
		if h == hash {
			return true
		}
	}
	return false
}

// BucketHash returns the inventory bucket hash, or zero when the item has no
// inventory block.
func (i *ItemDefinition) BucketHash() uint32 {
	if i.Inventory == nil {
		return 0
	}
	return i.Inventory.BucketTypeHash
}

// TierType returns the inventory tier type, or TierTypeUnknown (0) when the
// item has no inventory block.
func (i *ItemDefinition) TierType() int {
	if i.Inventory == nil {
		return 0
	}
	return i.Inventory.TierType
}

// AmmoType returns the equipping block ammo type, or zero when absent.
func (i *ItemDefinition) AmmoType() int {
	if i.EquippingBlock == nil {
		return 0
	}
	return i.EquippingBlock.AmmoType
}

// InventoryBlock carries bucket and tier classification.
type InventoryBlock struct {
	BucketTypeHash uint32 `json:"bucketTypeHash"`
	TierType       int    `json:"tierType"`
	TierTypeName   string `json:"tierTypeName"`
}

// EquippingBlock carries equip information; only the ammo type is used.
type EquippingBlock struct {
	AmmoType int `json:"ammoType"`
}

// PlugBlock is present on plug items and identifies the plug's category.
type PlugBlock struct {
	PlugCategoryHash       uint32 `json:"plugCategoryHash"`
	PlugCategoryIdentifier string `json:"plugCategoryIdentifier"`
}

// SocketBlock is the optional socket graph of an item: an ordered list of
// socket entries plus an ordered list of socket categories, each category
// referencing a subset of entry indexes.
type SocketBlock struct {
	SocketEntries    []SocketEntry       `json:"socketEntries"`
	SocketCategories []SocketCategoryRef `json:"socketCategories"`
}

// SocketEntry is one slot on an item. It may carry a fixed plug, its own
// reusable plug list (the curated roll), and/or a reference to a shared pool.
type SocketEntry struct {
	SocketTypeHash        uint32             `json:"socketTypeHash"`
	SingleInitialItemHash uint32             `json:"singleInitialItemHash"`
	ReusablePlugItems     []ReusablePlugItem `json:"reusablePlugItems"`
	RandomizedPlugSetHash uint32             `json:"randomizedPlugSetHash"`
	ReusablePlugSetHash   uint32             `json:"reusablePlugSetHash"`
}

// PlugSetHash returns the pool reference of the socket, preferring the
// randomized pool over the reusable one. Zero means no pool.
func (e *SocketEntry) PlugSetHash() uint32 {
	if e.RandomizedPlugSetHash != 0 {
		return e.RandomizedPlugSetHash
	}
	return e.ReusablePlugSetHash
}

// ReusablePlugItem is one entry of a socket's own plug list.
type ReusablePlugItem struct {
	PlugItemHash uint32 `json:"plugItemHash"`
}

// SocketCategoryRef ties a socket category to the socket-entry indexes that
// belong to it.
type SocketCategoryRef struct {
	SocketCategoryHash uint32 `json:"socketCategoryHash"`
	SocketIndexes      []int  `json:"socketIndexes"`
}

// PlugSetDefinition is a shared, named pool of candidate plugs referenced by
// many weapons.
type PlugSetDefinition struct {
	Hash              uint32         `json:"hash"`
	ReusablePlugItems []PlugSetEntry `json:"reusablePlugItems"`
}

// PlugSetEntry is one pool candidate with its roll flag. A false flag means
// the perk can no longer roll and is surfaced as deprecated.
type PlugSetEntry struct {
	PlugItemHash     uint32 `json:"plugItemHash"`
	CurrentlyCanRoll bool   `json:"currentlyCanRoll"`
}

// CollectibleDefinition links an item to its acquisition source.
type CollectibleDefinition struct {
	Hash         uint32 `json:"hash"`
	ItemHash     uint32 `json:"itemHash"`
	SourceHash   uint32 `json:"sourceHash"`
	SourceString string `json:"sourceString"`
	Redacted     bool   `json:"redacted"`
}

// DamageTypeDefinition describes one damage type.
type DamageTypeDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
	EnumValue         int               `json:"enumValue"`
}

// SocketTypeDefinition describes the behavior of a socket type, including the
// plug categories it accepts.
type SocketTypeDefinition struct {
	Hash               uint32               `json:"hash"`
	SocketCategoryHash uint32               `json:"socketCategoryHash"`
	PlugWhitelist      []PlugWhitelistEntry `json:"plugWhitelist"`
}

// PlugWhitelistEntry is one accepted plug category of a socket type.
type PlugWhitelistEntry struct {
	CategoryHash       uint32 `json:"categoryHash"`
	CategoryIdentifier string `json:"categoryIdentifier"`
}

// SocketCategoryDefinition names a socket category.
type SocketCategoryDefinition struct {
	Hash              uint32            `json:"hash"`
	DisplayProperties DisplayProperties `json:"displayProperties"`
}
