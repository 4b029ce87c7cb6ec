package models

// PlugDisplay is the display data of a resolved plug (frame, origin trait or
// perk candidate).
type PlugDisplay struct {
	Hash        uint32 `json:"hash"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	ItemType    string `json:"item_type"`
}

// Perk is one perk-column candidate with its roll flags.
type Perk struct {
	PlugDisplay
	// Curated marks the perk as part of the socket's intended roll.
	Curated bool `json:"curated"`
	// CuratedExclusive marks a curated perk that is absent from the random pool.
	CuratedExclusive bool `json:"curated_exclusive"`
	// Deprecated marks a pool perk that can no longer roll.
	Deprecated bool `json:"deprecated"`
}

// DamageTypeInfo is the resolved default damage type of a weapon.
type DamageTypeInfo struct {
	Hash uint32 `json:"hash"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// WeaponAttributes carries identity, classification and derived fields of one
// weapon.
type WeaponAttributes struct {
	Hash                uint32 `json:"hash"`
	Name                string `json:"name"`
	Description         string `json:"description"`
	FlavorText          string `json:"flavor_text,omitempty"`
	Icon                string `json:"icon"`
	Watermark           string `json:"watermark,omitempty"`
	Screenshot          string `json:"screenshot,omitempty"`
	TierTypeName        string `json:"tier_type_name"`
	ItemTypeDisplayName string `json:"item_type"`
	Slot                string `json:"slot"`
	BucketHash          uint32 `json:"bucket_hash"`
	AmmoType            int    `json:"ammo_type"`

	DamageType *DamageTypeInfo `json:"damage_type,omitempty"`
	SourceHash uint32          `json:"source_hash,omitempty"`
	Season     *int            `json:"season,omitempty"`
	Event      *int            `json:"event,omitempty"`

	Craftable bool `json:"craftable"`
	Adept     bool `json:"adept"`
	Holofoil  bool `json:"holofoil"`
	Featured  bool `json:"featured"`
}

// WeaponRecord is the full output shape of one weapon: attributes, resolved
// frame, origin traits and perk columns. Records are immutable once built.
type WeaponRecord struct {
	Hash        uint32           `json:"hash"`
	Attributes  WeaponAttributes `json:"attributes"`
	Frame       *PlugDisplay     `json:"frame,omitempty"`
	Intrinsics  []PlugDisplay    `json:"intrinsics,omitempty"`
	PerkColumns [][]Perk         `json:"perk_columns,omitempty"`
}

// ConciseWeaponRecord is the flattened projection of a WeaponRecord for
// list/browse use: perk and frame objects are replaced by their display names.
type ConciseWeaponRecord struct {
	Hash                uint32     `json:"hash"`
	Name                string     `json:"name"`
	TierTypeName        string     `json:"tier_type_name"`
	ItemTypeDisplayName string     `json:"item_type"`
	Slot                string     `json:"slot"`
	DamageType          string     `json:"damage_type,omitempty"`
	AmmoType            int        `json:"ammo_type"`
	Frame               string     `json:"frame,omitempty"`
	Intrinsics          []string   `json:"intrinsics,omitempty"`
	Perks               [][]string `json:"perks,omitempty"`
	Season              *int       `json:"season,omitempty"`
	Event               *int       `json:"event,omitempty"`
	Craftable           bool       `json:"craftable"`
	Adept               bool       `json:"adept"`
	Holofoil            bool       `json:"holofoil"`
	Featured            bool       `json:"featured"`
}

// Concise projects a full record into its concise form. It is a pure function
// of the full record; the concise shape is never mutated independently.
func Concise(full *WeaponRecord) ConciseWeaponRecord {
	concise := ConciseWeaponRecord{
		Hash:                full.Hash,
		Name:                full.Attributes.Name,
		TierTypeName:        full.Attributes.TierTypeName,
		ItemTypeDisplayName: full.Attributes.ItemTypeDisplayName,
		Slot:                full.Attributes.Slot,
		AmmoType:            full.Attributes.AmmoType,
		Season:              full.Attributes.Season,
		Event:               full.Attributes.Event,
		Craftable:           full.Attributes.Craftable,
		Adept:               full.Attributes.Adept,
		Holofoil:            full.Attributes.Holofoil,
		Featured:            full.Attributes.Featured,
	}
	if full.Attributes.DamageType != nil {
		concise.DamageType = full.Attributes.DamageType.Name
	}
	if full.Frame != nil {
		concise.Frame = full.Frame.Name
	}
	for _, intrinsic := range full.Intrinsics {
		concise.Intrinsics = append(concise.Intrinsics, intrinsic.Name)
	}
	for _, column := range full.PerkColumns {
		names := make([]string, 0, len(column))
		for _, perk := range column {
			names = append(names, perk.Name)
		}
		concise.Perks = append(concise.Perks, names)
	}
	return concise
}
