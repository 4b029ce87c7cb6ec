package sockets

import (
	"testing"

	"armory/feature/weapons/hashes"
	"armory/feature/weapons/manifest"
	"armory/feature/weapons/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plugItem builds a minimal displayable plug definition.
func plugItem(hash uint32, name string, categories ...uint32) *models.ItemDefinition {
	return &models.ItemDefinition{
		Hash:               hash,
		DisplayProperties:  models.DisplayProperties{Name: name},
		ItemCategoryHashes: categories,
		Inventory:          &models.InventoryBlock{TierType: hashes.TierTypeBasic},
	}
}

func emptyTables() *manifest.Tables {
	return &manifest.Tables{
		Items:            map[uint32]*models.ItemDefinition{},
		PlugSets:         map[uint32]*models.PlugSetDefinition{},
		Collectibles:     map[uint32]*models.CollectibleDefinition{},
		DamageTypes:      map[uint32]*models.DamageTypeDefinition{},
		SocketTypes:      map[uint32]*models.SocketTypeDefinition{},
		SocketCategories: map[uint32]*models.SocketCategoryDefinition{},
	}
}

func weaponWithSockets(entries []models.SocketEntry, categories []models.SocketCategoryRef) *models.ItemDefinition {
	return &models.ItemDefinition{
		Hash:              1,
		DisplayProperties: models.DisplayProperties{Name: "Test Weapon"},
		Sockets: &models.SocketBlock{
			SocketEntries:    entries,
			SocketCategories: categories,
		},
	}
}

func TestFrame(t *testing.T) {
	tables := emptyTables()
	tables.Items[100] = plugItem(100, "Adaptive Frame")

	item := weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 100}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryIntrinsicTraits, SocketIndexes: []int{0}},
		},
	)

	frame := NewResolver(tables).Frame(item)
	require.NotNil(t, frame)
	assert.Equal(t, uint32(100), frame.Hash)
	assert.Equal(t, "Adaptive Frame", frame.Name)
}

func TestFrameAbsentStepsYieldNil(t *testing.T) {
	tables := emptyTables()
	tables.Items[100] = plugItem(100, "Adaptive Frame")
	resolver := NewResolver(tables)

	// No socket block at all.
	assert.Nil(t, resolver.Frame(&models.ItemDefinition{}))

	// No intrinsic category.
	assert.Nil(t, resolver.Frame(weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 100}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)))

	// Category present but empty.
	assert.Nil(t, resolver.Frame(weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 100}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryIntrinsicTraits, SocketIndexes: []int{}},
		},
	)))

	// Fixed plug references an unknown item.
	assert.Nil(t, resolver.Frame(weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 999}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryIntrinsicTraits, SocketIndexes: []int{0}},
		},
	)))

	// No fixed plug on the socket.
	assert.Nil(t, resolver.Frame(weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 0}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryIntrinsicTraits, SocketIndexes: []int{0}},
		},
	)))
}

func TestIntrinsicsSelectsOriginTraits(t *testing.T) {
	tables := emptyTables()
	tables.Items[200] = plugItem(200, "Veist Surge", hashes.ItemCategoryOriginTraits)
	tables.Items[201] = plugItem(201, "Rampage")

	item := weaponWithSockets(
		[]models.SocketEntry{
			{SingleInitialItemHash: 200},
			{SingleInitialItemHash: 201},
		},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0, 1}},
		},
	)

	intrinsics := NewResolver(tables).Intrinsics(item)
	require.Len(t, intrinsics, 1)
	assert.Equal(t, "Veist Surge", intrinsics[0].Name)
}

func TestPerkColumnsPoolOrderAndFlags(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Outlaw")
	tables.Items[301] = plugItem(301, "Rampage")
	tables.Items[302] = plugItem(302, "Kill Clip")
	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash: 50,
		ReusablePlugItems: []models.PlugSetEntry{
			{PlugItemHash: 301, CurrentlyCanRoll: true},
			{PlugItemHash: 300, CurrentlyCanRoll: true},
			{PlugItemHash: 302, CurrentlyCanRoll: false},
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{
			SingleInitialItemHash: 300,
			RandomizedPlugSetHash: 50,
			ReusablePlugItems:     []models.ReusablePlugItem{{PlugItemHash: 300}},
		}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	column := columns[0]
	require.Len(t, column, 3)

	// Pool order is preserved, not the curated list order.
	assert.Equal(t, "Rampage", column[0].Name)
	assert.False(t, column[0].Curated)
	assert.False(t, column[0].Deprecated)

	assert.Equal(t, "Outlaw", column[1].Name)
	assert.True(t, column[1].Curated)
	assert.False(t, column[1].CuratedExclusive)

	assert.Equal(t, "Kill Clip", column[2].Name)
	assert.True(t, column[2].Deprecated)
}

func TestPerkColumnsCuratedExclusiveAppended(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Pool Perk")
	tables.Items[310] = plugItem(310, "Exclusive Perk")
	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash: 50,
		ReusablePlugItems: []models.PlugSetEntry{
			{PlugItemHash: 300, CurrentlyCanRoll: true},
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{
			RandomizedPlugSetHash: 50,
			ReusablePlugItems:     []models.ReusablePlugItem{{PlugItemHash: 310}},
		}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	require.Len(t, columns[0], 2)
	assert.Equal(t, "Pool Perk", columns[0][0].Name)

	exclusive := columns[0][1]
	assert.Equal(t, "Exclusive Perk", exclusive.Name)
	assert.True(t, exclusive.Curated)
	assert.True(t, exclusive.CuratedExclusive)
	assert.False(t, exclusive.Deprecated)
}

func TestPerkColumnsNoPoolUsesCuratedList(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Fixed Perk")
	tables.Items[301] = plugItem(301, "Alternate Perk")

	item := weaponWithSockets(
		[]models.SocketEntry{{
			SingleInitialItemHash: 300,
			ReusablePlugItems: []models.ReusablePlugItem{
				{PlugItemHash: 300},
				{PlugItemHash: 301},
			},
		}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	require.Len(t, columns[0], 2)
	assert.True(t, columns[0][0].Curated)
	assert.False(t, columns[0][0].CuratedExclusive)
	assert.False(t, columns[0][1].Curated)
}

func TestPerkColumnsSingleFixedPlug(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Only Perk")

	item := weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 300}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	require.Len(t, columns[0], 1)
	assert.True(t, columns[0][0].Curated)
	assert.True(t, columns[0][0].CuratedExclusive)
}

func TestPerkColumnsSkipsTrackerSockets(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Kill Tracker")
	tables.SocketTypes[70] = &models.SocketTypeDefinition{
		Hash: 70,
		PlugWhitelist: []models.PlugWhitelistEntry{
			{CategoryIdentifier: "v400.plugs.weapons.masterworks.trackers"},
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{SocketTypeHash: 70, SingleInitialItemHash: 300}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	assert.Empty(t, NewResolver(tables).PerkColumns(item))
}

func TestPerkColumnsSkipsOriginSockets(t *testing.T) {
	tables := emptyTables()
	tables.Items[200] = plugItem(200, "Veist Surge", hashes.ItemCategoryOriginTraits)

	item := weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 200}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	assert.Empty(t, NewResolver(tables).PerkColumns(item))
}

func TestPerkColumnsFiltersPlaceholderAndEnhancedPlugs(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Real Perk")
	tables.Items[301] = plugItem(301, "") // nameless
	tables.Items[2323986101] = plugItem(2323986101, "Empty Mod Socket")
	tables.Items[303] = plugItem(303, "Dummy Perk", hashes.ItemCategoryDummies)

	enhanced := plugItem(304, "Real Perk Enhanced")
	enhanced.Inventory.TierType = hashes.EnhancedPerkTierType
	tables.Items[304] = enhanced

	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash: 50,
		ReusablePlugItems: []models.PlugSetEntry{
			{PlugItemHash: 300, CurrentlyCanRoll: true},
			{PlugItemHash: 301, CurrentlyCanRoll: true},
			{PlugItemHash: 2323986101, CurrentlyCanRoll: true},
			{PlugItemHash: 303, CurrentlyCanRoll: true},
			{PlugItemHash: 304, CurrentlyCanRoll: true},
			{PlugItemHash: 999, CurrentlyCanRoll: true}, // unknown
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{RandomizedPlugSetHash: 50}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	require.Len(t, columns[0], 1)
	assert.Equal(t, "Real Perk", columns[0][0].Name)
}

func TestPerkColumnsCollapsesDuplicates(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Repeated Perk")
	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash: 50,
		ReusablePlugItems: []models.PlugSetEntry{
			{PlugItemHash: 300, CurrentlyCanRoll: true},
			{PlugItemHash: 300, CurrentlyCanRoll: true},
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{RandomizedPlugSetHash: 50}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	assert.Len(t, columns[0], 1)
}

func TestPerkColumnsOmitsEmptyColumns(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Surviving Perk")
	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash: 50,
		ReusablePlugItems: []models.PlugSetEntry{
			{PlugItemHash: 999, CurrentlyCanRoll: true}, // resolves to nothing
		},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{
			{RandomizedPlugSetHash: 50},
			{SingleInitialItemHash: 300},
		},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0, 1}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	assert.Equal(t, "Surviving Perk", columns[0][0].Name)
}

func TestRandomizedPoolPreferredOverReusablePool(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Random Perk")
	tables.Items[301] = plugItem(301, "Reusable Perk")
	tables.PlugSets[50] = &models.PlugSetDefinition{
		Hash:              50,
		ReusablePlugItems: []models.PlugSetEntry{{PlugItemHash: 300, CurrentlyCanRoll: true}},
	}
	tables.PlugSets[51] = &models.PlugSetDefinition{
		Hash:              51,
		ReusablePlugItems: []models.PlugSetEntry{{PlugItemHash: 301, CurrentlyCanRoll: true}},
	}

	item := weaponWithSockets(
		[]models.SocketEntry{{
			RandomizedPlugSetHash: 50,
			ReusablePlugSetHash:   51,
		}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{0}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	require.Len(t, columns[0], 1)
	assert.Equal(t, "Random Perk", columns[0][0].Name)
}

func TestSocketAtOutOfRangeIndexIgnored(t *testing.T) {
	tables := emptyTables()
	tables.Items[300] = plugItem(300, "Only Perk")

	item := weaponWithSockets(
		[]models.SocketEntry{{SingleInitialItemHash: 300}},
		[]models.SocketCategoryRef{
			{SocketCategoryHash: hashes.SocketCategoryWeaponPerks, SocketIndexes: []int{5, 0, -1}},
		},
	)

	columns := NewResolver(tables).PerkColumns(item)
	require.Len(t, columns, 1)
	assert.Equal(t, "Only Perk", columns[0][0].Name)
}
