package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"armory/core/bungie"
	"armory/core/storage"
	"armory/core/utils"
	"armory/feature/weapons/models"

	"github.com/minio/minio-go/v7"
	"golang.org/x/sync/errgroup"
)

// Definition table names as published by the manifest metadata.
const (
	TableItems            = "DestinyInventoryItemDefinition"
	TablePlugSets         = "DestinyPlugSetDefinition"
	TableCollectibles     = "DestinyCollectibleDefinition"
	TableDamageTypes      = "DestinyDamageTypeDefinition"
	TableSocketTypes      = "DestinySocketTypeDefinition"
	TableSocketCategories = "DestinySocketCategoryDefinition"
)

// RequiredTables lists every table the transformation joins across. All of
// them must download successfully; resolution cannot run on a partial set.
var RequiredTables = []string{
	TableItems,
	TablePlugSets,
	TableCollectibles,
	TableDamageTypes,
	TableSocketTypes,
	TableSocketCategories,
}

// Tables is one immutable snapshot of the definition tables, keyed by hash.
type Tables struct {
	Items            map[uint32]*models.ItemDefinition           `json:"items"`
	PlugSets         map[uint32]*models.PlugSetDefinition        `json:"plug_sets"`
	Collectibles     map[uint32]*models.CollectibleDefinition    `json:"collectibles"`
	DamageTypes      map[uint32]*models.DamageTypeDefinition     `json:"damage_types"`
	SocketTypes      map[uint32]*models.SocketTypeDefinition     `json:"socket_types"`
	SocketCategories map[uint32]*models.SocketCategoryDefinition `json:"socket_categories"`
}

// Fetch downloads every required definition table in parallel. A single
// failed table aborts the whole fetch: the columns only resolve through
// cross-table joins, so a partial set is useless.
func Fetch(ctx context.Context, client bungie.Client, meta *bungie.Manifest, language string) (*Tables, error) {
	paths := make(map[string]string, len(RequiredTables))
	for _, table := range RequiredTables {
		path, err := meta.TablePath(language, table)
		if err != nil {
			return nil, err
		}
		paths[table] = path
	}

	tables := &Tables{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(fetchTable(gctx, client, TableItems, paths[TableItems], &tables.Items))
	g.Go(fetchTable(gctx, client, TablePlugSets, paths[TablePlugSets], &tables.PlugSets))
	g.Go(fetchTable(gctx, client, TableCollectibles, paths[TableCollectibles], &tables.Collectibles))
	g.Go(fetchTable(gctx, client, TableDamageTypes, paths[TableDamageTypes], &tables.DamageTypes))
	g.Go(fetchTable(gctx, client, TableSocketTypes, paths[TableSocketTypes], &tables.SocketTypes))
	g.Go(fetchTable(gctx, client, TableSocketCategories, paths[TableSocketCategories], &tables.SocketCategories))
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}

// fetchTable downloads one table (a JSON object keyed by decimal-string hash)
// and rekeys it by numeric hash.
func fetchTable[T any](ctx context.Context, client bungie.Client, name, path string, out *map[uint32]*T) func() error {
	return func() error {
		var raw map[string]*T
		if err := client.Get(ctx, path, &raw); err != nil {
			return fmt.Errorf("failed to fetch table %s: %w", name, err)
		}
		*out = utils.RekeyByHash(raw)
		return nil
	}
}

// SnapshotObjectName returns the object key a snapshot of the given version
// is archived under.
func SnapshotObjectName(version string) string {
	return fmt.Sprintf("snapshots/%s/tables.json", version)
}

// Archive stores the fetched snapshot in the object store under the version
// token, for offline inspection and debugging. Failures here are the caller's
// to log; archiving is best effort and never blocks a sync.
func Archive(ctx context.Context, store storage.Client, bucket, version string, tables *Tables) error {
	payload, err := json.Marshal(tables)
	if err != nil {
		return fmt.Errorf("failed to serialize snapshot: %w", err)
	}
	objectName := SnapshotObjectName(version)
	_, err = store.PutObject(ctx, bucket, objectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to archive snapshot %s: %w", objectName, err)
	}
	return nil
}
