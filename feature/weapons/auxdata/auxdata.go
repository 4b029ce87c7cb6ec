package auxdata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"armory/core/bungie"
	"armory/core/storage"
	"armory/core/utils"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CacheObjectName is the fixed object key the loaded set is cached under.
// The auxiliary data has no version token of its own; it is refreshed only by
// explicitly removing this object.
const CacheObjectName = "cache/auxiliary-data.json"

// Auxiliary file names, relative to the configured auxiliary base URL.
const (
	fileWatermarkToSeason = "watermark-to-season.json"
	fileWatermarkToEvent  = "watermark-to-event.json"
	fileSourceToSeason    = "source-to-season.json"
	fileItemToSeason      = "seasons.json"
	fileItemToEvent       = "events.json"
	fileCraftableHashes   = "craftable-hashes.json"
)

// Data is the loaded set of auxiliary lookups. Any of the maps may be empty
// when its file failed to load; derivation then degrades to "unknown" for the
// affected attribute instead of blocking the sync.
type Data struct {
	WatermarkToSeason map[string]int  `json:"watermark_to_season"`
	WatermarkToEvent  map[string]int  `json:"watermark_to_event"`
	SourceToSeason    map[uint32]int  `json:"source_to_season"`
	ItemToSeason      map[uint32]int  `json:"item_to_season"`
	ItemToEvent       map[uint32]int  `json:"item_to_event"`
	Craftable         map[uint32]bool `json:"craftable"`
}

// Empty returns a Data with every lookup initialized and empty.
func Empty() *Data {
	return &Data{
		WatermarkToSeason: map[string]int{},
		WatermarkToEvent:  map[string]int{},
		SourceToSeason:    map[uint32]int{},
		ItemToSeason:      map[uint32]int{},
		ItemToEvent:       map[uint32]int{},
		Craftable:         map[uint32]bool{},
	}
}

// Loader fetches and caches the auxiliary lookups.
type Loader struct {
	client  bungie.Client
	store   storage.Client
	bucket  string
	baseURL string
	logger  *zap.Logger
}

// NewLoader creates a loader backed by the given HTTP client and object store.
func NewLoader(client bungie.Client, store storage.Client, bucket, baseURL string, logger *zap.Logger) *Loader {
	return &Loader{
		client:  client,
		store:   store,
		bucket:  bucket,
		baseURL: baseURL,
		logger:  logger,
	}
}

// Load returns the auxiliary data set. A cached blob is returned without any
// network access; otherwise all six files are fetched in parallel, each
// degrading to empty on individual failure, and the successful set is cached
// as a unit. Load never fails the sync.
func (l *Loader) Load(ctx context.Context) *Data {
	if cached := l.fromCache(ctx); cached != nil {
		l.logger.Debug("Auxiliary data served from cache")
		return cached
	}

	data := Empty()

	var wg sync.WaitGroup
	fetch := func(name string, decode func(body []byte) error) {
		defer wg.Done()
		var raw json.RawMessage
		if err := l.client.Get(ctx, l.baseURL+"/"+name, &raw); err != nil {
			l.logger.Warn("Auxiliary file failed to load, degrading to empty",
				zap.String("file", name), zap.Error(err))
			return
		}
		if err := decode(raw); err != nil {
			l.logger.Warn("Auxiliary file failed to decode, degrading to empty",
				zap.String("file", name), zap.Error(err))
		}
	}

	wg.Add(6)
	go fetch(fileWatermarkToSeason, func(body []byte) error {
		return json.Unmarshal(body, &data.WatermarkToSeason)
	})
	go fetch(fileWatermarkToEvent, func(body []byte) error {
		return json.Unmarshal(body, &data.WatermarkToEvent)
	})
	go fetch(fileSourceToSeason, decodeHashMap(&data.SourceToSeason))
	go fetch(fileItemToSeason, decodeHashMap(&data.ItemToSeason))
	go fetch(fileItemToEvent, decodeHashMap(&data.ItemToEvent))
	go fetch(fileCraftableHashes, func(body []byte) error {
		var hashes []uint32
		if err := json.Unmarshal(body, &hashes); err != nil {
			return err
		}
		for _, h := range hashes {
			data.Craftable[h] = true
		}
		return nil
	})
	wg.Wait()

	l.toCache(ctx, data)
	return data
}

// Invalidate removes the cached blob so the next Load refetches everything.
func (l *Loader) Invalidate(ctx context.Context) error {
	if err := l.store.RemoveObject(ctx, l.bucket, CacheObjectName, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to clear auxiliary cache: %w", err)
	}
	return nil
}

// decodeHashMap decodes a JSON object keyed by decimal-string item/source
// hashes into a numeric-keyed map.
func decodeHashMap(out *map[uint32]int) func(body []byte) error {
	return func(body []byte) error {
		var raw map[string]int
		if err := json.Unmarshal(body, &raw); err != nil {
			return err
		}
		*out = utils.RekeyByHash(raw)
		return nil
	}
}

func (l *Loader) fromCache(ctx context.Context) *Data {
	body, err := l.store.GetObject(ctx, l.bucket, CacheObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil
	}
	defer body.Close()

	// minio reports missing objects lazily, on first read.
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil
	}

	var data Data
	if err := json.Unmarshal(payload, &data); err != nil {
		l.logger.Warn("Cached auxiliary blob is corrupt, refetching", zap.Error(err))
		return nil
	}
	return &data
}

func (l *Loader) toCache(ctx context.Context, data *Data) {
	payload, err := json.Marshal(data)
	if err != nil {
		l.logger.Warn("Failed to serialize auxiliary data for caching", zap.Error(err))
		return
	}
	_, err = l.store.PutObject(ctx, l.bucket, CacheObjectName, bytes.NewReader(payload), int64(len(payload)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		l.logger.Warn("Failed to cache auxiliary data", zap.Error(err))
	}
}
