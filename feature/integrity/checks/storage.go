package checks

import (
	"context"
	"fmt"
	"io"

	"armory/core/storage"
	"armory/feature/weapons/auxdata"
	"armory/feature/weapons/manifest"

	"github.com/minio/minio-go/v7"
)

// StorageReport strictly types the result of an object-store check.
type StorageReport struct {
	Status          string `json:"status"` // "ok", "error"
	BucketExists    bool   `json:"bucket_exists"`
	AuxCachePresent bool   `json:"aux_cache_present"`
	SnapshotPresent bool   `json:"snapshot_present"`
	// SnapshotVersion is the version token the snapshot probe ran against,
	// empty when no token is persisted yet.
	SnapshotVersion string `json:"snapshot_version,omitempty"`
}

// CheckStorage verifies the object-store namespaces: the bucket itself, the
// auxiliary cache blob, and the table snapshot of the given version. The
// cache and snapshot are written best effort during a sync, so their absence
// is reported, not treated as an error.
func CheckStorage(ctx context.Context, client storage.Client, bucket, version string) (*StorageReport, error) {
	report := &StorageReport{Status: "ok", SnapshotVersion: version}

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	report.BucketExists = exists
	if !exists {
		report.Status = "error"
		return report, nil
	}

	report.AuxCachePresent = objectReadable(ctx, client, bucket, auxdata.CacheObjectName)

	if version != "" {
		report.SnapshotPresent = objectReadable(ctx, client, bucket, manifest.SnapshotObjectName(version))
	}

	return report, nil
}

// objectReadable probes an object by reading it; minio reports missing keys
// lazily on first read.
func objectReadable(ctx context.Context, client storage.Client, bucket, object string) bool {
	body, err := client.GetObject(ctx, bucket, object, minio.GetObjectOptions{})
	if err != nil {
		return false
	}
	defer body.Close()

	buf := make([]byte, 1)
	_, err = body.Read(buf)
	return err == nil || err == io.EOF
}
