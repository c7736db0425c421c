package media

import (
	"context"
	"fmt"
	"io"

	"github.com/camai-video/gateway/internal/config"
)

// SegmentStore reads media segment bytes for one camera. Implementations own
// translating (cameraID, name) into their backend's addressing.
type SegmentStore interface {
	Open(ctx context.Context, cameraID, name string) (io.ReadCloser, error)
}

// BackendType defines supported media storage backends
type BackendType string

const (
	// BackendFS serves segments from the local filesystem (dev, single node)
	BackendFS BackendType = "fs"
	// BackendS3 serves archive segments from an S3 bucket (prod)
	BackendS3 BackendType = "s3"
)

// Stores bundles the two segment stores the media routes need. Live segments
// always come from the local segmenter directory; the archive backend is
// configurable.
type Stores struct {
	Live    SegmentStore
	Archive SegmentStore
}

// NewStores selects segment stores based on configuration.
//
// Environment variables:
//   - MEDIA_BACKEND: "fs" or "s3" (default: "fs"), archive side only
//   - LIVE_MEDIA_ROOT / ARCHIVE_MEDIA_ROOT: filesystem roots
//   - ARCHIVE_S3_BUCKET: bucket for the s3 backend (credentials via the AWS
//     SDK default chain)
func NewStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	live := NewFSStore(cfg.LiveMediaRoot)

	switch BackendType(cfg.MediaBackend) {
	case BackendS3:
		if cfg.ArchiveS3Bucket == "" {
			return nil, fmt.Errorf("ARCHIVE_S3_BUCKET is required for the s3 media backend")
		}
		archive, err := NewS3Store(ctx, cfg.ArchiveS3Bucket)
		if err != nil {
			return nil, fmt.Errorf("create s3 archive store: %w", err)
		}
		return &Stores{Live: live, Archive: archive}, nil

	case BackendFS, "":
		return &Stores{Live: live, Archive: NewFSStore(cfg.ArchiveMediaRoot)}, nil

	default:
		return nil, fmt.Errorf("unknown media backend: %s (supported: %s, %s)",
			cfg.MediaBackend, BackendFS, BackendS3)
	}
}
