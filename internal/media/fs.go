package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/camai-video/gateway/internal/domain"
)

// FSStore serves segments from a directory laid out as <root>/<cameraID>/<name>.
type FSStore struct {
	root string
}

func NewFSStore(root string) *FSStore {
	return &FSStore{root: root}
}

func (s *FSStore) Open(ctx context.Context, cameraID, name string) (io.ReadCloser, error) {
	path, err := s.segmentPath(cameraID, name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.ErrSegmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("open segment %s/%s: %w", cameraID, name, err)
	}

	return f, nil
}

// segmentPath joins and validates the segment location. Both path elements
// come from the URL, so anything escaping the camera directory is rejected.
func (s *FSStore) segmentPath(cameraID, name string) (string, error) {
	if cameraID == "" || name == "" {
		return "", domain.ErrSegmentNotFound
	}

	path := filepath.Join(s.root, cameraID, filepath.FromSlash(name))

	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.ErrSegmentNotFound
	}

	return path, nil
}
