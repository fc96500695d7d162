// Package artifacts manages test run artifacts: screenshots written under a
// local directory and optionally mirrored to an S3-compatible bucket for CI
// retention.
package artifacts

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kuitang/benefits-e2e/internal/obs"
)

// Filename returns the screenshot file name for a logical name and capture
// time: "<name>-<timestamp>.png" where the timestamp is RFC3339Nano UTC with
// ':' and '.' replaced by '-' so it is filesystem-safe everywhere.
func Filename(name string, now time.Time) string {
	ts := now.UTC().Format(time.RFC3339Nano)
	ts = strings.ReplaceAll(ts, ":", "-")
	ts = strings.ReplaceAll(ts, ".", "-")
	return name + "-" + ts + ".png"
}

// Store hands out screenshot paths and mirrors saved files to a bucket.
// A nil *Store is valid and keeps everything local-only and silent.
type Store struct {
	dir    string
	bucket *Bucket
	runID  string
	log    *slog.Logger
}

// NewStore creates a store rooted at dir. bucket may be nil for local-only
// runs. runID prefixes uploaded object keys so concurrent CI runs do not
// collide.
func NewStore(dir string, bucket *Bucket, runID string) *Store {
	return &Store{
		dir:    dir,
		bucket: bucket,
		runID:  runID,
		log:    obs.Pkg("artifacts"),
	}
}

// NextScreenshotPath creates the screenshot directory if needed and returns
// the full path for a new capture of the given logical name.
func (s *Store) NextScreenshotPath(name string) (string, error) {
	if s == nil || s.dir == "" {
		return "", fmt.Errorf("artifacts: store has no directory configured")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("artifacts: create screenshot dir: %w", err)
	}
	return filepath.Join(s.dir, Filename(name, time.Now())), nil
}

// Mirror uploads a saved screenshot to the bucket and returns its public URL.
// With no bucket configured it returns an empty URL and no error.
func (s *Store) Mirror(ctx context.Context, path string) (string, error) {
	if s == nil || s.bucket == nil {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("artifacts: read screenshot %q: %w", path, err)
	}
	key := s.runID + "/screenshots/" + filepath.Base(path)
	if err := s.bucket.PutObject(ctx, key, data, "image/png"); err != nil {
		return "", err
	}
	url := s.bucket.PublicURL(key)
	s.log.Info("mirrored screenshot", "key", key, "url", url, "bytes", len(data))
	return url, nil
}
