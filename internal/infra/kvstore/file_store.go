package kvstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// fileStore persists each key as a JSON file under a data directory. This is
// the default backend, the server-side analog of browser local storage.
type fileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a file-backed store rooted at dir. The directory is
// created lazily on the first write.
func NewFileStore(dir string, logger *slog.Logger) Store {
	return &fileStore{
		dir:    dir,
		logger: logger,
	}
}

func (s *fileStore) Get(ctx context.Context, key string, dest any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		s.logger.WarnContext(ctx, "Discarding undecodable key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return false
	}

	return true
}

func (s *fileStore) Set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to encode key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.logger.WarnContext(ctx, "Failed to create key-value directory",
			slog.String("dir", s.dir),
			slog.String("error", err.Error()),
		)

		return
	}

	// Write-then-rename so a crash mid-write cannot corrupt the blob.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.logger.WarnContext(ctx, "Failed to persist key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)

		return
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.logger.WarnContext(ctx, "Failed to commit key-value blob",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
