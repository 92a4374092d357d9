// CLAUDE:SUMMARY Content-addressed blob store for uploaded package bytes.
package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// BlobStore keeps uploaded package bytes on disk, keyed by content hash.
// Writing the same content twice is a no-op, which gives upload dedup for
// free: the hash, not the filename, identifies the stored bytes.
type BlobStore struct {
	root string
}

// NewBlobStore creates the store rooted at dir.
func NewBlobStore(dir string) (*BlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blobstore: mkdir %s: %w", dir, err)
	}
	return &BlobStore{root: dir}, nil
}

// HashBytes returns the hex SHA-256 of data.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Put stores data under its content hash and returns the hash.
// Writes go through a temp file and rename so a crash never leaves a
// half-written blob at its final path.
func (b *BlobStore) Put(data []byte) (string, error) {
	hash := HashBytes(data)
	final := b.pathFor(hash)

	if _, err := os.Stat(final); err == nil {
		return hash, nil
	}

	if err := os.MkdirAll(filepath.Dir(final), 0o755); err != nil {
		return "", fmt.Errorf("blobstore: mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(b.root, "incoming-*")
	if err != nil {
		return "", fmt.Errorf("blobstore: temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("blobstore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("blobstore: close: %w", err)
	}
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("blobstore: rename: %w", err)
	}
	return hash, nil
}

// Read returns the stored bytes for a hash.
func (b *BlobStore) Read(hash string) ([]byte, error) {
	data, err := os.ReadFile(b.pathFor(hash))
	if err != nil {
		return nil, fmt.Errorf("blobstore: read %s: %w", hash, err)
	}
	return data, nil
}

// Remove deletes the blob for a hash. Removing an absent blob is not an error.
func (b *BlobStore) Remove(hash string) error {
	err := os.Remove(b.pathFor(hash))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("blobstore: remove %s: %w", hash, err)
	}
	return nil
}

// pathFor shards blobs by the first two hash characters to keep directory
// fan-out bounded.
func (b *BlobStore) pathFor(hash string) string {
	if len(hash) < 2 {
		return filepath.Join(b.root, hash)
	}
	return filepath.Join(b.root, hash[:2], hash)
}
