// Package storage holds product media on a configurable disk.
//
// Two drivers are available out of the box:
//   - "local"  — local filesystem (default)
//   - "s3"     — S3-compatible object storage (AWS S3, MinIO, R2, Spaces)
//
// Boot once at startup, then write through the default disk:
//
//	storage.Connect()
//	url, err := storage.Disk().Put(ctx, "products/3/hero.jpg", file)
package storage

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/shashiranjanraj/goldenaura/config"
)

// Store is the media disk interface. Put returns the public URL of the
// stored object.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader) (string, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	URL(key string) string
}

var (
	mu          sync.RWMutex
	disks       = map[string]Store{}
	defaultDisk string
)

// Connect boots the storage manager. Call once at application startup.
func Connect() {
	mu.Lock()
	defer mu.Unlock()

	defaultDisk = config.Get("STORAGE_DISK", "local")
	disks["local"] = newLocalStore()

	if config.Get("S3_BUCKET", "") != "" {
		s, err := newS3Store()
		if err != nil {
			fmt.Printf("⚠️  storage/s3: %v (disk disabled)\n", err)
		} else {
			disks["s3"] = s
		}
	}
}

// Disk returns the default disk (STORAGE_DISK env var, default "local").
func Disk() Store { return Use(defaultDisk) }

// Use returns the named disk. Panics when the disk is not configured,
// which is a boot-time mistake rather than a runtime condition.
func Use(name string) Store {
	mu.RLock()
	s, ok := disks[name]
	mu.RUnlock()
	if !ok {
		panic(fmt.Sprintf("storage: disk %q is not configured", name))
	}
	return s
}

// Register plugs in a custom Store implementation at boot time.
func Register(name string, s Store) {
	mu.Lock()
	disks[name] = s
	mu.Unlock()
}
