package storage

import (
	"context"
	"path"
	"strings"
	"time"
)

// ObjectInfo describes a stored object
type ObjectInfo struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// ObjectStore defines the operations backups need from an object store
type ObjectStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	List(ctx context.Context, prefix string) ([]ObjectInfo, error)
	GeneratePresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// BackupKey builds the object key for one document of a backup taken at t:
// <prefix>/<YYYYMMDDTHHMMSSZ>/<document>
func BackupKey(prefix string, t time.Time, document string) string {
	return path.Join(strings.Trim(prefix, "/"), BackupID(t), document)
}

// BackupID names a backup by its UTC timestamp so keys sort chronologically
func BackupID(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}
