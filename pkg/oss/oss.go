package oss

import (
	"context"
	"strings"
)

// Storage is the blob-store collaborator: raw video and image bytes live
// behind it, addressed by object name and exposed as public URLs.
type Storage interface {
	// StoreFile uploads the file at filePath and returns its public URL.
	StoreFile(ctx context.Context, objectName, filePath, contentType string) (string, error)
	Remove(ctx context.Context, objectName string) error
	Exists(ctx context.Context, objectName string) (bool, error)
	// ObjectFromURL maps a public URL issued by StoreFile back to its
	// object name; returns "" for foreign URLs.
	ObjectFromURL(url string) string
}

func trimURLPrefix(url, base string) string {
	if base == "" || !strings.HasPrefix(url, base) {
		return ""
	}
	return strings.TrimPrefix(strings.TrimPrefix(url, base), "/")
}
