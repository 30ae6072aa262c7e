// Package storage keeps uploaded files on the local filesystem or in an
// S3-compatible bucket. Keys are slash-separated relative paths such as
// "audio/<uuid>.m4a".
package storage

import (
	"fmt"
	"path"
	"strings"
)

// CleanKey validates a storage key and returns its canonical form.
// Absolute keys and keys escaping the root are rejected.
func CleanKey(key string) (string, error) {
	key = strings.TrimSpace(strings.ReplaceAll(key, `\`, "/"))
	if key == "" {
		return "", fmt.Errorf("storage: empty key")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("storage: absolute key %q", key)
	}
	cleaned := path.Clean(key)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", fmt.Errorf("storage: key %q escapes the root", key)
	}
	return cleaned, nil
}
