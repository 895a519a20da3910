// Package filestore implements the file-storage boundary with a local
// directory. KYC documents and organization logos land under a configured
// root; the returned reference is the path relative to that root.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"aquaserve/internal/pkg/errs"
)

// LocalStore writes uploaded files below a root directory.
type LocalStore struct {
	root string
}

// NewLocalStore creates a store rooted at dir.
func NewLocalStore(dir string) (*LocalStore, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create file store root: %w", err)
	}

	return &LocalStore{root: dir}, nil
}

// Store persists the content and returns an opaque reference. The reference
// embeds a random component so repeated uploads under the same name never
// overwrite each other.
func (s *LocalStore) Store(_ context.Context, name string, content []byte) (string, error) {
	ref := filepath.Join(sanitizeName(name), uuid.NewString())

	path := filepath.Join(s.root, ref)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("create file store directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}

	return ref, nil
}

// sanitizeName keeps references inside the store root regardless of what the
// caller passes as a name.
func sanitizeName(name string) string {
	name = strings.ReplaceAll(name, "..", "")
	return strings.Trim(filepath.Clean("/"+name), "/")
}
