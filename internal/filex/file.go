// Package filex holds small filesystem helpers for the ledger's store files.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// DirPerm keeps store directories private to the running user.
const DirPerm = 0o700

// EnsureDir creates dir and any missing parents. An existing directory is
// left as is.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, DirPerm); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// EnsureParentDir creates the directory that will hold file.
func EnsureParentDir(file string) error {
	return EnsureDir(filepath.Dir(file))
}
