// Package files holds the filesystem glue used by secretguard's
// collaborators: directory walking and .gitignore maintenance.
package files

import (
	"context"
	"io/fs"
	"path/filepath"
)

// Walk returns every non-directory entry below root in lexical order,
// skipping .git directories at any depth. Unreadable entries are skipped.
// Returned paths are prefixed with root as given.
func Walk(ctx context.Context, root string) ([]string, error) {
	var out []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		out = append(out, p)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
