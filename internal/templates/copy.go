package templates

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
)

// SkipDirs are directory names never copied out of a template.
var SkipDirs = map[string]bool{
	"node_modules": true,
	".turbo":       true,
	".sst":         true,
	"build":        true,
	"dist":         true,
	"coverage":     true,
}

// CopyTree copies every file of src into dst under root, creating root and
// intermediate directories. Directories named in SkipDirs are skipped with
// everything below them. Returns the copied files as slash-separated paths
// relative to root.
//
// Errors abort the copy; files written so far are left in place.
func CopyTree(src fs.FS, dst afero.Fs, root string) ([]string, error) {
	var copied []string
	if err := copyDir(src, dst, ".", root, &copied); err != nil {
		return copied, err
	}
	return copied, nil
}

func copyDir(src fs.FS, dst afero.Fs, srcDir, destDir string, copied *[]string) error {
	if err := dst.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", destDir, err)
	}

	entries, err := fs.ReadDir(src, srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		srcPath := path.Join(srcDir, entry.Name())
		destPath := filepath.Join(destDir, entry.Name())

		if entry.IsDir() {
			if SkipDirs[entry.Name()] {
				continue
			}
			if err := copyDir(src, dst, srcPath, destPath, copied); err != nil {
				return err
			}
			continue
		}

		if err := copyFile(src, dst, srcPath, destPath); err != nil {
			return err
		}
		*copied = append(*copied, srcPath)
	}

	return nil
}

func copyFile(src fs.FS, dst afero.Fs, srcPath, destPath string) error {
	content, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	info, err := fs.Stat(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading template %s: %w", srcPath, err)
	}

	// Embedded files are read-only; the owner must be able to rewrite them.
	perm := info.Mode().Perm() | 0o600

	if err := afero.WriteFile(dst, destPath, content, perm); err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
