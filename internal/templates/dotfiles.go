package templates

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Dotfiles are stored without their leading dot so package publishing keeps
// them; they are renamed back after copying.
var Dotfiles = []string{"gitignore", "npmrc"}

// RestoreDotfiles renames each of Dotfiles found directly under root to its
// dotted form. Missing files are skipped. Returns the new names.
func RestoreDotfiles(dst afero.Fs, root string) ([]string, error) {
	var restored []string
	for _, name := range Dotfiles {
		src := filepath.Join(root, name)
		exists, err := afero.Exists(dst, src)
		if err != nil {
			return restored, fmt.Errorf("checking %s: %w", src, err)
		}
		if !exists {
			continue
		}

		if err := dst.Rename(src, filepath.Join(root, "."+name)); err != nil {
			return restored, fmt.Errorf("renaming %s: %w", src, err)
		}
		restored = append(restored, "."+name)
	}
	return restored, nil
}
