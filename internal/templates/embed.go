// Package templates materializes the project template into a new directory
// and rewrites its placeholder tokens.
package templates

import (
	"embed"
	"io/fs"
	"os"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

// The all: prefix keeps entries that start with "." or "_".
//
//go:embed all:template
var templateFS embed.FS

// templateRoot is the directory inside templateFS holding the project tree.
const templateRoot = "template"

// Embedded returns the template compiled into the binary.
func Embedded() fs.FS {
	sub, err := fs.Sub(templateFS, templateRoot)
	if err != nil {
		// templateRoot is a constant matched by the embed directive.
		panic(err)
	}
	return sub
}

// FromDir returns an on-disk template rooted at dir.
func FromDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, oerrors.NewNotFoundError("template directory not found", dir,
			"Check --template-dir or the templateDir config value.")
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, oerrors.NewValidationError("template path is not a directory", dir, "")
	}
	return os.DirFS(dir), nil
}
