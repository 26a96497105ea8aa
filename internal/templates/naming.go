package templates

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DBName derives a database-safe identifier by replacing every hyphen with
// an underscore. "my-cool-app" becomes "my_cool_app".
func DBName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// DisplayName derives a human-readable name: words are split on hyphens,
// their first character is uppercased and they are joined with spaces.
// "my-cool-app" becomes "My Cool App". Empty words are kept.
func DisplayName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	_, size := utf8.DecodeRuneInString(w)
	return strings.ToUpper(w[:size]) + w[size:]
}

// ValidateProjectName checks that name can be used as the target directory.
// Only path safety is enforced; other characters are passed through.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid project name %q: must name a new directory", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("invalid project name %q: must not contain path separators", name)
	}
	return nil
}
