package templates

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Placeholder tokens embedded in the template.
const (
	TokenDBName      = "zero_app"
	TokenSlug        = "zero-app"
	TokenDisplayName = "Zero App"
	TokenDNSZoneID   = "TODO:CLOUDFLARE_ZONE_ID"
	TokenDomain      = "TODO:DOMAIN"

	// DefaultRegion is the region literal written in the template.
	DefaultRegion = "us-east-1"
)

// SkipExtensions are file extensions whose content is never rewritten.
var SkipExtensions = map[string]bool{
	".svg":   true,
	".png":   true,
	".jpg":   true,
	".ico":   true,
	".woff":  true,
	".woff2": true,
}

// Replacement is a literal find/replace pair.
type Replacement struct {
	Find    string
	Replace string
}

// Table is an ordered list of replacements. Pairs apply in sequence, each
// one to the output of the previous one.
type Table []Replacement

// BuildTable builds the substitution table for values. Longer tokens come
// before the tokens they contain. The region rule is only added when a region
// other than DefaultRegion was chosen.
func BuildTable(v Values) Table {
	table := Table{
		{Find: TokenDBName, Replace: DBName(v.ProjectName)},
		{Find: TokenSlug, Replace: v.ProjectName},
		{Find: TokenDisplayName, Replace: DisplayName(v.ProjectName)},
		{Find: TokenDNSZoneID, Replace: v.DNSZoneID},
		{Find: TokenDomain, Replace: v.Domain},
	}

	if v.Region != "" && v.Region != DefaultRegion {
		table = append(table, Replacement{Find: DefaultRegion, Replace: v.Region})
	}

	return table
}

// Apply runs every replacement over content.
func (t Table) Apply(content string) string {
	for _, r := range t {
		content = strings.ReplaceAll(content, r.Find, r.Replace)
	}
	return content
}

// ShouldSubstitute reports whether a file's content is eligible for rewriting.
func ShouldSubstitute(path string) bool {
	return !SkipExtensions[filepath.Ext(path)]
}

// SubstituteTree applies table to every eligible file below root and returns
// the paths (relative to root, slash-separated) whose content changed.
func SubstituteTree(dst afero.Fs, root string, table Table) ([]string, error) {
	var changed []string

	err := afero.Walk(dst, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !ShouldSubstitute(path) {
			return nil
		}

		content, err := afero.ReadFile(dst, path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		replaced := table.Apply(string(content))
		if replaced == string(content) {
			return nil
		}

		if err := afero.WriteFile(dst, path, []byte(replaced), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		changed = append(changed, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return changed, err
	}

	return changed, nil
}
