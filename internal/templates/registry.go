package templates

import (
	"strings"

	"github.com/samber/lo"
)

// descriptions maps well-known template files to a short description shown
// in the generated file tree.
var descriptions = map[string]string{
	"package.json":           "Workspace manifest",
	"pnpm-workspace.yaml":    "Workspace packages",
	"docker-compose.dev.yml": "Local Postgres",
	"sst.config.ts":          "Production stage",
	"sst.dev.config.ts":      "Shared dev stage",
	"sst.preview.config.ts":  "Preview stages",
	"vitest.config.ts":       "Test runner",
	"README.md":              "Getting started",
	".gitignore":             "Git ignore rules",
	".npmrc":                 "Package manager settings",
}

// packageDescriptions describes workspace packages by directory.
var packageDescriptions = map[string]string{
	"packages/api":  "API service",
	"packages/web":  "Web front-end",
	"packages/core": "Shared schema and database",
}

// Describe returns a description for a generated file, or "" when unknown.
func Describe(relPath string) string {
	if desc, ok := descriptions[relPath]; ok {
		return desc
	}
	// Packages are described on their manifest only.
	if dir, ok := strings.CutSuffix(relPath, "/package.json"); ok {
		return packageDescriptions[dir]
	}
	if strings.HasPrefix(relPath, "infra/") {
		return "Infrastructure"
	}
	return ""
}

// DescribeAll returns descriptions for files keyed by path.
func DescribeAll(files []string) map[string]string {
	return lo.SliceToMap(files, func(f string) (string, string) {
		return f, Describe(f)
	})
}
