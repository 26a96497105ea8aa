package templates

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/zeroapp/create-zero-app/internal/errors"
)

func TestGenerate_EmbeddedTemplate(t *testing.T) {
	workDir := t.TempDir()

	result, err := NewGenerator(GenerateOptions{
		WorkDir: workDir,
		Values: Values{
			ProjectName: "my-cool-app",
			Domain:      "example.com",
			DNSZoneID:   "zone123",
			Region:      "eu-west-1",
		},
	}).Generate()
	require.NoError(t, err)

	targetDir := filepath.Join(workDir, "my-cool-app")
	assert.Equal(t, targetDir, result.TargetDir)
	assert.FileExists(t, filepath.Join(targetDir, ".gitignore"))
	assert.FileExists(t, filepath.Join(targetDir, ".npmrc"))
	assert.NoFileExists(t, filepath.Join(targetDir, "gitignore"))
	assert.NoFileExists(t, filepath.Join(targetDir, "npmrc"))
	assert.Contains(t, result.Files, ".gitignore")
	assert.NotContains(t, result.Files, "gitignore")
	assert.Contains(t, result.Files, "sst.config.ts")

	tokens := []string{TokenDBName, TokenSlug, TokenDisplayName, TokenDNSZoneID, TokenDomain, DefaultRegion}

	err = filepath.WalkDir(targetDir, func(path string, d fs.DirEntry, err error) error {
		require.NoError(t, err)
		if d.IsDir() || !ShouldSubstitute(path) {
			return nil
		}
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, token := range tokens {
			assert.NotContains(t, string(content), token, "%s still contains %q", path, token)
		}
		return nil
	})
	require.NoError(t, err)

	sst, err := os.ReadFile(filepath.Join(targetDir, "sst.config.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(sst), "name: 'my-cool-app'")
	assert.Contains(t, string(sst), "database: 'my_cool_app'")
	assert.Contains(t, string(sst), "zone: 'zone123'")
	assert.Contains(t, string(sst), "api.example.com")
	assert.Contains(t, string(sst), "region: 'eu-west-1'")

	home, err := os.ReadFile(filepath.Join(targetDir, "packages/web/app/routes/home.test.tsx"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "Hello, My Cool App!")
}

func TestGenerate_DefaultRegionUnchanged(t *testing.T) {
	workDir := t.TempDir()

	_, err := NewGenerator(GenerateOptions{
		WorkDir: workDir,
		Values:  Values{ProjectName: "app", Domain: "example.com", DNSZoneID: "z", Region: DefaultRegion},
	}).Generate()
	require.NoError(t, err)

	embedded, err := fs.ReadFile(Embedded(), "sst.dev.config.ts")
	require.NoError(t, err)
	generated, err := os.ReadFile(filepath.Join(workDir, "app", "sst.dev.config.ts"))
	require.NoError(t, err)

	assert.Equal(t,
		strings.Count(string(embedded), DefaultRegion),
		strings.Count(string(generated), DefaultRegion),
		"default region literal should be left as-is")
}

func TestGenerate_BinaryAssetsByteIdentical(t *testing.T) {
	dst := afero.NewMemMapFs()
	src := testTemplate()

	_, err := NewGenerator(GenerateOptions{
		WorkDir: "/w",
		Source:  src,
		Fs:      dst,
		Values:  Values{ProjectName: "x", Domain: "d.io", DNSZoneID: "z", Region: "ap-south-1"},
	}).Generate()
	require.NoError(t, err)

	got, err := afero.ReadFile(dst, "/w/x/packages/web/public/logo.png")
	require.NoError(t, err)
	assert.Equal(t, src["packages/web/public/logo.png"].Data, got)
}

func TestGenerate_TargetExists(t *testing.T) {
	workDir := t.TempDir()
	values := Values{ProjectName: "my-app", Domain: "example.com", DNSZoneID: "zone", Region: DefaultRegion}

	_, err := NewGenerator(GenerateOptions{WorkDir: workDir, Values: values}).Generate()
	require.NoError(t, err)

	pkgPath := filepath.Join(workDir, "my-app", "package.json")
	before, err := os.ReadFile(pkgPath)
	require.NoError(t, err)

	second := values
	second.Domain = "other.com"
	_, err = NewGenerator(GenerateOptions{WorkDir: workDir, Values: second}).Generate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
	assert.Contains(t, err.Error(), `Directory "my-app" already exists.`)

	after, err := os.ReadFile(pkgPath)
	require.NoError(t, err)
	assert.Equal(t, before, after, "first run output must be untouched")
}

func TestGenerate_ValidationBeforeMutation(t *testing.T) {
	tests := []struct {
		name    string
		values  Values
		wantMsg string
	}{
		{
			name:    "missing domain",
			values:  Values{ProjectName: "app", DNSZoneID: "z"},
			wantMsg: "Production domain is required.",
		},
		{
			name:    "missing zone id",
			values:  Values{ProjectName: "app", Domain: "example.com"},
			wantMsg: "Cloudflare zone ID is required.",
		},
		{
			name:    "invalid project name",
			values:  Values{ProjectName: "../escape", Domain: "example.com", DNSZoneID: "z"},
			wantMsg: "path separators",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := afero.NewMemMapFs()
			_, err := NewGenerator(GenerateOptions{
				WorkDir: "/w",
				Source:  testTemplate(),
				Fs:      dst,
				Values:  tt.values,
			}).Generate()

			require.Error(t, err)
			assert.True(t, errors.Is(err, oerrors.ErrValidation))
			assert.Contains(t, err.Error(), tt.wantMsg)

			exists, _ := afero.Exists(dst, "/w")
			assert.False(t, exists, "nothing should be written")
		})
	}
}

func TestGenerate_CopyFailureLeavesPartialTree(t *testing.T) {
	base := afero.NewMemMapFs()
	failing := &failingWriteFs{Fs: base, failOn: "sst.config.ts"}

	_, err := NewGenerator(GenerateOptions{
		WorkDir: "/w",
		Source:  testTemplate(),
		Fs:      failing,
		Values:  Values{ProjectName: "x", Domain: "d.io", DNSZoneID: "z"},
	}).Generate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copying template")

	exists, _ := afero.DirExists(base, "/w/x")
	assert.True(t, exists, "partial output is not rolled back")
}

// failingWriteFs fails when a file with the given base name is created.
type failingWriteFs struct {
	afero.Fs
	failOn string
}

func (f *failingWriteFs) OpenFile(name string, flag int, perm os.FileMode) (afero.File, error) {
	if filepath.Base(name) == f.failOn && flag&os.O_CREATE != 0 {
		return nil, &os.PathError{Op: "open", Path: name, Err: errors.New("disk full")}
	}
	return f.Fs.OpenFile(name, flag, perm)
}
