package templates

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRestoreDotfiles(t *testing.T) {
	dst := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(dst, "/p/gitignore", []byte("node_modules\n"), 0o644))
	require.NoError(t, afero.WriteFile(dst, "/p/npmrc", []byte("x=1\n"), 0o644))
	require.NoError(t, afero.WriteFile(dst, "/p/sub/gitignore", []byte("nested\n"), 0o644))

	restored, err := RestoreDotfiles(dst, "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{".gitignore", ".npmrc"}, restored)

	content, err := afero.ReadFile(dst, "/p/.gitignore")
	require.NoError(t, err)
	assert.Equal(t, "node_modules\n", string(content))

	exists, _ := afero.Exists(dst, "/p/gitignore")
	assert.False(t, exists)

	// only the root is considered
	exists, _ = afero.Exists(dst, "/p/sub/gitignore")
	assert.True(t, exists)
}

func TestRestoreDotfiles_MissingFilesSkipped(t *testing.T) {
	dst := afero.NewMemMapFs()
	require.NoError(t, dst.MkdirAll("/p", 0o755))

	restored, err := RestoreDotfiles(dst, "/p")
	require.NoError(t, err)
	assert.Empty(t, restored)
}

func TestRestoreDotfiles_Partial(t *testing.T) {
	dst := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(dst, "/p/npmrc", []byte("x=1\n"), 0o644))

	restored, err := RestoreDotfiles(dst, "/p")
	require.NoError(t, err)
	assert.Equal(t, []string{".npmrc"}, restored)
}
