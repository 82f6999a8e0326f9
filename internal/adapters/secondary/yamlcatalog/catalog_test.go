package yamlcatalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gallery-service/internal/core/domain"
)

const sampleCatalog = `
exhibits:
  - git: https://github.com/numba/nvidia-cuda-tutorial.git
    homepage: https://github.com/numba/nvidia-cuda-tutorial
    title: Numba for CUDA
    description: Nvidia contributed CUDA tutorial for Numba
  - git: https://github.com/nebari-dev/nebari.git
    title: Empty icon
    icon: ""
  - git: https://gitlab.gnome.org/GNOME/atomix.git
    title: GNOME atomix
    branch: main
    depth: 1
`

func TestParse(t *testing.T) {
	sources, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, sources, 3)

	assert.Equal(t, "Numba for CUDA", sources[0].Title)
	assert.Equal(t, "https://github.com/numba/nvidia-cuda-tutorial", sources[0].Homepage)
	assert.Nil(t, sources[0].Icon)

	require.NotNil(t, sources[1].Icon)
	assert.Equal(t, "", *sources[1].Icon)

	assert.Equal(t, "main", sources[2].Branch)
	assert.Equal(t, 1, sources[2].Depth)
}

func TestParse_MissingTitle(t *testing.T) {
	_, err := Parse([]byte("exhibits:\n  - git: https://github.com/a/b.git\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidExhibitSource)
}

func TestParse_Empty(t *testing.T) {
	sources, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.NotNil(t, sources)
	assert.Empty(t, sources)
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("exhibits: [unterminated"))
	assert.Error(t, err)
}

func TestCatalog_List(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exhibits.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o644))

	sources, err := NewCatalog(path).List(context.Background())
	require.NoError(t, err)
	assert.Len(t, sources, 3)
}

func TestCatalog_List_MissingFile(t *testing.T) {
	sources, err := NewCatalog(filepath.Join(t.TempDir(), "nope.yaml")).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, sources)
}
