package assemblyio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tchupp/weave/internal/assemblyio"
)

const yamlDoc = `
families:
  - family: shirts
    items: [red-shirt, blue-shirt]
  - family: pants
    items: [jeans, slacks]
exclusions:
  - conditions: [red-shirt]
    exclusions: [jeans]
`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadParsesYAML(t *testing.T) {
	path := writeTemp(t, "catalog.yaml", yamlDoc)

	assembly, err := assemblyio.Load(path)
	require.NoError(t, err)

	assert.Len(t, assembly.Families, 2)
	assert.Equal(t, "shirts", assembly.Families[0].Family)
	assert.Equal(t, []string{"red-shirt", "blue-shirt"}, assembly.Families[0].Items)
	require.Len(t, assembly.Exclusions, 1)
	assert.Equal(t, []string{"red-shirt"}, assembly.Exclusions[0].Conditions)
}

func TestLoadBuilderCompiles(t *testing.T) {
	path := writeTemp(t, "catalog.yaml", yamlDoc)

	assembly, err := assemblyio.Load(path)
	require.NoError(t, err)

	cat, err := assemblyio.Builder(assembly).Build()
	require.NoError(t, err)
	assert.Equal(t, 3, cat.Total())
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := assemblyio.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestSplitItemsNormalizes(t *testing.T) {
	cases := map[string][]string{
		"a, b,c":   {"a", "b", "c"},
		" a , , b": {"a", "b"},
		"":         nil,
		"   ":      nil,
	}
	for input, want := range cases {
		assert.Equal(t, want, assemblyio.SplitItems(input), "input=%q", input)
	}
}
