package items_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dragd/internal/items"
)

const itemsYAML = `
items:
  - title: Red
  - title: Green
    disabled: true
  - title: Blue
`

func writeItemsFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	def := items.Default()
	require.Len(t, def, 7)
	assert.Equal(t, "Apple", def[0].Title)
	assert.False(t, def[0].Disabled)
	assert.Equal(t, "Fig", def[5].Title)
	assert.True(t, def[5].Disabled)
}

func TestLoad(t *testing.T) {
	t.Run("reads titles and flags", func(t *testing.T) {
		list, err := items.Load(writeItemsFile(t, itemsYAML))
		require.NoError(t, err)
		assert.Equal(t, []items.Item{
			{Title: "Red"},
			{Title: "Green", Disabled: true},
			{Title: "Blue"},
		}, list)
	})

	t.Run("missing file yields the defaults", func(t *testing.T) {
		list, err := items.Load(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
		require.NoError(t, err)
		assert.Equal(t, items.Default(), list)
	})

	t.Run("empty document yields the defaults", func(t *testing.T) {
		list, err := items.Load(writeItemsFile(t, "items: []\n"))
		require.NoError(t, err)
		assert.Equal(t, items.Default(), list)
	})

	t.Run("invalid yaml is an error", func(t *testing.T) {
		_, err := items.Load(writeItemsFile(t, "items: [unclosed\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error parsing items file")
	})
}

func TestSaveLoad(t *testing.T) {
	list := []items.Item{
		{Title: "One"},
		{Title: "Two", Disabled: true},
	}

	// The parent directory does not exist yet
	path := filepath.Join(t.TempDir(), "nested", "items.yaml")
	require.NoError(t, items.Save(path, list))

	loaded, err := items.Load(path)
	require.NoError(t, err)
	assert.Equal(t, list, loaded)
}
